package cdl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// dataItemsPerLine is how many literals fit on a data line before the
// formatter wraps onto a continuation line.
const dataItemsPerLine = 8

// Formatter renders a Dataset as CDL text.  Rendering is deterministic
// and total: any validly constructed Dataset has exactly one canonical
// rendering, and rendering never fails.
type Formatter struct {
	builder strings.Builder
}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders ds under the given dataset name.  Sections appear in
// fixed order; within each, coordinate variables come before data
// variables and otherwise everything follows declaration order.
func (f *Formatter) Format(ds *Dataset, name string) string {
	f.builder.Reset()
	f.buildf("netcdf %s {\n", name)
	f.formatDimensions(ds)
	f.formatVariables(ds)
	f.formatData(ds)
	f.build("}")
	return f.builder.String()
}

func (f *Formatter) formatDimensions(ds *Dataset) {
	f.build("dimensions:\n")
	for _, dim := range ds.Dimensions() {
		if dim.Unlimited {
			f.buildf("    %s = UNLIMITED;\n", dim.Name)
		} else {
			f.buildf("    %s = %d;\n", dim.Name, dim.Size)
		}
	}
}

func (f *Formatter) formatVariables(ds *Dataset) {
	f.build("variables:\n")
	coords, dataVars := ds.Coords(), ds.DataVars()
	for _, v := range coords {
		f.formatVarDecl(v)
	}
	for _, v := range dataVars {
		f.formatVarDecl(v)
	}
	for _, v := range coords {
		f.formatVarAttrs(v)
	}
	for _, v := range dataVars {
		f.formatVarAttrs(v)
	}
	if ds.Attrs.Len() > 0 {
		f.build("    // global attributes\n")
		for _, name := range ds.Attrs.Names() {
			val, _ := ds.Attrs.Lookup(name)
			f.buildf("        :%s = %s;\n", name, formatValue(val))
		}
	}
}

func (f *Formatter) formatVarDecl(v *Variable) {
	if len(v.Dims) == 0 {
		f.buildf("    %s %s;\n", v.Type.Keyword(), v.Name)
		return
	}
	f.buildf("    %s %s(%s);\n", v.Type.Keyword(), v.Name, strings.Join(v.Dims, ", "))
}

func (f *Formatter) formatVarAttrs(v *Variable) {
	for _, name := range v.Attrs.Names() {
		val, _ := v.Attrs.Lookup(name)
		f.buildf("        %s:%s = %s;\n", v.Name, name, formatValue(val))
	}
}

func (f *Formatter) formatData(ds *Dataset) {
	f.build("data:\n")
	for _, v := range ds.Coords() {
		f.formatDatum(v)
	}
	for _, v := range ds.DataVars() {
		f.formatDatum(v)
	}
}

// formatDatum writes one "name = v, v, ...;" line, wrapping every
// dataItemsPerLine values.  Zero-length variables are skipped.
func (f *Formatter) formatDatum(v *Variable) {
	size := v.Size()
	if size == 0 {
		return
	}
	f.buildf("    %s = ", v.Name)
	for i := 0; i < size; i++ {
		if i > 0 {
			if i%dataItemsPerLine == 0 {
				f.build(",\n    ")
			} else {
				f.build(", ")
			}
		}
		if v.Type.IsNumeric() {
			f.build(formatNumber(v.Data.Elements[i]))
		} else {
			f.build(QuotedString(v.Strings[i]))
		}
	}
	f.build(";\n")
}

func (f *Formatter) build(s string) {
	f.builder.WriteString(s)
}

func (f *Formatter) buildf(format string, args ...interface{}) {
	fmt.Fprintf(&f.builder, format, args...)
}

func formatValue(v Value) string {
	switch v.Kind {
	case ValueString:
		return QuotedString(v.Str)
	case ValueBool:
		if v.Bool {
			return "1"
		}
		return "0"
	default:
		return formatNumber(v.Num)
	}
}

// formatNumber renders a numeric value in its default decimal form with
// NaN as the literal NaN token the grammar accepts.
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
