package cdl

import (
	"math"

	"github.com/ctessum/sparse"
)

// Dimension is a named axis extent shared across variables.  Unlimited
// dimensions keep their marker through parse and render; assembly
// resolves them to a concrete Size.
type Dimension struct {
	Name      string
	Size      int
	Unlimited bool
}

// A Value is one scalar attribute value: a number (NaN included), a
// string, or a boolean, which renders as 0/1.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
}

type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueBool
)

func NumberValue(v float64) Value { return Value{Kind: ValueNumber, Num: v} }
func StringValue(s string) Value  { return Value{Kind: ValueString, Str: s} }
func BoolValue(b bool) Value      { return Value{Kind: ValueBool, Bool: b} }

// Equal is NaN-aware: two NaN attribute values compare equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueNumber:
		return v.Num == other.Num || (math.IsNaN(v.Num) && math.IsNaN(other.Num))
	case ValueString:
		return v.Str == other.Str
	default:
		return v.Bool == other.Bool
	}
}

// Attributes is an insertion-ordered attribute mapping.  Setting an
// existing name overwrites its value but keeps its original position.
type Attributes struct {
	names  []string
	values map[string]Value
}

func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]Value)}
}

func (a *Attributes) Set(name string, v Value) {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = v
}

func (a *Attributes) Lookup(name string) (Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the attribute names in insertion order.
func (a *Attributes) Names() []string {
	return a.names
}

func (a *Attributes) Len() int {
	return len(a.names)
}

func (a *Attributes) Equal(other *Attributes) bool {
	if a.Len() != other.Len() {
		return false
	}
	for _, name := range a.names {
		v, ok := other.Lookup(name)
		if !ok || !a.values[name].Equal(v) {
			return false
		}
	}
	return true
}

// Variable is a named, typed, shaped array plus its attributes.
// Numeric variables hold their values in a dense float64 array, never
// narrower than the declared dtype; char variables hold a row-major
// flattened string slice instead.  Exactly one of Data and Strings is
// non-nil.
type Variable struct {
	Name    string
	Type    DataType
	Dims    []string
	Shape   []int
	Data    *sparse.DenseArray
	Strings []string
	Attrs   *Attributes
}

// NewVariable allocates a zero-filled variable of the given shape.
func NewVariable(name string, typ DataType, dims []string, shape []int) *Variable {
	v := &Variable{
		Name:  name,
		Type:  typ,
		Dims:  dims,
		Shape: shape,
		Attrs: NewAttributes(),
	}
	if typ.IsNumeric() {
		v.Data = sparse.ZerosDense(shape...)
	} else {
		v.Strings = make([]string, v.Size())
	}
	return v
}

// Size returns the flattened element count; a scalar has size 1.
func (v *Variable) Size() int {
	size := 1
	for _, n := range v.Shape {
		size *= n
	}
	return size
}

func (v *Variable) Equal(other *Variable) bool {
	if v.Name != other.Name || v.Type != other.Type {
		return false
	}
	if len(v.Dims) != len(other.Dims) {
		return false
	}
	for i, dim := range v.Dims {
		if other.Dims[i] != dim {
			return false
		}
	}
	if len(v.Shape) != len(other.Shape) {
		return false
	}
	for i, n := range v.Shape {
		if other.Shape[i] != n {
			return false
		}
	}
	if !v.Attrs.Equal(other.Attrs) {
		return false
	}
	if v.Type.IsNumeric() {
		for i, x := range v.Data.Elements {
			y := other.Data.Elements[i]
			if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
				return false
			}
		}
		return true
	}
	for i, s := range v.Strings {
		if other.Strings[i] != s {
			return false
		}
	}
	return true
}

// Dataset is the assembled form: dimensions in declaration order,
// variables in declaration order partitioned into coordinate variables
// (name matches a dimension) and data variables, and the global
// attribute mapping.  The Dataset owns its variables and attributes;
// dimensions are referenced by name only.
type Dataset struct {
	Attrs *Attributes

	dims  []Dimension
	byDim map[string]int
	vars  []*Variable
	byVar map[string]int
}

func NewDataset() *Dataset {
	return &Dataset{
		Attrs: NewAttributes(),
		byDim: make(map[string]int),
		byVar: make(map[string]int),
	}
}

// AddDimension appends a dimension.  Re-adding a name updates the
// existing entry in place, preserving enumeration order.
func (d *Dataset) AddDimension(dim Dimension) {
	if i, ok := d.byDim[dim.Name]; ok {
		d.dims[i] = dim
		return
	}
	d.byDim[dim.Name] = len(d.dims)
	d.dims = append(d.dims, dim)
}

// AddVariable appends a variable.  Re-adding a name replaces the
// existing entry in place.
func (d *Dataset) AddVariable(v *Variable) {
	if i, ok := d.byVar[v.Name]; ok {
		d.vars[i] = v
		return
	}
	d.byVar[v.Name] = len(d.vars)
	d.vars = append(d.vars, v)
}

// Dimensions returns the dimensions in enumeration order.
func (d *Dataset) Dimensions() []Dimension {
	return d.dims
}

// Dimension looks up a dimension by name.
func (d *Dataset) Dimension(name string) (Dimension, bool) {
	i, ok := d.byDim[name]
	if !ok {
		return Dimension{}, false
	}
	return d.dims[i], true
}

// Variables returns all variables in declaration order.
func (d *Dataset) Variables() []*Variable {
	return d.vars
}

// Lookup finds a variable by name.
func (d *Dataset) Lookup(name string) (*Variable, bool) {
	i, ok := d.byVar[name]
	if !ok {
		return nil, false
	}
	return d.vars[i], true
}

// Coords returns the coordinate variables, those whose name matches a
// declared dimension, in declaration order.
func (d *Dataset) Coords() []*Variable {
	var coords []*Variable
	for _, v := range d.vars {
		if _, ok := d.byDim[v.Name]; ok {
			coords = append(coords, v)
		}
	}
	return coords
}

// DataVars returns the non-coordinate variables in declaration order.
func (d *Dataset) DataVars() []*Variable {
	var vars []*Variable
	for _, v := range d.vars {
		if _, ok := d.byDim[v.Name]; !ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// Equal reports semantic equality: the same variable set with equal
// shapes, dtypes, attributes, and NaN-aware data values, and equal
// global attributes.  Dimension enumeration order must match but the
// textual rendering it came from need not.
func (d *Dataset) Equal(other *Dataset) bool {
	if len(d.dims) != len(other.dims) {
		return false
	}
	for i, dim := range d.dims {
		if other.dims[i] != dim {
			return false
		}
	}
	if len(d.vars) != len(other.vars) {
		return false
	}
	for _, v := range d.vars {
		ov, ok := other.Lookup(v.Name)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return d.Attrs.Equal(other.Attrs)
}
