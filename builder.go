package cdl

// Builder assembles a Dataset from reduced Declarations.  Every
// declared variable gets a zero-filled buffer of its resolved shape;
// literal data, where supplied, overlays the flattened buffer in
// row-major order.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build materializes the declarations.  A variable dimensioned by a
// name absent from the dimension table fails with a ReferenceError; an
// over- or under-supplied data list is not an error.  The Declarations
// are consumed: attribute maps move into the Dataset.
func (b *Builder) Build(decls *Declarations) (*Dataset, error) {
	ds := NewDataset()
	for _, dim := range decls.Dims {
		ds.AddDimension(resolveDim(decls, dim))
	}
	for _, name := range decls.VarNames() {
		v, err := buildVar(ds, decls, name)
		if err != nil {
			return nil, err
		}
		ds.AddVariable(v)
	}
	ds.Attrs = decls.Attrs
	return ds, nil
}

// resolveDim pins an UNLIMITED dimension to a concrete size: the length
// of the data supplied for its same-named coordinate variable, or zero.
// True unlimited growth is out of scope.
func resolveDim(decls *Declarations, dim Dimension) Dimension {
	if dim.Unlimited {
		dim.Size = len(decls.Data[dim.Name])
	}
	return dim
}

func buildVar(ds *Dataset, decls *Declarations, name string) (*Variable, error) {
	dims := decls.VarDims[name]
	shape := make([]int, 0, len(dims))
	for _, dimName := range dims {
		dim, ok := ds.Dimension(dimName)
		if !ok {
			return nil, &ReferenceError{Kind: "dimension", Name: dimName}
		}
		shape = append(shape, dim.Size)
	}
	v := NewVariable(name, decls.VarTypes[name], dims, shape)
	if list, ok := decls.Data[name]; ok {
		overlay(v, list)
	}
	if attrs, ok := decls.VarAttrs[name]; ok {
		v.Attrs = attrs
	}
	return v, nil
}

// overlay copies literals onto the flattened buffer.  Only the first
// min(size, len(list)) positions are touched: surplus literals drop
// silently and uncovered positions keep the zero fill, as do positions
// holding the "_" placeholder or a literal whose kind does not fit the
// variable's dtype.
func overlay(v *Variable, list []Literal) {
	n := v.Size()
	if len(list) < n {
		n = len(list)
	}
	for i := 0; i < n; i++ {
		switch lit := list[i]; lit.Kind {
		case LiteralNumber:
			if v.Type.IsNumeric() {
				v.Data.Elements[i] = lit.Num
			}
		case LiteralString:
			if v.Type == TypeChar {
				v.Strings[i] = lit.Str
			}
		case LiteralUnset:
			// Position consumed, fill value kept.
		}
	}
}
