package cdl

// Declarations is the reduced form of a CDL syntax tree: the dimension
// table in encounter order, per-variable dimension lists and dtype
// tags, per-variable and global attribute maps, and per-variable
// literal data lists.  It is the intermediate between parsing and
// dataset assembly.
type Declarations struct {
	Dims     []Dimension
	VarDims  map[string][]string
	VarTypes map[string]DataType
	VarAttrs map[string]*Attributes
	Attrs    *Attributes // global scope
	Data     map[string][]Literal

	varNames []string       // declaration order
	dims     map[string]int // name -> index into Dims
}

func newDeclarations() *Declarations {
	return &Declarations{
		VarDims:  make(map[string][]string),
		VarTypes: make(map[string]DataType),
		VarAttrs: make(map[string]*Attributes),
		Attrs:    NewAttributes(),
		Data:     make(map[string][]Literal),
		dims:     make(map[string]int),
	}
}

// VarNames returns the declared variable names in declaration order.
func (d *Declarations) VarNames() []string {
	return d.varNames
}

// Dimension looks up a dimension by name.
func (d *Declarations) Dimension(name string) (Dimension, bool) {
	i, ok := d.dims[name]
	if !ok {
		return Dimension{}, false
	}
	return d.Dims[i], true
}

func (d *Declarations) addDim(dim Dimension) {
	if i, ok := d.dims[dim.Name]; ok {
		// Re-declaring a dimension updates its size in place.
		d.Dims[i] = dim
		return
	}
	d.dims[dim.Name] = len(d.Dims)
	d.Dims = append(d.Dims, dim)
}

func (d *Declarations) addVar(name string, typ DataType, dims []string) {
	if _, ok := d.VarDims[name]; !ok {
		d.varNames = append(d.varNames, name)
	}
	d.VarDims[name] = dims
	d.VarTypes[name] = typ
}

func (d *Declarations) attrsFor(varName string) *Attributes {
	if varName == "" {
		return d.Attrs
	}
	attrs, ok := d.VarAttrs[varName]
	if !ok {
		attrs = NewAttributes()
		d.VarAttrs[varName] = attrs
	}
	return attrs
}

// An Analyzer reduces a syntax tree to Declarations.  The walk is
// depth-first in document order and all accumulated state lives in the
// Declarations under construction, so an Analyzer is single-use.
type Analyzer struct {
	decls *Declarations
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{decls: newDeclarations()}
}

// Reduce walks the tree and returns the accumulated declarations.
// A data statement naming a variable with no prior declaration is a
// ReferenceError; a dtype keyword outside the closed enumeration is an
// UnsupportedDtypeError.
func (a *Analyzer) Reduce(file *File) (*Declarations, error) {
	if err := a.reduceBody(file.Body); err != nil {
		return nil, err
	}
	return a.decls, nil
}

func (a *Analyzer) reduceBody(body []Decl) error {
	for _, node := range body {
		switch node := node.(type) {
		case *DimDecl:
			a.decls.addDim(Dimension{Name: node.Name, Size: node.Size, Unlimited: node.Unlimited})
		case *VarDecl:
			typ, err := LookupType(node.Type)
			if err != nil {
				return err
			}
			a.decls.addVar(node.Name, typ, node.Dims)
		case *AttrDecl:
			a.decls.attrsFor(node.Var).Set(node.Name, literalValue(node.Value))
		case *Datum:
			if _, ok := a.decls.VarDims[node.Name]; !ok {
				return &ReferenceError{Kind: "variable", Name: node.Name}
			}
			a.decls.Data[node.Name] = node.Values
		case *Group:
			// Nested groups parse but have no scoping semantics;
			// their contents do not contribute declarations.
		}
	}
	return nil
}

func literalValue(lit Literal) Value {
	if lit.Kind == LiteralString {
		return StringValue(lit.Str)
	}
	return NumberValue(lit.Num)
}
