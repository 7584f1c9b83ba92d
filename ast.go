package cdl

// The syntax-tree node types form a closed sum over the CDL grammar.
// Nothing here is semantic: dimension and variable names are
// uninterpreted, dtype keywords are unvalidated, and sizes are
// unresolved until the Analyzer reduces the tree.

// File is the root node: "netcdf <name> { ... }".  The dataset name may
// span several symbols; they are joined with single spaces.
type File struct {
	Name string
	Body []Decl
}

// A Decl is one statement inside a netcdf or group block.
type Decl interface {
	declNode()
}

type (
	// Group is a nested "group: <name> { ... }" block.  Groups parse
	// structurally but carry no scoping semantics.
	Group struct {
		Name string
		Body []Decl
	}

	// DimDecl is one "name = size;" pair from a dimensions section.
	// An UNLIMITED size parses with Unlimited set and Size zero.
	DimDecl struct {
		Name      string
		Size      int
		Unlimited bool
	}

	// VarDecl is "dtype name(dim, ...);" or "dtype name;" for a
	// scalar.  Type holds the raw keyword.
	VarDecl struct {
		Type string
		Name string
		Dims []string
	}

	// AttrDecl is "[var]:name = value;".  Var is empty for a global
	// attribute.
	AttrDecl struct {
		Var   string
		Name  string
		Value Literal
	}

	// Datum is "name = v, v, ...;" from a data section.
	Datum struct {
		Name   string
		Values []Literal
	}
)

func (*Group) declNode()    {}
func (*DimDecl) declNode()  {}
func (*VarDecl) declNode()  {}
func (*AttrDecl) declNode() {}
func (*Datum) declNode()    {}

// A Literal is one scalar token from an attribute value or data list.
type Literal struct {
	Kind LiteralKind
	Num  float64 // LiteralNumber; the NaN token parses to NaN here
	Str  string  // LiteralString, quotes stripped and escapes resolved
}

type LiteralKind int

const (
	// LiteralNumber is a signed decimal literal or the NaN token.
	LiteralNumber LiteralKind = iota
	// LiteralString is a quoted string literal.
	LiteralString
	// LiteralUnset is the "_" placeholder in a data list: the
	// position is consumed but the fill value underneath is kept.
	LiteralUnset
)
