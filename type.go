package cdl

// A DataType is the declared type of a CDL variable.  The set is
// closed: the grammar recognizes exactly the keywords in typeKeywords
// and anything else is an UnsupportedDtypeError.
type DataType int

const (
	TypeFloat32 DataType = iota
	TypeFloat64
	TypeInt32
	TypeInt64
	TypeChar
	TypeByte
)

var typeKeywords = map[string]DataType{
	"float":  TypeFloat32,
	"double": TypeFloat64,
	"int":    TypeInt32,
	"long":   TypeInt64,
	"int64":  TypeInt64,
	"char":   TypeChar,
	"byte":   TypeByte,
}

// LookupType maps a CDL dtype keyword to its DataType.
func LookupType(keyword string) (DataType, error) {
	typ, ok := typeKeywords[keyword]
	if !ok {
		return 0, &UnsupportedDtypeError{Keyword: keyword}
	}
	return typ, nil
}

// Keyword returns the CDL keyword this type renders as.  The mapping is
// lossy on purpose: integer widths narrower than 64 bits all render as
// plain "int", so a round trip does not distinguish them.
func (t DataType) Keyword() string {
	switch t {
	case TypeFloat32:
		return "float"
	case TypeFloat64:
		return "double"
	case TypeInt32:
		return "int"
	case TypeInt64:
		return "long"
	case TypeChar:
		return "char"
	case TypeByte:
		return "byte"
	}
	return "float"
}

func (t DataType) String() string {
	switch t {
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeChar:
		return "char"
	case TypeByte:
		return "byte"
	}
	return "unknown"
}

// IsNumeric reports whether values of this type live in a numeric
// array.  Char variables hold strings instead.
func (t DataType) IsNumeric() bool {
	return t != TypeChar
}
