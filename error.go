package cdl

import "fmt"

// SyntaxError reports CDL text that does not match the grammar.  Line
// and Column locate the first offending byte, counting from 1.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// ReferenceError reports a name used without a declaration: a data
// statement for an unknown variable, or a variable dimensioned by an
// unknown dimension.
type ReferenceError struct {
	Kind string // "variable" or "dimension"
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference to undeclared %s %q", e.Kind, e.Name)
}

// UnsupportedDtypeError reports a dtype keyword outside the closed set
// the grammar recognizes.
type UnsupportedDtypeError struct {
	Keyword string
}

func (e *UnsupportedDtypeError) Error() string {
	return fmt.Sprintf("unsupported dtype %q", e.Keyword)
}
