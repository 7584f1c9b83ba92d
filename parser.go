package cdl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parser converts CDL text into its syntax tree.  Parsing is purely
// structural and deterministic: names are not resolved and dtype
// keywords are not validated here; both are the Analyzer's job.
type Parser struct {
	lexer *lexer
}

func NewParser(src string) *Parser {
	return &Parser{lexer: newLexer(src)}
}

// section tracks which block the parser is inside so that "name = ..."
// statements can be told apart: they are dimension pairs in a
// dimensions section and data statements in a data section.
type section int

const (
	sectionNone section = iota
	sectionDimensions
	sectionVariables
	sectionData
)

// Parse parses a complete "netcdf <name> { ... }" block and requires
// the input to be exhausted afterward.
func (p *Parser) Parse() (*File, error) {
	sym, ok := p.matchSymbol()
	if !ok || sym != "netcdf" {
		return nil, p.error("expected netcdf keyword")
	}
	// The dataset name may span several symbols before the brace.
	var names []string
	for {
		sym, ok := p.matchSymbol()
		if !ok {
			break
		}
		names = append(names, sym)
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	l := p.lexer
	l.skipSpace()
	if !l.eof() {
		return nil, p.error("trailing input after netcdf block")
	}
	return &File{Name: strings.Join(names, " "), Body: body}, nil
}

// parseBody parses a brace-delimited block of sections and statements
// into a flat declaration list in document order.
func (p *Parser) parseBody() ([]Decl, error) {
	l := p.lexer
	if !l.match('{') {
		return nil, p.error("expected '{'")
	}
	var body []Decl
	sec := sectionNone
	for {
		l.skipSpace()
		if l.matchTight('}') {
			return body, nil
		}
		if l.eof() {
			return nil, p.error("unterminated block: missing '}'")
		}
		if l.matchTight(':') {
			// Global attribute: ":name = value;"
			attr, err := p.parseAttrBody("")
			if err != nil {
				return nil, err
			}
			body = append(body, attr)
			continue
		}
		sym, ok := p.matchSymbol()
		if !ok {
			return nil, p.errorf("unexpected character %q", l.cursor[0])
		}
		if l.match(':') {
			switch sym {
			case "dimensions":
				sec = sectionDimensions
			case "variables":
				sec = sectionVariables
			case "data":
				sec = sectionData
			case "group":
				group, err := p.parseGroup()
				if err != nil {
					return nil, err
				}
				body = append(body, group)
			default:
				attr, err := p.parseAttrBody(sym)
				if err != nil {
					return nil, err
				}
				body = append(body, attr)
			}
			continue
		}
		if name, ok := p.matchSymbol(); ok {
			// Two symbols in a row start a variable declaration
			// with sym as the dtype keyword.
			if sec != sectionVariables {
				return nil, p.errorf("variable declaration %q outside variables section", name)
			}
			decl, err := p.parseVarDeclBody(sym, name)
			if err != nil {
				return nil, err
			}
			body = append(body, decl)
			continue
		}
		if !l.match('=') {
			return nil, p.errorf("unexpected token after %q", sym)
		}
		switch sec {
		case sectionDimensions:
			dim, err := p.parseDimBody(sym)
			if err != nil {
				return nil, err
			}
			body = append(body, dim)
		case sectionData:
			datum, err := p.parseDatumBody(sym)
			if err != nil {
				return nil, err
			}
			body = append(body, datum)
		default:
			return nil, p.errorf("unexpected assignment to %q", sym)
		}
	}
}

func (p *Parser) parseGroup() (*Group, error) {
	name, ok := p.matchSymbol()
	if !ok {
		return nil, p.error("expected group name after group:")
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &Group{Name: name, Body: body}, nil
}

// parseAttrBody parses the remainder of an attribute statement after
// "[var]:" has been consumed.
func (p *Parser) parseAttrBody(varName string) (*AttrDecl, error) {
	name, ok := p.matchSymbol()
	if !ok {
		return nil, p.error("expected attribute name after ':'")
	}
	if !p.lexer.match('=') {
		return nil, p.errorf("expected '=' after attribute name %q", name)
	}
	val, err := p.parseValue(false)
	if err != nil {
		return nil, err
	}
	if !p.lexer.match(';') {
		return nil, p.error("expected ';' after attribute value")
	}
	return &AttrDecl{Var: varName, Name: name, Value: val}, nil
}

// parseVarDeclBody parses the remainder of a variable declaration after
// its dtype keyword and name.
func (p *Parser) parseVarDeclBody(dtype, name string) (*VarDecl, error) {
	l := p.lexer
	var dims []string
	if l.match('(') {
		for {
			dim, ok := p.matchSymbol()
			if !ok {
				return nil, p.error("expected dimension name in variable declaration")
			}
			dims = append(dims, dim)
			if l.match(',') {
				continue
			}
			if l.match(')') {
				break
			}
			return nil, p.error("mismatched parentheses in variable declaration")
		}
	}
	if !l.match(';') {
		return nil, p.errorf("expected ';' after declaration of %q", name)
	}
	return &VarDecl{Type: dtype, Name: name, Dims: dims}, nil
}

// parseDimBody parses a dimension size after "name =" has been
// consumed: a non-negative integer or the UNLIMITED marker.
func (p *Parser) parseDimBody(name string) (*DimDecl, error) {
	l := p.lexer
	l.skipSpace()
	if l.eof() {
		return nil, p.error("unexpected end of input in dimension size")
	}
	dim := &DimDecl{Name: name}
	if r, _ := l.peekRune(); idChar(r) {
		if sym := l.scanIdentifier(); sym != "UNLIMITED" {
			return nil, p.errorf("bad dimension size %q", sym)
		}
		dim.Unlimited = true
	} else {
		text := l.scanNumber()
		size, err := strconv.Atoi(text)
		if err != nil || size < 0 {
			return nil, p.errorf("bad dimension size %q", text)
		}
		dim.Size = size
	}
	if !l.match(';') {
		return nil, p.errorf("expected ';' after dimension %q", name)
	}
	return dim, nil
}

// parseDatumBody parses a comma-separated literal list after "name ="
// has been consumed.
func (p *Parser) parseDatumBody(name string) (*Datum, error) {
	l := p.lexer
	var values []Literal
	for {
		v, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if !l.match(',') {
			break
		}
	}
	if !l.match(';') {
		return nil, p.errorf("expected ';' after data for %q", name)
	}
	return &Datum{Name: name, Values: values}, nil
}

// parseValue parses one literal: a quoted string, a signed number, or
// the NaN token.  A bare "_" placeholder is accepted only in data
// lists.
func (p *Parser) parseValue(placeholderOK bool) (Literal, error) {
	l := p.lexer
	l.skipSpace()
	if l.eof() {
		return Literal{}, p.error("unexpected end of input in value")
	}
	if l.matchTight('"') {
		s, err := l.scanString()
		if err != nil {
			return Literal{}, p.error(err.Error())
		}
		return Literal{Kind: LiteralString, Str: s}, nil
	}
	if r, _ := l.peekRune(); idChar(r) {
		switch sym := l.scanIdentifier(); sym {
		case "NaN", "NaNf":
			return Literal{Kind: LiteralNumber, Num: math.NaN()}, nil
		case "_":
			if placeholderOK {
				return Literal{Kind: LiteralUnset}, nil
			}
			return Literal{}, p.error("'_' placeholder only allowed in data lists")
		default:
			return Literal{}, p.errorf("unexpected symbol %q in value", sym)
		}
	}
	text := l.scanNumber()
	if text == "" {
		return Literal{}, p.errorf("unexpected character %q in value", l.cursor[0])
	}
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Literal{}, p.errorf("malformed number %q", text)
	}
	return Literal{Kind: LiteralNumber, Num: num}, nil
}

func (p *Parser) matchSymbol() (string, bool) {
	l := p.lexer
	l.skipSpace()
	if l.eof() {
		return "", false
	}
	if r, _ := l.peekRune(); !idChar(r) {
		return "", false
	}
	return l.scanIdentifier(), true
}

func (p *Parser) error(msg string) error {
	line, column := p.lexer.position()
	return &SyntaxError{Msg: msg, Line: line, Column: column}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return p.error(fmt.Sprintf(format, args...))
}
