package cdl

import (
	"bytes"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer is a cursor over the input buffer.  All scanning happens on the
// cursor slice; the distance between buffer and cursor is the current
// offset, from which error positions are derived.
type lexer struct {
	buffer []byte
	cursor []byte
}

func newLexer(src string) *lexer {
	b := []byte(src)
	return &lexer{buffer: b, cursor: b}
}

func (l *lexer) skip(n int) {
	l.cursor = l.cursor[n:]
}

func (l *lexer) eof() bool {
	return len(l.cursor) == 0
}

func (l *lexer) pos() int {
	return len(l.buffer) - len(l.cursor)
}

// position converts the current offset to a 1-based line and column.
func (l *lexer) position() (line, column int) {
	line = 1
	start := 0
	for i, off := 0, l.pos(); i < off; i++ {
		if l.buffer[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, l.pos() - start + 1
}

func (l *lexer) peekRune() (rune, int) {
	return utf8.DecodeRune(l.cursor)
}

func (l *lexer) readByte() (byte, bool) {
	if l.eof() {
		return 0, false
	}
	b := l.cursor[0]
	l.skip(1)
	return b, true
}

// match skips whitespace and comments, then consumes b if it is next.
func (l *lexer) match(b byte) bool {
	l.skipSpace()
	return l.matchTight(b)
}

func (l *lexer) matchTight(b byte) bool {
	if !l.eof() && l.cursor[0] == b {
		l.skip(1)
		return true
	}
	return false
}

func (l *lexer) matchBytesTight(b []byte) bool {
	n := len(b)
	if n > len(l.cursor) || !bytes.Equal(b, l.cursor[:n]) {
		return false
	}
	l.skip(n)
	return true
}

var slashCommentStart = []byte("//")

// skipSpace advances past whitespace and "//" line comments.
func (l *lexer) skipSpace() {
	for !l.eof() {
		r, n := l.peekRune()
		if unicode.IsSpace(r) {
			l.skip(n)
			continue
		}
		if r == '/' && l.matchBytesTight(slashCommentStart) {
			l.skipLine()
			continue
		}
		return
	}
}

func isNewline(r rune) bool {
	switch r {
	case 0x000A, 0x000B, 0x000C, 0x000D, 0x0085, 0x2028, 0x2029:
		return true
	}
	return false
}

func (l *lexer) skipLine() {
	for !l.eof() {
		r, n := l.peekRune()
		l.skip(n)
		if isNewline(r) {
			return
		}
	}
}

// scanString scans a string literal after the opening quote has been
// consumed, resolving backslash escapes, and consumes the closing
// quote.
func (l *lexer) scanString() (string, error) {
	var s strings.Builder
	for {
		c, ok := l.readByte()
		if !ok {
			return "", errors.New("unterminated string literal")
		}
		if c == '"' {
			return s.String(), nil
		}
		if c == '\n' {
			return "", errors.New("unescaped linebreak in string literal")
		}
		if c == '\\' {
			c, ok = l.readByte()
			if !ok {
				return "", errors.New("unterminated string literal")
			}
			switch c {
			case '"', '\\': // nothing
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			default:
				s.WriteByte('\\')
			}
		}
		s.WriteByte(c)
	}
}

func idChar(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// scanIdentifier scans a CNAME: a letter or underscore followed by any
// run of letters, digits, and underscores.  The caller has already
// checked that the next rune starts an identifier.
func (l *lexer) scanIdentifier() string {
	var s strings.Builder
	for !l.eof() {
		r, n := l.peekRune()
		if !idChar(r) && !unicode.IsDigit(r) {
			break
		}
		s.WriteRune(r)
		l.skip(n)
	}
	return s.String()
}

// scanNumber scans the longest prefix matching a signed decimal number
// with optional fraction and exponent, returning the raw text.  The
// text may be empty or malformed; the parser validates it.
func (l *lexer) scanNumber() string {
	start := l.cursor
	if !l.eof() && (l.cursor[0] == '+' || l.cursor[0] == '-') {
		l.skip(1)
	}
	l.scanDigits()
	if !l.eof() && l.cursor[0] == '.' {
		l.skip(1)
		l.scanDigits()
	}
	if !l.eof() && (l.cursor[0] == 'e' || l.cursor[0] == 'E') {
		l.skip(1)
		if !l.eof() && (l.cursor[0] == '+' || l.cursor[0] == '-') {
			l.skip(1)
		}
		l.scanDigits()
	}
	return string(start[:len(start)-len(l.cursor)])
}

func (l *lexer) scanDigits() {
	for !l.eof() && l.cursor[0] >= '0' && l.cursor[0] <= '9' {
		l.skip(1)
	}
}
