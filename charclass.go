package headerseg

import (
	"unicode"
	"unicode/utf8"
)

type charClass int

const (
	cOther charClass = iota
	cWhitespace
	cQuote
	cComma
	cEnd // the position just past the last byte of a value
)

// isDelimiter reports whether c ends an element outside of quotes.
func (c charClass) isDelimiter() bool {
	return c == cComma || c == cEnd
}

// byteClass covers ASCII; other bytes start a multi-byte rune
// and are classified in classifyAt.
var byteClass [utf8.RuneSelf]charClass

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		b := byte(i)
		switch {
		case unicode.IsSpace(rune(b)):
			byteClass[b] = cWhitespace
		case b == '"':
			byteClass[b] = cQuote
		case b == ',':
			byteClass[b] = cComma
		default:
			byteClass[b] = cOther
		}
	}
}

// classifyAt returns the class of the rune at offset i of s, and its width.
// At i == len(s), it returns cEnd with width 1, so that scanning moves past
// the end.
func classifyAt(s string, i int) (charClass, int) {
	if i >= len(s) {
		return cEnd, 1
	}
	if b := s[i]; b < utf8.RuneSelf {
		return byteClass[b], 1
	}
	r, width := utf8.DecodeRuneInString(s[i:])
	if r != utf8.RuneError && unicode.IsSpace(r) {
		return cWhitespace, width
	}
	return cOther, width
}
