package headerseg

import "fmt"

// absent is the length of a Span that holds no value at all,
// as opposed to an empty one.
const absent = -1

// A Span is a view into a string: length bytes starting at offset.
// A Span may be absent, which is different from being empty.
// The zero Span is empty, not absent.
type Span struct {
	src    string
	offset int
	length int
}

// NewSpan returns a Span of length bytes of src starting at offset.
// A negative length makes an absent Span. NewSpan panics if the bounds
// do not fit in src.
func NewSpan(src string, offset, length int) Span {
	if length < 0 {
		return AbsentSpan()
	}
	if offset < 0 || offset+length > len(src) {
		panic(fmt.Sprintf("headerseg: span [%d:%d] out of range for length %d",
			offset, offset+length, len(src)))
	}
	return Span{src: src, offset: offset, length: length}
}

// AbsentSpan returns a Span that holds no value.
func AbsentSpan() Span {
	return Span{length: absent}
}

// HasValue reports whether s is not absent.
func (s Span) HasValue() bool {
	return s.length != absent
}

// Value returns the text of s. If s is absent, ok is false.
func (s Span) Value() (v string, ok bool) {
	if s.length == absent {
		return "", false
	}
	return s.src[s.offset : s.offset+s.length], true
}

// String returns the text of s, or "" if s is absent.
func (s Span) String() string {
	v, _ := s.Value()
	return v
}

// Offset returns the position of s in its source string.
func (s Span) Offset() int { return s.offset }

// Len returns the length of s in bytes, or -1 if s is absent.
func (s Span) Len() int { return s.length }

// Equal reports whether s and other are both absent, or point at
// the same range of equal source strings.
func (s Span) Equal(other Span) bool {
	if s.length == absent || other.length == absent {
		return s.length == other.length
	}
	return s.offset == other.offset && s.length == other.length &&
		s.src == other.src
}
