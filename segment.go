package headerseg

// A Segment is one element of a header field value.
//
// Formatting is whatever precedes the element: whitespace, and the comma
// that ended the previous element. It is never absent, but may be empty.
// Data is the element itself, with any trailing whitespace left for the
// Formatting of the next Segment. Data is absent, never empty, when there is
// no element, as between two adjacent commas or at the end of a value that
// ends with whitespace.
type Segment struct {
	Formatting Span
	Data       Span
}

// String returns Formatting followed by Data. Concatenating String of all
// segments of one field value reproduces that value exactly.
func (seg Segment) String() string {
	return seg.Formatting.String() + seg.Data.String()
}

// Equal reports whether both spans of seg and other are equal.
func (seg Segment) Equal(other Segment) bool {
	return seg.Formatting.Equal(other.Formatting) && seg.Data.Equal(other.Data)
}
