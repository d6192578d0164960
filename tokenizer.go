package headerseg

type mode int

const (
	leadingFormatting mode = iota
	unquotedValue
	quotedValue // has seen an odd number of quotes
	trailingFormatting
)

// A scanState is everything the tokenizer knows between two characters.
// Offsets point into the value being scanned.
type scanState struct {
	mode  mode
	lead  int // start of the formatting not yet emitted
	start int // start of the element, valid outside leadingFormatting
	end   int // end of the element if the whitespace being skipped is trailing
}

// A cut holds the bounds of one segment. valStart is -1 if there is no data.
type cut struct {
	fmtStart, fmtEnd int
	valStart, valEnd int
}

func (c cut) segment(src string) Segment {
	seg := Segment{Formatting: NewSpan(src, c.fmtStart, c.fmtEnd-c.fmtStart)}
	if c.valStart < 0 {
		seg.Data = AbsentSpan()
	} else {
		seg.Data = NewSpan(src, c.valStart, c.valEnd-c.valStart)
	}
	return seg
}

// step advances st over one character of class c found at offset at.
// When that character completes a segment, step returns its bounds
// and emit is true.
func step(st scanState, c charClass, at int) (next scanState, out cut, emit bool) {
	switch st.mode {
	case leadingFormatting:
		switch c {
		case cWhitespace:
			return st, cut{}, false
		case cOther:
			return scanState{mode: unquotedValue, lead: st.lead, start: at}, cut{}, false
		case cQuote:
			return scanState{mode: quotedValue, lead: st.lead, start: at}, cut{}, false
		default: // delimiter
			return scanState{lead: at}, cut{st.lead, at, -1, -1}, true
		}

	case unquotedValue:
		switch c {
		case cOther:
			return st, cut{}, false
		case cQuote:
			st.mode = quotedValue
			return st, cut{}, false
		case cWhitespace:
			st.mode = trailingFormatting
			st.end = at
			return st, cut{}, false
		default:
			return scanState{lead: at}, cut{st.lead, st.start, st.start, at}, true
		}

	case quotedValue:
		switch c {
		case cQuote:
			st.mode = unquotedValue
			return st, cut{}, false
		case cEnd:
			// An unterminated quote ends with the value.
			return scanState{lead: at}, cut{st.lead, st.start, st.start, at}, true
		default:
			return st, cut{}, false
		}

	case trailingFormatting:
		switch c {
		case cWhitespace:
			return st, cut{}, false
		case cQuote:
			// The whitespace was inside the element after all.
			return scanState{mode: quotedValue, lead: st.lead, start: st.start}, cut{}, false
		case cOther:
			return scanState{mode: unquotedValue, lead: st.lead, start: st.start}, cut{}, false
		default:
			return scanState{lead: st.end}, cut{st.lead, st.start, st.start, st.end}, true
		}
	}
	panic("headerseg: bad scan mode")
}

// A tokenizer produces the segments of one field value.
type tokenizer struct {
	src  string
	pos  int
	st   scanState
	done bool
}

func newTokenizer(src string) tokenizer {
	return tokenizer{src: src}
}

// next returns the next segment of t.src, or false when there are no more.
// Every value, even an empty one, has at least one segment.
func (t *tokenizer) next() (Segment, bool) {
	for !t.done {
		if t.pos > len(t.src) {
			// The end has been seen. Whitespace that trailed the last
			// element is still owed as a segment of its own.
			t.done = true
			if t.st.lead < len(t.src) {
				return cut{t.st.lead, len(t.src), -1, -1}.segment(t.src), true
			}
			break
		}
		c, width := classifyAt(t.src, t.pos)
		at := t.pos
		t.pos += width
		var out cut
		var emit bool
		t.st, out, emit = step(t.st, c, at)
		if emit {
			return out.segment(t.src), true
		}
	}
	return Segment{}, false
}
