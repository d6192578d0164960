package headerseg

import "iter"

// Segments is the sequence of segments of all occurrences of a header field.
//
// Segments only reads the slice it was made from. Each call to Iter or All
// starts a new, independent pass, so one Segments may be iterated many times,
// including concurrently.
type Segments struct {
	values []string
}

// NewSegments returns the segments of values, in order. Each element
// of values is one occurrence of a header field. An empty string stands for
// an occurrence without a value and gives one Segment with absent Data.
// A nil or empty slice gives no segments at all.
func NewSegments(values []string) Segments {
	return Segments{values: values}
}

// Len returns the number of field values s was made from.
func (s Segments) Len() int {
	return len(s.values)
}

// Iter starts a new pass over s.
func (s Segments) Iter() *Iterator {
	return &Iterator{values: s.values}
}

// All returns an iterator over the segments of s.
func (s Segments) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for it := s.Iter(); it.Next(); {
			if !yield(it.Segment()) {
				return
			}
		}
	}
}

// Data returns the text of every segment of s that has Data.
func (s Segments) Data() []string {
	var data []string
	for it := s.Iter(); it.Next(); {
		if v, ok := it.Segment().Data.Value(); ok {
			data = append(data, v)
		}
	}
	return data
}

// An Iterator walks the segments of a Segments, in the manner
// of bufio.Scanner:
//
//	for it := segs.Iter(); it.Next(); {
//		seg := it.Segment()
//		...
//	}
type Iterator struct {
	values []string
	index  int // of the value after the one being scanned
	tok    tokenizer
	active bool
	cur    Segment
}

// Next advances to the next segment, which will then be available
// through Segment. It returns false when there are no more segments.
func (it *Iterator) Next() bool {
	for {
		if it.active {
			if seg, ok := it.tok.next(); ok {
				it.cur = seg
				return true
			}
			it.active = false
		}
		if it.index >= len(it.values) {
			it.cur = Segment{}
			return false
		}
		it.tok = newTokenizer(it.values[it.index])
		it.index++
		it.active = true
	}
}

// Segment returns the segment found by the last call to Next.
func (it *Iterator) Segment() Segment {
	return it.cur
}
