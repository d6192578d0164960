// Package report turns header fields into their segments, for display.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/vfaronov/headerseg"
)

// A SegmentView is a headerseg.Segment as plain strings.
// Data is nil when the segment has no data.
type SegmentView struct {
	Formatting string  `json:"formatting"`
	Data       *string `json:"data"`
}

// A Field holds the segments of all occurrences of one header field.
type Field struct {
	Name     string        `json:"name"`
	Values   []string      `json:"values"`
	Segments []SegmentView `json:"segments"`
}

// A Document is the report for one header block.
type Document struct {
	Source string  `json:"source,omitempty"`
	Fields []Field `json:"fields"`
}

type Options struct {
	// DataOnly drops segments without data.
	DataOnly bool
}

// Build reports on every field in h, sorted by name.
func Build(h http.Header, opts Options) []Field {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, BuildField(name, h[name], opts))
	}
	return fields
}

// BuildField reports on one field with the given values.
func BuildField(name string, values []string, opts Options) Field {
	field := Field{
		Name:     name,
		Values:   values,
		Segments: make([]SegmentView, 0, len(values)),
	}
	for seg := range headerseg.NewSegments(values).All() {
		view := SegmentView{Formatting: seg.Formatting.String()}
		if data, ok := seg.Data.Value(); ok {
			view.Data = &data
		} else if opts.DataOnly {
			continue
		}
		field.Segments = append(field.Segments, view)
	}
	return field
}

// WriteText writes docs in a line-oriented form: a field name, then
// one indented line per segment with its quoted formatting and data,
// or "-" for no data.
func WriteText(w io.Writer, docs []Document) error {
	for i, doc := range docs {
		if doc.Source != "" {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", doc.Source); err != nil {
				return err
			}
		}
		for _, field := range doc.Fields {
			if _, err := fmt.Fprintln(w, field.Name); err != nil {
				return err
			}
			for _, seg := range field.Segments {
				data := "-"
				if seg.Data != nil {
					data = strconv.Quote(*seg.Data)
				}
				_, err := fmt.Fprintf(w, "\t%s %s\n", strconv.Quote(seg.Formatting), data)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteJSON writes docs as one indented JSON array.
func WriteJSON(w io.Writer, docs []Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// Write writes docs in the given format, "text" or "json".
func Write(w io.Writer, format string, docs []Document) error {
	switch format {
	case "json":
		return WriteJSON(w, docs)
	case "text":
		return WriteText(w, docs)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
