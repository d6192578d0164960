package headerseg

import (
	"net/http"
	"strings"
)

// HeaderSegments returns the segments of all occurrences of the field name
// in h. The name must already be in canonical form (see
// http.CanonicalHeaderKey).
func HeaderSegments(h http.Header, name string) Segments {
	return NewSegments(h[name])
}

// Split returns the comma-separated elements of the field name in h,
// across all of its occurrences. An element wrapped in double quotes is
// returned without them; nothing inside is unescaped.
//
// If there is no such field in h, Split returns nil.
// If the field is present but has no elements, Split returns
// a non-nil slice of length 0.
func Split(h http.Header, name string) []string {
	values, ok := h[name]
	if !ok {
		return nil
	}
	elems := make([]string, 0, len(values))
	for it := NewSegments(values).Iter(); it.Next(); {
		if v, ok := it.Segment().Data.Value(); ok {
			elems = append(elems, dequote(v))
		}
	}
	return elems
}

// Joined returns all occurrences of the field name in h as one value,
// joined with commas. If there is no such field, ok is false.
func Joined(h http.Header, name string) (v string, ok bool) {
	values, ok := h[name]
	if !ok {
		return "", false
	}
	return strings.Join(values, ","), true
}

// SetJoined replaces the field name in h with a single occurrence
// holding values joined with commas. A value that contains a comma
// is wrapped in double quotes unless it already is. With no values,
// SetJoined deletes the field.
func SetJoined(h http.Header, name string, values ...string) {
	if len(values) == 0 {
		h.Del(name)
		return
	}
	h.Set(name, buildJoined(values))
}

// AppendJoined is like SetJoined, but keeps the values already present,
// so that the field ends up as one occurrence holding the old values
// followed by the new ones.
func AppendJoined(h http.Header, name string, values ...string) {
	old, ok := Joined(h, http.CanonicalHeaderKey(name))
	if !ok {
		SetJoined(h, name, values...)
		return
	}
	if len(values) == 0 {
		h.Set(name, old)
		return
	}
	h.Set(name, old+","+buildJoined(values))
}

func buildJoined(values []string) string {
	b := &strings.Builder{}
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(quoteIfNeeded(v))
	}
	return b.String()
}

// quoteIfNeeded wraps v in double quotes if it contains a comma,
// so that it stays one element when read back.
func quoteIfNeeded(v string) string {
	if strings.TrimSpace(v) == "" || !strings.Contains(v, ",") {
		return v
	}
	if isQuoted(v) {
		return v
	}
	return `"` + v + `"`
}

func dequote(v string) string {
	if isQuoted(v) {
		return v[1 : len(v)-1]
	}
	return v
}

func isQuoted(v string) bool {
	return len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"'
}
