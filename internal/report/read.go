package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strings"
)

// ReadHeader reads a MIME-style header block from r, up to the first blank
// line or the end of input. A leading HTTP request or status line is
// skipped. Field names are canonicalized, and leading and trailing
// whitespace of each line is lost, as with any HTTP message.
func ReadHeader(r io.Reader) (http.Header, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	s := string(b)
	first, rest, _ := strings.Cut(s, "\n")
	if strings.HasPrefix(first, "HTTP/") || strings.Contains(first, " HTTP/") {
		s = rest
	}
	h, err := textproto.NewReader(bufio.NewReader(strings.NewReader(s))).ReadMIMEHeader()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	if h == nil {
		h = textproto.MIMEHeader{}
	}
	return http.Header(h), nil
}
