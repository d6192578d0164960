package headerseg

import (
	"math/rand"
	"net/http"
	"reflect"
	"testing"
)

func checkParse(t *testing.T, header http.Header, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("parsing: %#v\nexpected: %#v\nactual:   %#v",
			header, expected, actual)
	}
}

func checkGenerate(t *testing.T, input interface{}, expected, actual http.Header) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("generating: %#v\nexpected: %#v\nactual:   %#v",
			input, expected, actual)
	}
}

// randValues returns 1 to 3 random field values, biased towards punctuation
// and whitespace, to trigger more scanner states.
func randValues(r *rand.Rand) []string {
	const chars = "\x00 \t\r\n,,;=-()'*/\"\"\\abcdefghijklmnopqrstuvwxyz\u00a0é"
	values := make([]string, 1+r.Intn(3))
	for i := range values {
		b := make([]byte, r.Intn(64))
		for j := range b {
			b[j] = chars[r.Intn(len(chars))]
		}
		values[i] = string(b)
	}
	return values
}

func checkFuzz(t *testing.T, name string, parseFunc, generateFunc interface{}) {
	// Simplistic fuzz testing: On any input, the parse function must not panic,
	// and the generate function, if any, must not panic on the result of the parse.
	t.Helper()
	parseFuncV := reflect.ValueOf(parseFunc)
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			header := http.Header{}
			for _, v := range randValues(r) {
				header.Add(name, v)
			}
			t.Logf("header: %#v", header)
			headerV := reflect.ValueOf(header)
			resultV := parseFuncV.Call([]reflect.Value{headerV})
			t.Logf("parsed: %#v", resultV)
			if generateFunc != nil {
				reflect.ValueOf(generateFunc).Call(
					append([]reflect.Value{headerV}, resultV...))
			}
		})
	}
}

// collect returns all segments of values as (formatting, data) pairs,
// with a nil data for an absent one.
func collect(values []string) []pair {
	var pairs []pair
	for seg := range NewSegments(values).All() {
		pairs = append(pairs, toPair(seg))
	}
	return pairs
}

type pair struct {
	formatting string
	data       *string
}

func toPair(seg Segment) pair {
	p := pair{formatting: seg.Formatting.String()}
	if v, ok := seg.Data.Value(); ok {
		p.data = &v
	}
	return p
}

func withData(formatting, data string) pair {
	return pair{formatting, &data}
}

func noData(formatting string) pair {
	return pair{formatting: formatting}
}
