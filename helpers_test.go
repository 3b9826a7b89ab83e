package edigen

import (
	"strconv"
	"strings"
	"testing"
)

// failOnErr is a helper function that takes the result of a function that
// only has 1 return value (error), and fails the test if the error is not nil.
// It's intended to reduce boilerplate code in tests.
func failOnErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("%v", err)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func assertEqual[V comparable](t *testing.T, val V, expected V) {
	t.Helper()
	if val != expected {
		t.Errorf("expected:\n%#v\n\ngot:\n%#v", expected, val)
	}
}

// splitSegments splits rendered file text into segments and elements
// using the default delimiters, stripping any pretty-mode newlines,
// so tests can re-derive counts and control numbers from the wire
// content.
func splitSegments(t *testing.T, text string) [][]string {
	t.Helper()
	text = strings.ReplaceAll(text, "\n", "")
	var segments [][]string
	for _, line := range strings.Split(text, DefaultDelimiters.Segment) {
		if line == "" {
			continue
		}
		segments = append(
			segments,
			strings.Split(line, DefaultDelimiters.Element),
		)
	}
	return segments
}

// segmentsWithId returns the segments with the given segment ID
func segmentsWithId(segments [][]string, id string) [][]string {
	var matched [][]string
	for _, seg := range segments {
		if seg[0] == id {
			matched = append(matched, seg)
		}
	}
	return matched
}

// element returns the element at the given position in the segment,
// or an empty string when the segment is shorter than that (trailing
// empty elements are trimmed on render)
func element(seg []string, index int) string {
	if index >= len(seg) {
		return ""
	}
	return seg[index]
}

// parseCents converts a rendered monetary element back to integer
// cents, failing the test on anything but a non-negative amount with
// exactly two decimal places
func parseCents(t *testing.T, v string) int {
	t.Helper()
	parts := strings.Split(v, ".")
	if len(parts) != 2 || len(parts[1]) != 2 || strings.HasPrefix(v, "-") {
		t.Fatalf("malformed amount '%s'", v)
	}
	whole, err := strconv.Atoi(parts[0])
	assertNoError(t, err)
	frac, err := strconv.Atoi(parts[1])
	assertNoError(t, err)
	return whole*100 + frac
}

// generateSeeded generates one file with a fixed seed, failing the
// test on error
func generateSeeded(
	t *testing.T,
	txType TransactionType,
	records int,
	seed uint64,
) string {
	t.Helper()
	text, err := Generate(
		Options{
			Type:       txType,
			Records:    records,
			HasRecords: true,
			Seed:       seed,
			HasSeed:    true,
		},
	)
	assertNoError(t, err)
	return text
}
