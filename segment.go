package edigen

import "strings"

// Delimiters holds the separator set used to render segments. One set
// is chosen for an entire run; this package only produces output, so
// there is no detection step.
type Delimiters struct {
	Element    string
	Segment    string
	SubElement string
	Repetition string
}

// DefaultDelimiters is the delimiter set used for all generated
// output: '*' element, '~' segment terminator, ':' sub-element,
// '^' repetition.
var DefaultDelimiters = Delimiters{
	Element:    "*",
	Segment:    "~",
	SubElement: ":",
	Repetition: "^",
}

// Element is one field position within a segment: a Scalar, a
// Composite, or a Repeat group. The empty Scalar renders as nothing
// but still holds its position unless it falls in the trailing run.
type Element interface {
	format(d Delimiters) string
}

// Scalar is a simple element value
type Scalar string

func (s Scalar) format(Delimiters) string {
	return string(s)
}

// Composite is an ordered sequence of sub-values joined by the
// sub-element separator. Interior empty sub-values keep their
// position; trailing empties are trimmed.
type Composite []string

func (c Composite) format(d Delimiters) string {
	vals := removeTrailingEmptyElements([]string(c))
	return strings.Join(vals, d.SubElement)
}

// Repeat is a repeated element: occurrences joined by the repetition
// separator. Each occurrence is a Scalar or Composite.
type Repeat []Element

func (r Repeat) format(d Delimiters) string {
	vals := make([]string, len(r))
	for i, e := range r {
		vals[i] = e.format(d)
	}
	vals = removeTrailingEmptyElements(vals)
	return strings.Join(vals, d.Repetition)
}

// Segment is an ordered sequence of element values identified by a
// segment ID. It carries no business meaning - semantic decisions
// (which code, which composite shape) belong to the callers that
// build it.
type Segment struct {
	ID       string
	Elements []Element
}

// NewSegment creates a segment with the given ID and elements
func NewSegment(id string, elements ...Element) Segment {
	return Segment{ID: id, Elements: elements}
}

// Seg builds a segment from plain string element values, the common
// case where no element is a composite or repeat group.
func Seg(id string, values ...string) Segment {
	elements := make([]Element, len(values))
	for i, v := range values {
		elements[i] = Scalar(v)
	}
	return Segment{ID: id, Elements: elements}
}

// Format renders the segment using the given delimiters: each element
// is rendered, a maximal run of trailing empty elements is trimmed,
// the remainder is joined by the element separator, prefixed with the
// segment ID and suffixed with the segment terminator.
func (s Segment) Format(d Delimiters) string {
	vals := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		vals[i] = e.format(d)
	}
	vals = removeTrailingEmptyElements(vals)

	var b strings.Builder
	b.WriteString(s.ID)
	for _, v := range vals {
		b.WriteString(d.Element)
		b.WriteString(v)
	}
	b.WriteString(d.Segment)
	return b.String()
}

// formatSegments renders each segment in order with the given delimiters
func formatSegments(segments []Segment, d Delimiters) []string {
	lines := make([]string, len(segments))
	for i, s := range segments {
		lines[i] = s.Format(d)
	}
	return lines
}

// removeTrailingEmptyElements returns a copy of the given slice with
// the trailing run of empty strings removed
func removeTrailingEmptyElements(elements []string) []string {
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i] != "" {
			newSlice := make([]string, i+1)
			copy(newSlice, elements)
			return newSlice
		}
	}
	return []string{}
}
