package edigen

import (
	"strings"
	"testing"
)

func TestSegmentFormat(t *testing.T) {
	seg := Seg("NM1", "IL", "1", "LAWSON", "MARIA", "", "", "", "MI", "W12345678")
	assertEqual(
		t,
		seg.Format(DefaultDelimiters),
		"NM1*IL*1*LAWSON*MARIA*****MI*W12345678~",
	)
}

func TestSegmentFormatTrimsTrailingEmpties(t *testing.T) {
	seg := Seg("SBR", "P", "", "GRP00123", "", "", "", "", "", "WC")
	assertEqual(
		t,
		seg.Format(DefaultDelimiters),
		"SBR*P**GRP00123******WC~",
	)

	trailing := Seg("DTP", "472", "D8", "20250310", "", "")
	assertEqual(t, trailing.Format(DefaultDelimiters), "DTP*472*D8*20250310~")

	empty := Seg("LE")
	assertEqual(t, empty.Format(DefaultDelimiters), "LE~")
}

func TestCompositeFormat(t *testing.T) {
	seg := NewSegment(
		"SV1",
		Composite{"HC", "97110"},
		Scalar("120.00"),
		Scalar("UN"),
		Scalar("2"),
	)
	assertEqual(
		t,
		seg.Format(DefaultDelimiters),
		"SV1*HC:97110*120.00*UN*2~",
	)
}

func TestCompositeInteriorEmptySubValues(t *testing.T) {
	c := Composite{"11", "", "1"}
	assertEqual(t, c.format(DefaultDelimiters), "11::1")

	trailing := Composite{"11", "B", ""}
	assertEqual(t, trailing.format(DefaultDelimiters), "11:B")
}

// splitting a rendered composite on the sub-element separator must
// reproduce the ordered sub-values supplied to the composer
func TestCompositeRoundTrip(t *testing.T) {
	subValues := []string{"HC", "97530", "", "GP"}
	rendered := Composite(subValues).format(DefaultDelimiters)
	split := strings.Split(rendered, DefaultDelimiters.SubElement)
	if len(split) != len(subValues) {
		t.Fatalf("expected %d sub-values, got %d", len(subValues), len(split))
	}
	for i := range subValues {
		assertEqual(t, split[i], subValues[i])
	}
}

func TestRepeatFormat(t *testing.T) {
	seg := NewSegment(
		"EQ",
		Repeat{Scalar("30"), Scalar("98"), Scalar("AE")},
	)
	assertEqual(t, seg.Format(DefaultDelimiters), "EQ*30^98^AE~")
}

func TestRepeatOfComposites(t *testing.T) {
	r := Repeat{
		Composite{"ABK", "M5450"},
		Composite{"ABF", "M542"},
	}
	assertEqual(t, r.format(DefaultDelimiters), "ABK:M5450^ABF:M542")
}

func TestRemoveTrailingEmptyElements(t *testing.T) {
	assertEqual(
		t,
		len(removeTrailingEmptyElements([]string{"a", "", "b", "", ""})),
		3,
	)
	assertEqual(t, len(removeTrailingEmptyElements([]string{"", ""})), 0)
	assertEqual(t, len(removeTrailingEmptyElements(nil)), 0)
}
