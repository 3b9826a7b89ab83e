package edigen

import "strconv"

// ik3ErrorCodes are IK304 implementation segment note codes drawn for
// error and rejection detail
var ik3ErrorCodes = []string{"1", "2", "3", "4", "5", "6", "7", "8"}

// ik4ErrorCodes are IK403 implementation data element note codes
var ik4ErrorCodes = []string{"1", "2", "4", "5", "6", "7"}

// erroredSegmentIds are segment IDs cited by IK3 in generated error
// detail, drawn from the segments an 837 actually carries
var erroredSegmentIds = []string{
	"NM1", "CLM", "SV1", "DTP", "HI", "SBR", "REF", "DMG",
}

// generate999 builds the body of a 999 implementation acknowledgment:
// one AK1 for the acknowledged functional group, then one AK2/IK5
// loop per acknowledged transaction set. Outcomes are drawn roughly
// 70% accepted, 15% accepted with errors (1-2 IK3/IK4 pairs) and 15%
// rejected (2-4 pairs). The AK9 group summary reports the counts
// actually produced, not an independent sample.
func generate999(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error) {
	d := newDrawer(src, reg, lob)

	// the functional group being acknowledged
	acked, err := choice(
		d.src, []TransactionType{
			Transaction837P,
			Transaction270,
			Transaction278,
		},
	)
	if err != nil {
		return nil, err
	}

	segments := []Segment{
		Seg(
			"AK1",
			functionalIdentifierCodes[acked],
			d.src.ControlNumber(gsControlNumberDigits),
			implementationConventions[acked],
		),
	}

	accepted := 0
	errored := 0
	rejected := 0
	for i := 0; i < records; i++ {
		outcome, err := weightedChoice(
			d.src, []weighted[string]{
				{item: "A", weight: 70},
				{item: "E", weight: 15},
				{item: "R", weight: 15},
			},
		)
		if err != nil {
			return nil, err
		}

		segments = append(
			segments,
			Seg(
				"AK2",
				transactionSetCodes[acked],
				d.src.ControlNumber(stControlNumberDigits),
				implementationConventions[acked],
			),
		)

		switch outcome {
		case "A":
			accepted++
			segments = append(segments, Seg("IK5", "A"))
		case "E":
			errored++
			segments = append(segments, ikErrorDetail(d, 1, 2)...)
			segments = append(segments, Seg("IK5", "E", "5"))
		case "R":
			rejected++
			segments = append(segments, ikErrorDetail(d, 2, 4)...)
			segments = append(segments, Seg("IK5", "R", "5"))
		}
	}
	if d.err != nil {
		return nil, d.err
	}

	segments = append(
		segments,
		Seg(
			"AK9",
			ak9Status(accepted, errored, rejected),
			strconv.Itoa(records),
			strconv.Itoa(records),
			strconv.Itoa(accepted+errored),
		),
	)
	return segments, nil
}

// ikErrorDetail draws between lo and hi IK3/IK4 segment pairs
func ikErrorDetail(d *drawer, lo, hi int) []Segment {
	if d.err != nil {
		return nil
	}
	pairs := d.src.between(lo, hi)
	segments := make([]Segment, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		segmentId, err := choice(d.src, erroredSegmentIds)
		if err != nil {
			d.err = err
			return nil
		}
		ik3Code, err := choice(d.src, ik3ErrorCodes)
		if err != nil {
			d.err = err
			return nil
		}
		ik4Code, err := choice(d.src, ik4ErrorCodes)
		if err != nil {
			d.err = err
			return nil
		}
		segments = append(
			segments,
			Seg(
				"IK3", segmentId,
				strconv.Itoa(d.src.between(2, 40)), "", ik3Code,
			),
			Seg(
				"IK4", strconv.Itoa(d.src.between(1, 8)), "", ik4Code,
			),
		)
	}
	return segments
}

// ak9Status derives the AK901 group response code from the outcome
// tallies: A when everything was accepted clean, E when the only
// problems were accepted-with-errors sets, P for a mix of accepted
// and rejected, R when every set was rejected.
func ak9Status(accepted, errored, rejected int) string {
	switch {
	case rejected == 0 && errored == 0:
		return "A"
	case rejected == 0:
		return "E"
	case accepted+errored > 0:
		return "P"
	default:
		return "R"
	}
}
