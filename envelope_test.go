package edigen

import (
	"strings"
	"testing"
)

func testEnvelope(seed uint64) *Envelope {
	return &Envelope{
		SenderID:   "SENDERCO",
		ReceiverID: "RECEIVERCO",
		Source:     NewSource(seed),
		Delimiters: DefaultDelimiters,
	}
}

func TestWrapControlNumbersMatch(t *testing.T) {
	env := testEnvelope(11)
	body := []Segment{
		Seg("BHT", "0022", "13", "REF001", "20250310", "0930"),
		Seg("HL", "1", "", "20", "0"),
	}
	lines, err := env.Wrap(Transaction270, body)
	assertNoError(t, err)

	segments := splitSegments(t, strings.Join(lines, ""))
	isa := segmentsWithId(segments, isaSegmentId)[0]
	gs := segmentsWithId(segments, gsSegmentId)[0]
	st := segmentsWithId(segments, stSegmentId)[0]
	se := segmentsWithId(segments, seSegmentId)[0]
	ge := segmentsWithId(segments, geSegmentId)[0]
	iea := segmentsWithId(segments, ieaSegmentId)[0]

	assertEqual(t, isa[isaIndexControlNumber], iea[ieaIndexControlNumber])
	assertEqual(t, gs[gsIndexControlNumber], ge[geIndexControlNumber])
	assertEqual(t, st[stIndexControlNumber], se[seIndexControlNumber])

	// ST + 2 body segments + SE
	assertEqual(t, se[seIndexNumberOfIncludedSegments], "4")
	assertEqual(t, ge[geIndexNumberOfIncludedTransactionSets], "1")
	assertEqual(t, iea[ieaIndexFunctionalGroupCount], "1")
}

func TestWrapISAFixedWidths(t *testing.T) {
	env := testEnvelope(5)
	lines, err := env.Wrap(Transaction837P, nil)
	assertNoError(t, err)

	isa := strings.TrimSuffix(lines[0], DefaultDelimiters.Segment)
	elements := strings.Split(isa, DefaultDelimiters.Element)
	assertEqual(t, len(elements), 17)
	assertEqual(t, len(elements[isaIndexAuthInfo]), isaLenAuthInfo)
	assertEqual(t, len(elements[isaIndexSecurityInfo]), isaLenSecurityInfo)
	assertEqual(t, len(elements[isaIndexSenderId]), isaLenSenderId)
	assertEqual(t, len(elements[isaIndexReceiverId]), isaLenReceiverId)
	assertEqual(t, len(elements[isaIndexDate]), isaLenDate)
	assertEqual(t, len(elements[isaIndexTime]), isaLenTime)
	assertEqual(
		t,
		len(elements[isaIndexControlNumber]),
		isaLenControlNumber,
	)
	assertEqual(
		t,
		elements[isaIndexSenderIdQualifier],
		senderIdQualifier,
	)
	assertEqual(
		t,
		elements[isaIndexReceiverIdQualifier],
		receiverIdQualifier,
	)
	assertEqual(t, elements[isaIndexVersion], isaVersion)
	assertEqual(
		t,
		elements[isaIndexRepetitionSeparator],
		DefaultDelimiters.Repetition,
	)
	assertEqual(
		t,
		elements[isaIndexComponentElementSeparator],
		DefaultDelimiters.SubElement,
	)
	assertEqual(t, elements[isaIndexUsageIndicator], usageIndicatorTest)
}

func TestWrapFunctionalIdentifiers(t *testing.T) {
	expected := map[TransactionType]string{
		Transaction837P: "HC",
		Transaction835:  "HP",
		Transaction270:  "HS",
		Transaction271:  "HB",
		Transaction278:  "HI",
		Transaction999:  "FA",
	}
	for txType, code := range expected {
		env := testEnvelope(3)
		lines, err := env.Wrap(txType, nil)
		assertNoError(t, err)
		segments := splitSegments(t, strings.Join(lines, ""))
		gs := segmentsWithId(segments, gsSegmentId)[0]
		assertEqual(t, gs[gsIndexFunctionalIdentifierCode], code)
		st := segmentsWithId(segments, stSegmentId)[0]
		assertEqual(
			t,
			st[stIndexTransactionSetCode],
			transactionSetCodes[txType],
		)
		assertEqual(
			t,
			st[stIndexVersionCode],
			implementationConventions[txType],
		)
	}
}

func TestWrapUnknownType(t *testing.T) {
	env := testEnvelope(1)
	_, err := env.Wrap("850", nil)
	if err == nil {
		t.Error("expected an error for an unsupported transaction type")
	}
}

func TestRenderPretty(t *testing.T) {
	lines := []string{"ST*270*0001~", "BHT*0022*13~", "SE*3*0001~"}
	compact := Render(lines, false)
	pretty := Render(lines, true)

	assertEqual(t, compact, "ST*270*0001~BHT*0022*13~SE*3*0001~")
	assertEqual(t, pretty, "ST*270*0001~\nBHT*0022*13~\nSE*3*0001~")
	// pretty mode must not alter the wire content
	assertEqual(t, strings.ReplaceAll(pretty, "\n", ""), compact)
}

func TestPad(t *testing.T) {
	assertEqual(t, pad("AB", 5), "AB   ")
	assertEqual(t, pad("ABCDEF", 4), "ABCD")
	assertEqual(t, pad("", 3), "   ")
}
