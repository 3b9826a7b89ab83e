package edigen

import (
	"strconv"
	"strings"
	"time"
)

// fixtureDateStart and fixtureDateEnd bound every date drawn while
// generating a file, interchange dates included. Dates come from the
// Source rather than the clock so that a seeded run stays
// byte-identical regardless of when it executes.
var (
	fixtureDateStart = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	fixtureDateEnd   = time.Date(2025, time.June, 27, 0, 0, 0, 0, time.UTC)
)

// Envelope wraps transaction bodies in the ISA/GS/ST...SE/GE/IEA
// envelope, allocating control numbers and echoing each one in its
// matching trailer.
type Envelope struct {
	SenderID   string
	ReceiverID string
	Source     *Source
	Delimiters Delimiters
}

// Wrap renders the full segment sequence for one interchange carrying
// one functional group with one transaction set: ISA, GS, ST, the
// body segments in order, then SE, GE and IEA. SE01 is the exact
// count of segments from ST through SE inclusive; ST02/SE02,
// GS06/GE02 and ISA13/IEA02 are matched pairs.
func (e *Envelope) Wrap(t TransactionType, body []Segment) (
	[]string,
	error,
) {
	functionalId, ok := functionalIdentifierCodes[t]
	if !ok {
		return nil, newConfigErr(ErrUnknownTransactionType, string(t))
	}

	isaControl := e.Source.ControlNumber(isaControlNumberDigits)
	gsControl := e.Source.ControlNumber(gsControlNumberDigits)
	stControl := e.Source.ControlNumber(stControlNumberDigits)

	interchangeDate := e.Source.Date(fixtureDateStart, fixtureDateEnd)
	interchangeTime := time.Date(
		interchangeDate.Year(),
		interchangeDate.Month(),
		interchangeDate.Day(),
		e.Source.between(6, 18),
		e.Source.between(0, 59),
		0,
		0,
		time.UTC,
	)

	d := e.Delimiters
	lines := make([]string, 0, len(body)+6)

	lines = append(lines, e.isaSegment(isaControl, interchangeTime).Format(d))
	lines = append(
		lines, Seg(
			gsSegmentId,
			functionalId,
			e.SenderID,
			e.ReceiverID,
			ediDate(interchangeTime),
			ediTime(interchangeTime),
			gsControl,
			responsibleAgency,
			gsVersion,
		).Format(d),
	)
	lines = append(
		lines, Seg(
			stSegmentId,
			transactionSetCodes[t],
			stControl,
			implementationConventions[t],
		).Format(d),
	)
	lines = append(lines, formatSegments(body, d)...)

	// ST + body + SE
	seCount := len(body) + 2
	lines = append(
		lines, Seg(
			seSegmentId,
			strconv.Itoa(seCount),
			stControl,
		).Format(d),
	)
	lines = append(lines, Seg(geSegmentId, "1", gsControl).Format(d))
	lines = append(lines, Seg(ieaSegmentId, "1", isaControl).Format(d))

	return lines, nil
}

// isaSegment builds the fixed-width ISA header. Every element is
// padded to its exact length; ISA11 carries the repetition separator
// and ISA16 the sub-element separator.
func (e *Envelope) isaSegment(controlNumber string, at time.Time) Segment {
	return Seg(
		isaSegmentId,
		authInfoQualifier,
		pad("", isaLenAuthInfo),
		securityQualifier,
		pad("", isaLenSecurityInfo),
		senderIdQualifier,
		pad(e.SenderID, isaLenSenderId),
		receiverIdQualifier,
		pad(e.ReceiverID, isaLenReceiverId),
		ediDateShort(at),
		ediTime(at),
		e.Delimiters.Repetition,
		isaVersion,
		controlNumber,
		"0",
		usageIndicatorTest,
		e.Delimiters.SubElement,
	)
}

// Render joins rendered segment lines into final file text. Pretty
// mode inserts a line break after every segment terminator and does
// not otherwise alter the wire content.
func Render(lines []string, pretty bool) string {
	if pretty {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines, "")
}

// pad right-pads (or truncates) a value to the given fixed width
func pad(value string, width int) string {
	if len(value) > width {
		return value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}
