package edigen

import "strconv"

// claim835 is one claim payment drawn before the header is rendered,
// since BPR02 must equal the total of all claim payments.
type claim835 struct {
	segments  []Segment
	paidCents int
}

// generate835 builds the body of an 835 remittance advice: BPR/TRN
// payment header, payer and payee identification, then one CLP loop
// per claim with service-level SVC detail. CLP06 always carries the
// workers' compensation filing indicator. Line payments never exceed
// line charges, claim totals are the sum of their lines, and the BPR
// payment amount is the sum of all claim payments.
func generate835(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error) {
	d := newDrawer(src, reg, lob)

	payer := d.entry(CategoryPayers)
	payerAddr := d.address()
	contactFirst, contactLast := d.personName()
	payee := d.entry(CategoryProviders)
	trace := d.trace()
	payerEIN := d.taxID()
	payeeTaxID := d.taxID()
	paymentDate := d.serviceDate()

	claims := make([]claim835, records)
	totalPaidCents := 0
	for i := 0; i < records; i++ {
		c, err := build835Claim(d, i+1)
		if err != nil {
			return nil, err
		}
		claims[i] = c
		totalPaidCents += c.paidCents
	}
	if d.err != nil {
		return nil, d.err
	}

	segments := []Segment{
		Seg(
			"BPR",
			"I",
			cents(totalPaidCents),
			"C",
			"ACH",
			"CCP",
			"01",
			d.src.Digits(9),
			"DA",
			d.src.Digits(10),
			"1"+payerEIN,
			"",
			"01",
			d.src.Digits(9),
			"DA",
			d.src.Digits(10),
			ediDate(paymentDate),
		),
		Seg("TRN", "1", trace, "1"+payerEIN),
		Seg("DTM", "405", ediDate(paymentDate)),
		Seg("N1", "PR", payer.Description),
		Seg("N3", payerAddr.street),
		Seg("N4", payerAddr.city, payerAddr.state, payerAddr.zip),
		Seg(
			"PER", "BL", contactFirst+" "+contactLast,
			"TE", d.phone(),
		),
		Seg("N1", "PE", payee.Description, "XX", payee.Code),
		Seg("REF", "TJ", payeeTaxID),
		Seg("LX", "1"),
	}
	for _, c := range claims {
		segments = append(segments, c.segments...)
	}
	return segments, d.err
}

// build835Claim renders one CLP claim payment loop
func build835Claim(d *drawer, seq int) (claim835, error) {
	first, last := d.personName()
	renderingFirst, renderingLast := d.personName()
	pos := d.entry(CategoryPlaceOfService)
	periodStart := d.serviceDate()
	periodEnd := periodStart.AddDate(0, 0, d.src.between(0, 21))

	// claim status 1 (processed as primary) dominates, with some
	// processed-as-secondary and a few denials
	status, err := weightedChoice(
		d.src, []weighted[string]{
			{item: "1", weight: 8},
			{item: "2", weight: 1},
			{item: "4", weight: 1},
		},
	)
	if err != nil {
		return claim835{}, err
	}
	denied := status == "4"

	lineCount := d.src.between(1, 4)
	var lines []Segment
	chargeCents := 0
	paidCents := 0
	for j := 0; j < lineCount; j++ {
		procedure := d.entry(CategoryProcedureCodes)
		units := d.src.between(1, 6)
		lineCharge := d.src.AmountCents(4500, 65000)
		linePaid := 0
		if !denied {
			linePaid = lineCharge * d.src.between(60, 100) / 100
		}
		chargeCents += lineCharge
		paidCents += linePaid

		lines = append(
			lines,
			NewSegment(
				"SVC",
				Composite{"HC", procedure.Code},
				Scalar(cents(lineCharge)),
				Scalar(cents(linePaid)),
				Scalar(""),
				Scalar(strconv.Itoa(units)),
			),
			Seg("DTM", "472", ediDate(d.serviceDate())),
		)
		if linePaid < lineCharge {
			group := "CO"
			reason := "45"
			if denied {
				reason = "96"
			}
			lines = append(
				lines,
				Seg("CAS", group, reason, cents(lineCharge-linePaid)),
			)
		}
		lines = append(lines, Seg("AMT", "B6", cents(linePaid)))
	}

	segments := []Segment{
		Seg(
			"CLP",
			"CLM"+strconv.Itoa(seq)+d.src.Digits(6),
			status,
			cents(chargeCents),
			cents(paidCents),
			// no patient responsibility under workers' comp
			cents(0),
			wcFilingIndicator,
			d.src.Digits(12),
			pos.Code,
			"1",
		),
		Seg("NM1", "QC", "1", last, first, "", "", "", "MI", d.memberID()),
		Seg(
			"NM1", "82", "1", renderingLast, renderingFirst,
			"", "", "", "XX", "1"+d.src.Digits(9),
		),
		Seg("REF", refQualifierAgencyClaim, d.claimNumber()),
		Seg("DTM", "232", ediDate(periodStart)),
		Seg("DTM", "233", ediDate(periodEnd)),
	}
	segments = append(segments, lines...)
	return claim835{segments: segments, paidCents: paidCents}, d.err
}
