package edigen

import "strconv"

// generate837P builds the body of an 837 professional claim
// transaction: submitter/receiver loops, one HL root for the billing
// provider and one level-22 HL child per claim, each carrying
// subscriber, payer, claim, service facility and service line detail.
// The subscriber is
// framed as a workers' compensation claimant: SBR09 carries the WC
// filing indicator and REF*Y4 the agency claim number.
func generate837P(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error) {
	d := newDrawer(src, reg, lob)

	submitter := d.entry(CategoryProviders)
	receiver := d.entry(CategoryPayers)
	billing := d.entry(CategoryProviders)
	billingAddr := d.address()
	contactFirst, contactLast := d.personName()
	created := d.serviceDate()

	segments := []Segment{
		Seg(
			"BHT",
			"0019",
			"00",
			d.trace(),
			ediDate(created),
			d.clockTime(),
			"CH",
		),
		Seg(
			"NM1", "41", "2", submitter.Description,
			"", "", "", "", "46", d.taxID(),
		),
		Seg("PER", "IC", contactFirst+" "+contactLast, "TE", d.phone()),
		Seg(
			"NM1", "40", "2", receiver.Description,
			"", "", "", "", "46", receiver.Code,
		),
	}

	tree := NewHLTree()
	billingHL := tree.Root(hlLevelInformationSource)
	claimHLs := make([]int, records)
	for i := 0; i < records; i++ {
		claimHLs[i] = tree.Child(billingHL, hlLevelSubscriber)
	}

	segments = append(
		segments,
		tree.Segment(billingHL),
		Seg(
			"NM1", "85", "2", billing.Description,
			"", "", "", "", "XX", billing.Code,
		),
		Seg("N3", billingAddr.street),
		Seg("N4", billingAddr.city, billingAddr.state, billingAddr.zip),
		Seg("REF", "EI", d.taxID()),
		Seg("PER", "IC", contactFirst+" "+contactLast, "TE", d.phone()),
	)

	for i := 0; i < records; i++ {
		claim, err := build837PClaim(d, tree, claimHLs[i], i+1)
		if err != nil {
			return nil, err
		}
		segments = append(segments, claim...)
	}
	if d.err != nil {
		return nil, d.err
	}
	return segments, nil
}

// build837PClaim renders one 2000B subscriber level and its claim
func build837PClaim(
	d *drawer,
	tree *HLTree,
	hlId int,
	seq int,
) ([]Segment, error) {
	payer := d.entry(CategoryPayers)
	first, last := d.personName()
	addr := d.address()
	dob := d.birthDate()
	pos := d.entry(CategoryPlaceOfService)
	renderingFirst, renderingLast := d.personName()
	facility := d.entry(CategoryFacilities)
	facilityAddr := d.address()
	onset := d.serviceDate()

	// service lines first, so the claim amount can be their total
	lineCount := d.src.between(1, 3)
	var lines []Segment
	totalCents := 0
	for j := 1; j <= lineCount; j++ {
		procedure := d.entry(CategoryProcedureCodes)
		units := d.src.between(1, 6)
		chargeCents := d.src.AmountCents(4500, 65000)
		totalCents += chargeCents
		lines = append(
			lines,
			Seg("LX", strconv.Itoa(j)),
			NewSegment(
				"SV1",
				Composite{"HC", procedure.Code},
				Scalar(cents(chargeCents)),
				Scalar("UN"),
				Scalar(strconv.Itoa(units)),
				Scalar(pos.Code),
				Scalar(""),
				Scalar("1"),
			),
			Seg("DTP", "472", "D8", ediDate(d.serviceDate())),
		)
	}

	diagnoses := d.entries(CategoryDiagnosisCodes, d.src.between(1, 3))
	if d.err != nil {
		return nil, d.err
	}
	hi := Segment{ID: "HI"}
	for j, dx := range diagnoses {
		qualifier := "ABF"
		if j == 0 {
			qualifier = "ABK"
		}
		hi.Elements = append(hi.Elements, Composite{qualifier, dx.Code})
	}

	segments := []Segment{
		tree.Segment(hlId),
		Seg(
			"SBR", "P", "18", "GRP"+d.src.Digits(5), "",
			"", "", "", "", wcFilingIndicator,
		),
		Seg("NM1", "IL", "1", last, first, "", "", "", "MI", d.memberID()),
		Seg("N3", addr.street),
		Seg("N4", addr.city, addr.state, addr.zip),
		Seg("DMG", "D8", ediDate(dob), d.gender()),
		Seg(
			"NM1", "PR", "2", payer.Description,
			"", "", "", "", "PI", payer.Code,
		),
		Seg("REF", refQualifierAgencyClaim, d.claimNumber()),
		NewSegment(
			"CLM",
			Scalar("CLM"+strconv.Itoa(seq)+d.src.Digits(6)),
			Scalar(cents(totalCents)),
			Scalar(""),
			Scalar(""),
			Composite{pos.Code, "B", "1"},
			Scalar("Y"),
			Scalar("A"),
			Scalar("Y"),
			Scalar("Y"),
		),
		Seg("DTP", "431", "D8", ediDate(onset)),
		hi,
		Seg(
			"NM1", "82", "1", renderingLast, renderingFirst,
			"", "", "", "XX", "1"+d.src.Digits(9),
		),
		Seg(
			"NM1", "77", "2", facility.Description,
			"", "", "", "", "XX", facility.Code,
		),
		Seg("N3", facilityAddr.street),
		Seg(
			"N4",
			facilityAddr.city,
			facilityAddr.state,
			facilityAddr.zip,
		),
	}
	segments = append(segments, lines...)
	return segments, d.err
}
