package edigen

// generate270 builds the body of a 270 eligibility inquiry: an
// information source (payer) HL root, one information receiver
// (provider) HL child, and one level-22 HL leaf per subscriber, each
// with a TRN trace, identification, demographics and one or more EQ
// eligibility questions. REF*Y4 ties each subscriber to a workers'
// compensation claim number.
func generate270(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error) {
	d := newDrawer(src, reg, lob)

	payer := d.entry(CategoryPayers)
	provider := d.entry(CategoryProviders)
	created := d.serviceDate()

	tree := NewHLTree()
	payerHL := tree.Root(hlLevelInformationSource)
	providerHL := tree.Child(payerHL, hlLevelInformationReceiver)
	subscriberHLs := make([]int, records)
	for i := 0; i < records; i++ {
		subscriberHLs[i] = tree.Child(providerHL, hlLevelSubscriber)
	}

	segments := []Segment{
		Seg("BHT", "0022", "13", d.trace(), ediDate(created), d.clockTime()),
		tree.Segment(payerHL),
		Seg(
			"NM1", "PR", "2", payer.Description,
			"", "", "", "", "PI", payer.Code,
		),
		tree.Segment(providerHL),
		Seg(
			"NM1", "1P", "2", provider.Description,
			"", "", "", "", "XX", provider.Code,
		),
		Seg("REF", "EI", d.taxID()),
	}

	for i := 0; i < records; i++ {
		first, last := d.personName()

		segments = append(
			segments,
			tree.Segment(subscriberHLs[i]),
			Seg("TRN", "1", d.trace(), "1"+d.taxID()),
			Seg(
				"NM1", "IL", "1", last, first,
				"", "", "", "MI", d.memberID(),
			),
			Seg("REF", refQualifierAgencyClaim, d.claimNumber()),
			Seg("DMG", "D8", ediDate(d.birthDate()), d.gender()),
			Seg("DTP", "291", "D8", ediDate(d.serviceDate())),
			Seg("EQ", "30"),
		)
		for n := d.src.between(0, 2); n > 0; n-- {
			segments = append(
				segments,
				Seg("EQ", d.entry(CategoryAuthServiceTypes).Code),
			)
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	return segments, nil
}
