package edigen

import "strconv"

// inactiveRate is the approximate share of 271 subscribers reported
// with terminated coverage
const inactiveRate = 0.15

// generate271 builds the body of a 271 eligibility response,
// mirroring the 270 hierarchy: payer root, provider child, one
// level-22 HL per subscriber. Roughly 15% of subscribers are reported
// inactive with a plan termination date; the rest carry a benefit set
// covering active status, co-payment, deductible, out-of-pocket
// maximum and a visit limit, with internally consistent amounts.
func generate271(
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
		Seg("BHT", "0022", "11", d.trace(), ediDate(created), d.clockTime()),
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
	}

	for i := 0; i < records; i++ {
		sub, err := build271Subscriber(d, tree, subscriberHLs[i])
		if err != nil {
			return nil, err
		}
		segments = append(segments, sub...)
	}
	if d.err != nil {
		return nil, d.err
	}
	return segments, nil
}

// build271Subscriber renders one 2000C subscriber level with its
// benefit detail
func build271Subscriber(d *drawer, tree *HLTree, hlId int) (
	[]Segment,
	error,
) {
	first, last := d.personName()
	addr := d.address()
	planBegin := d.src.Date(
		fixtureDateStart.AddDate(-2, 0, 0),
		fixtureDateStart,
	)

	segments := []Segment{
		tree.Segment(hlId),
		Seg("TRN", "2", d.trace(), "1"+d.taxID()),
		Seg("NM1", "IL", "1", last, first, "", "", "", "MI", d.memberID()),
		Seg("REF", refQualifierAgencyClaim, d.claimNumber()),
		Seg("N3", addr.street),
		Seg("N4", addr.city, addr.state, addr.zip),
		Seg("DMG", "D8", ediDate(d.birthDate()), d.gender()),
		Seg("INS", "Y", "18"),
		Seg("DTP", "346", "D8", ediDate(planBegin)),
	}

	inactive := d.src.rng.Float64() < inactiveRate
	if inactive {
		termination := d.src.Date(planBegin, fixtureDateEnd)
		segments = append(
			segments,
			NewSegment(
				"EB",
				Scalar("6"),
				Scalar("IND"),
				Scalar("30"),
				Scalar(wcFilingIndicator),
			),
			Seg("DTP", "347", "D8", ediDate(termination)),
		)
		return segments, d.err
	}

	serviceType := d.entry(CategoryAuthServiceTypes)
	copayCents := d.src.AmountCents(1000, 5000)
	deductibleCents := d.src.AmountCents(25000, 150000)
	// out-of-pocket maximum always exceeds the deductible
	oopMaxCents := deductibleCents + d.src.AmountCents(100000, 500000)
	visitLimit := d.src.between(12, 60)

	segments = append(
		segments,
		// active coverage
		Seg(
			"EB", "1", "IND", "30", wcFilingIndicator,
			"WORKERS COMPENSATION PLAN",
		),
		// co-payment per visit
		Seg(
			"EB", "B", "IND", serviceType.Code, wcFilingIndicator,
			"", "27", cents(copayCents),
		),
		// calendar-year deductible
		Seg(
			"EB", "C", "IND", "30", wcFilingIndicator,
			"", "23", cents(deductibleCents),
		),
		// calendar-year out-of-pocket maximum
		Seg(
			"EB", "G", "IND", "30", wcFilingIndicator,
			"", "23", cents(oopMaxCents),
		),
		// visit limit for the service type
		Seg(
			"EB", "F", "IND", serviceType.Code, wcFilingIndicator,
			"", "23", "", "", "VS", strconv.Itoa(visitLimit),
		),
	)
	return segments, d.err
}
