package edigen

import "strconv"

// subscribersPerProvider caps how many level-22 subscribers share one
// requesting-provider HL in a 278
const subscribersPerProvider = 3

// generate278 builds the body of a 278 authorization request: a UMO
// (utilization management organization) HL root, requesting-provider
// HL children, subscriber HL grandchildren and one patient-event HL
// leaf per record. Each event carries the UM request, event date,
// diagnosis and one SV1 service line. Subscribers are grouped under a
// new provider level after every third record.
func generate278(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error) {
	d := newDrawer(src, reg, lob)

	umo := d.entry(CategoryManagedCareOrgs)
	created := d.serviceDate()

	segments := []Segment{
		Seg("BHT", "0007", "13", d.trace(), ediDate(created), d.clockTime()),
	}

	tree := NewHLTree()
	umoHL := tree.Root(hlLevelInformationSource)

	// tree shape is fixed before any payload is drawn
	type eventChain struct {
		providerHL   int
		subscriberHL int
		eventHL      int
	}
	chains := make([]eventChain, records)
	providerHL := 0
	for i := 0; i < records; i++ {
		if i%subscribersPerProvider == 0 {
			providerHL = tree.Child(umoHL, hlLevelInformationReceiver)
		}
		subscriberHL := tree.Child(providerHL, hlLevelSubscriber)
		chains[i] = eventChain{
			providerHL:   providerHL,
			subscriberHL: subscriberHL,
			eventHL:      tree.Child(subscriberHL, hlLevelPatientEvent),
		}
	}

	segments = append(
		segments,
		tree.Segment(umoHL),
		Seg(
			"NM1", "X3", "2", umo.Description,
			"", "", "", "", "PI", umo.Code,
		),
	)

	lastProvider := 0
	for i := 0; i < records; i++ {
		chain := chains[i]
		if chain.providerHL != lastProvider {
			provider := d.entry(CategoryProviders)
			segments = append(
				segments,
				tree.Segment(chain.providerHL),
				Seg(
					"NM1", "1P", "2", provider.Description,
					"", "", "", "", "XX", provider.Code,
				),
				Seg("REF", "EI", d.taxID()),
			)
			lastProvider = chain.providerHL
		}

		first, last := d.personName()
		segments = append(
			segments,
			tree.Segment(chain.subscriberHL),
			Seg(
				"NM1", "IL", "1", last, first,
				"", "", "", "MI", d.memberID(),
			),
			Seg("REF", refQualifierAgencyClaim, d.claimNumber()),
			Seg("DMG", "D8", ediDate(d.birthDate()), d.gender()),
		)

		event, err := build278Event(d, tree, chain.eventHL)
		if err != nil {
			return nil, err
		}
		segments = append(segments, event...)
	}
	if d.err != nil {
		return nil, d.err
	}
	return segments, nil
}

// build278Event renders one patient-event level with its service
// request detail
func build278Event(d *drawer, tree *HLTree, hlId int) ([]Segment, error) {
	serviceType := d.entry(CategoryAuthServiceTypes)
	pos := d.entry(CategoryPlaceOfService)
	diagnosis := d.entry(CategoryDiagnosisCodes)
	procedure := d.entry(CategoryProcedureCodes)
	eventDate := d.serviceDate()
	units := d.src.between(1, 12)
	amountCents := d.src.AmountCents(10000, 250000)

	return []Segment{
		tree.Segment(hlId),
		Seg("TRN", "1", d.trace(), "1"+d.taxID()),
		NewSegment(
			"UM",
			Scalar("HS"),
			Scalar("I"),
			Scalar(serviceType.Code),
			Composite{pos.Code, "B"},
			Scalar(""),
			Scalar(""),
			Scalar(""),
			Scalar(""),
			Scalar("Y"),
		),
		Seg("DTP", "435", "D8", ediDate(eventDate)),
		NewSegment("HI", Composite{"ABK", diagnosis.Code}),
		NewSegment(
			"SV1",
			Composite{"HC", procedure.Code},
			Scalar(cents(amountCents)),
			Scalar("UN"),
			Scalar(strconv.Itoa(units)),
		),
		Seg("HSD", "VS", strconv.Itoa(units)),
	}, d.err
}
