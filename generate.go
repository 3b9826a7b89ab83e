package edigen

import (
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Options configures one generation run. Type selects the transaction
// set; LOB scopes the data pools (empty or ALL for the cross-line
// pool); Records sets the dominant repetition count for the type when
// HasRecords is set, otherwise a type-specific default range is
// drawn; Seed makes output byte-reproducible when HasSeed is set.
type Options struct {
	Type       TransactionType
	LOB        LineOfBusiness
	Records    int
	HasRecords bool
	Seed       uint64
	HasSeed    bool
	Pretty     bool

	// Registry overrides the embedded data pools when non-nil
	Registry *Registry
	// Delimiters overrides DefaultDelimiters when non-zero
	Delimiters Delimiters
}

func (o Options) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry()
}

func (o Options) delimiters() Delimiters {
	if o.Delimiters == (Delimiters{}) {
		return DefaultDelimiters
	}
	return o.Delimiters
}

// bodyGenerator produces the ordered body segment list for one ST...SE
// unit of its transaction type
type bodyGenerator func(
	src *Source,
	reg *Registry,
	lob LineOfBusiness,
	records int,
) ([]Segment, error)

var bodyGenerators = map[TransactionType]bodyGenerator{
	Transaction837P: generate837P,
	Transaction835:  generate835,
	Transaction270:  generate270,
	Transaction271:  generate271,
	Transaction278:  generate278,
	Transaction999:  generate999,
}

// defaultRecordRanges holds the per-type record count range drawn
// when the caller does not supply one
var defaultRecordRanges = map[TransactionType][2]int{
	Transaction837P: {3, 10},
	Transaction835:  {5, 15},
	Transaction270:  {5, 15},
	Transaction271:  {5, 15},
	Transaction278:  {1, 5},
	Transaction999:  {5, 15},
}

// payerIsSender reports whether the payer side originates the given
// transaction type, which decides the envelope sender/receiver
// direction
var payerIsSender = map[TransactionType]bool{
	Transaction835: true,
	Transaction271: true,
	Transaction999: true,
}

// Generate produces the full rendered text of one file of the
// configured transaction type.
func Generate(opts Options) (string, error) {
	if err := validateOptions(opts); err != nil {
		return "", err
	}
	src := NewRandomSource()
	if opts.HasSeed {
		src = NewSource(opts.Seed)
	}
	return generateOne(opts.Type, opts, src)
}

// GenerateAll produces one file per supported transaction type. Each
// type draws from its own Source derived from the shared seed and the
// type's fixed index, so output is independent of scheduling order
// and remains byte-reproducible under a seed.
func GenerateAll(opts Options) (map[TransactionType]string, error) {
	for _, t := range TransactionTypes {
		perType := opts
		perType.Type = t
		if err := validateOptions(perType); err != nil {
			return nil, err
		}
	}

	baseSeed := opts.Seed
	if !opts.HasSeed {
		baseSeed = NewRandomSource().seed
	}
	base := NewSource(baseSeed)

	results := make(map[TransactionType]string, len(TransactionTypes))
	var mu sync.Mutex
	var g errgroup.Group
	for i, t := range TransactionTypes {
		i, t := i, t
		g.Go(
			func() error {
				text, err := generateOne(t, opts, base.Derive(uint64(i)))
				if err != nil {
					return err
				}
				mu.Lock()
				results[t] = text
				mu.Unlock()
				return nil
			},
		)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// validateOptions surfaces configuration errors before any draw is
// made
func validateOptions(opts Options) error {
	if _, ok := bodyGenerators[opts.Type]; !ok {
		return newConfigErr(ErrUnknownTransactionType, string(opts.Type))
	}
	if opts.LOB != "" && !lineOfBusinessTags[opts.LOB] {
		return newConfigErr(ErrUnknownLineOfBusiness, string(opts.LOB))
	}
	if opts.HasRecords && opts.Records < 0 {
		return newConfigErr(
			ErrInvalidRecordCount,
			strconv.Itoa(opts.Records),
		)
	}
	return nil
}

// generateOne runs one body generator against the given Source and
// wraps its output in a fresh envelope.
func generateOne(t TransactionType, opts Options, src *Source) (
	string,
	error,
) {
	reg := opts.registry()

	records := opts.Records
	if !opts.HasRecords {
		r := defaultRecordRanges[t]
		records = src.between(r[0], r[1])
	}

	// trading partners for the envelope
	d := newDrawer(src, reg, opts.LOB)
	provider := d.entry(CategoryProviders)
	payer := d.entry(CategoryPayers)
	if d.err != nil {
		return "", d.err
	}
	sender := compressID(provider.Description)
	receiver := compressID(payer.Description)
	if payerIsSender[t] {
		sender, receiver = receiver, sender
	}

	body, err := bodyGenerators[t](src, reg, opts.LOB, records)
	if err != nil {
		return "", err
	}

	env := &Envelope{
		SenderID:   sender,
		ReceiverID: receiver,
		Source:     src,
		Delimiters: opts.delimiters(),
	}
	lines, err := env.Wrap(t, body)
	if err != nil {
		return "", err
	}
	return Render(lines, opts.Pretty), nil
}
