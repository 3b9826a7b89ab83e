package edigen

import (
	"fmt"
	"strconv"
	"time"
)

// address is one synthetic street address used for N3/N4 pairs
type address struct {
	street string
	city   string
	state  string
	zip    string
}

var addresses = []address{
	{"4821 INDUSTRIAL PKWY", "COLUMBUS", "OH", "43204"},
	{"903 HARBOR VIEW DR", "TACOMA", "WA", "98402"},
	{"1577 COMMERCE BLVD", "MESA", "AZ", "85201"},
	{"22 GRANITE LEDGE RD", "CONCORD", "NH", "03301"},
	{"6640 SILO BEND AVE", "DES MOINES", "IA", "50310"},
	{"311 FOUNDRY ST", "BIRMINGHAM", "AL", "35203"},
	{"7845 CYPRESS MILL LN", "TAMPA", "FL", "33610"},
	{"1209 SWITCHYARD CT", "RENO", "NV", "89502"},
}

// drawer bundles the inputs every body generator consumes and keeps a
// sticky error, so a generator can chain draws and check the error
// once. The first failed draw wins; later draws return zero values.
type drawer struct {
	src *Source
	reg *Registry
	lob LineOfBusiness
	err error
}

func newDrawer(src *Source, reg *Registry, lob LineOfBusiness) *drawer {
	return &drawer{src: src, reg: reg, lob: lob}
}

// entry draws one registry entry from the given category, scoped to
// the drawer's line of business
func (d *drawer) entry(category Category) Entry {
	if d.err != nil {
		return Entry{}
	}
	pool, err := d.reg.PoolFor(category, d.lob)
	if err != nil {
		d.err = err
		return Entry{}
	}
	e, err := choice(d.src, pool)
	if err != nil {
		d.err = err
		return Entry{}
	}
	return e
}

// entries draws up to n distinct registry entries from the given
// category. Fewer are returned when the pool is smaller than n.
func (d *drawer) entries(category Category, n int) []Entry {
	if d.err != nil {
		return nil
	}
	pool, err := d.reg.PoolFor(category, d.lob)
	if err != nil {
		d.err = err
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	drawn := make([]Entry, 0, n)
	used := map[int]bool{}
	for len(drawn) < n {
		i := d.src.rng.IntN(len(pool))
		if used[i] {
			continue
		}
		used[i] = true
		drawn = append(drawn, pool[i])
	}
	return drawn
}

// personName draws a first/last name pair
func (d *drawer) personName() (first string, last string) {
	first = d.entry(CategoryFirstNames).Code
	last = d.entry(CategoryLastNames).Code
	return first, last
}

// address draws one synthetic street address
func (d *drawer) address() address {
	if d.err != nil {
		return address{}
	}
	a, err := choice(d.src, addresses)
	if err != nil {
		d.err = err
	}
	return a
}

// memberID draws a subscriber member identifier
func (d *drawer) memberID() string {
	if d.err != nil {
		return ""
	}
	return "W" + d.src.Digits(8)
}

// claimNumber draws a workers' compensation agency claim number
func (d *drawer) claimNumber() string {
	if d.err != nil {
		return ""
	}
	return "WC" + strconv.Itoa(fixtureDateStart.Year()) + d.src.Digits(6)
}

// phone draws a ten-digit phone number
func (d *drawer) phone() string {
	if d.err != nil {
		return ""
	}
	return "555" + d.src.Digits(7)
}

// taxID draws a nine-digit employer identification number
func (d *drawer) taxID() string {
	if d.err != nil {
		return ""
	}
	return d.src.Digits(9)
}

// birthDate draws a date of birth for a working-age subscriber
func (d *drawer) birthDate() time.Time {
	if d.err != nil {
		return time.Time{}
	}
	start := fixtureDateStart.AddDate(-64, 0, 0)
	end := fixtureDateStart.AddDate(-19, 0, 0)
	return d.src.Date(start, end)
}

// serviceDate draws a date within the fixture window
func (d *drawer) serviceDate() time.Time {
	if d.err != nil {
		return time.Time{}
	}
	return d.src.Date(fixtureDateStart, fixtureDateEnd)
}

// gender draws an M/F gender code
func (d *drawer) gender() string {
	if d.err != nil {
		return ""
	}
	g, err := choice(d.src, []string{"M", "F"})
	if err != nil {
		d.err = err
	}
	return g
}

// clockTime draws a business-hours HHMM clock time
func (d *drawer) clockTime() string {
	if d.err != nil {
		return ""
	}
	return fmt.Sprintf("%02d%02d", d.src.between(6, 18), d.src.between(0, 59))
}

// trace draws a UUID-derived trace identifier for BHT03/TRN02
func (d *drawer) trace() string {
	if d.err != nil {
		return ""
	}
	u := d.src.UUID()
	// element length limits cap TRN02 at 30; the 32 hex digits
	// without dashes are over, so keep the first two groups
	return u.String()[:13]
}

// compressID collapses an organization name into an envelope sender
// or receiver identifier
func compressID(name string) string {
	id := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] != ' ' {
			id = append(id, name[i])
		}
	}
	if len(id) > isaLenSenderId {
		id = id[:isaLenSenderId]
	}
	return string(id)
}
