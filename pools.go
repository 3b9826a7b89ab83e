package edigen

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Category identifies one pool of domain data in the registry
type Category string

const (
	CategoryProcedureCodes   Category = "procedure_codes"
	CategoryDiagnosisCodes   Category = "diagnosis_codes"
	CategoryProviders        Category = "providers"
	CategoryFacilities       Category = "facilities"
	CategoryPayers           Category = "payers"
	CategoryManagedCareOrgs  Category = "managed_care_orgs"
	CategoryAuthServiceTypes Category = "auth_service_types"
	CategoryPlaceOfService   Category = "place_of_service_codes"
	CategoryFirstNames       Category = "first_names"
	CategoryLastNames        Category = "last_names"
)

// Entry is one row of a data pool: an opaque code/description pair,
// optionally tagged with the lines of business it applies to. An
// entry with no tags is visible to every line of business.
type Entry struct {
	Code        string           `yaml:"code"`
	Description string           `yaml:"description"`
	LOB         []LineOfBusiness `yaml:"lob,omitempty"`
}

// Registry maps pool categories to their entries. It is loaded once
// from the embedded dataset, never mutated, and shared by all body
// generators.
type Registry struct {
	pools map[Category][]Entry
}

//go:embed pools.yaml
var poolsYAML []byte

var defaultRegistry *Registry

func init() {
	r, err := LoadRegistry(poolsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded pool data: %v", err))
	}
	defaultRegistry = r
}

// DefaultRegistry returns the registry backed by the embedded dataset
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// LoadRegistry parses a YAML pool document mapping category names to
// entry lists
func LoadRegistry(data []byte) (*Registry, error) {
	pools := map[Category][]Entry{}
	if err := yaml.Unmarshal(data, &pools); err != nil {
		return nil, fmt.Errorf("parsing pool data: %w", err)
	}
	for category, entries := range pools {
		for _, e := range entries {
			if e.Code == "" {
				return nil, fmt.Errorf(
					"pool '%s' has an entry with no code",
					category,
				)
			}
			for _, lob := range e.LOB {
				if !lineOfBusinessTags[lob] {
					return nil, fmt.Errorf(
						"pool '%s' entry '%s' has unknown lob tag '%s'",
						category,
						e.Code,
						lob,
					)
				}
			}
		}
	}
	return &Registry{pools: pools}, nil
}

// PoolFor returns the entries for the given category, filtered to the
// given line of business. The zero value or LOBAll selects the union
// of all lines of business. An unknown category or lob tag is a
// configuration error.
func (r *Registry) PoolFor(category Category, lob LineOfBusiness) (
	[]Entry,
	error,
) {
	if lob != "" && !lineOfBusinessTags[lob] {
		return nil, newConfigErr(ErrUnknownLineOfBusiness, string(lob))
	}
	entries, ok := r.pools[category]
	if !ok {
		return nil, newConfigErr(ErrUnknownPoolCategory, string(category))
	}
	if lob == "" || lob == LOBAll {
		return entries, nil
	}
	var filtered []Entry
	for _, e := range entries {
		if len(e.LOB) == 0 || slices.Contains(e.LOB, lob) {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return nil, newConfigErr(
			ErrEmptyPool,
			fmt.Sprintf("%s/%s", category, lob),
		)
	}
	return filtered, nil
}
