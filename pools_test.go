package edigen

import (
	"errors"
	"slices"
	"testing"
)

func TestPoolForScopesToLineOfBusiness(t *testing.T) {
	reg := DefaultRegistry()
	pt, err := reg.PoolFor(CategoryProcedureCodes, LOBPhysicalTherapy)
	assertNoError(t, err)
	if len(pt) == 0 {
		t.Fatal("expected a non-empty PT procedure pool")
	}
	for _, e := range pt {
		if len(e.LOB) > 0 && !slices.Contains(e.LOB, LOBPhysicalTherapy) {
			t.Errorf("entry '%s' is not tagged PT", e.Code)
		}
	}

	all, err := reg.PoolFor(CategoryProcedureCodes, LOBAll)
	assertNoError(t, err)
	if len(all) <= len(pt) {
		t.Errorf(
			"expected the cross-line pool (%d) to exceed the PT pool (%d)",
			len(all),
			len(pt),
		)
	}

	unset, err := reg.PoolFor(CategoryProcedureCodes, "")
	assertNoError(t, err)
	assertEqual(t, len(unset), len(all))
}

func TestPoolForUnknownLOB(t *testing.T) {
	_, err := DefaultRegistry().PoolFor(CategoryProcedureCodes, "XYZ")
	if !errors.Is(err, ErrUnknownLineOfBusiness) {
		t.Errorf("expected ErrUnknownLineOfBusiness, got %v", err)
	}
}

func TestPoolForUnknownCategory(t *testing.T) {
	_, err := DefaultRegistry().PoolFor("bogus_codes", LOBAll)
	if !errors.Is(err, ErrUnknownPoolCategory) {
		t.Errorf("expected ErrUnknownPoolCategory, got %v", err)
	}
}

func TestDefaultRegistryCategories(t *testing.T) {
	reg := DefaultRegistry()
	for _, category := range []Category{
		CategoryProcedureCodes,
		CategoryDiagnosisCodes,
		CategoryProviders,
		CategoryFacilities,
		CategoryPayers,
		CategoryManagedCareOrgs,
		CategoryAuthServiceTypes,
		CategoryPlaceOfService,
		CategoryFirstNames,
		CategoryLastNames,
	} {
		pool, err := reg.PoolFor(category, LOBAll)
		failOnErr(t, err)
		if len(pool) == 0 {
			t.Errorf("category '%s' has no entries", category)
		}
	}
}

func TestEveryLineOfBusinessHasProcedures(t *testing.T) {
	reg := DefaultRegistry()
	for lob := range lineOfBusinessTags {
		pool, err := reg.PoolFor(CategoryProcedureCodes, lob)
		failOnErr(t, err)
		if len(pool) == 0 {
			t.Errorf("lob '%s' has no procedure codes", lob)
		}
	}
}

func TestLoadRegistryRejectsUnknownTag(t *testing.T) {
	_, err := LoadRegistry(
		[]byte("procedure_codes:\n  - {code: \"97110\", lob: [BOGUS]}\n"),
	)
	if err == nil {
		t.Error("expected an error for an unknown lob tag")
	}
}

func TestLoadRegistryRejectsMissingCode(t *testing.T) {
	_, err := LoadRegistry(
		[]byte("payers:\n  - {description: NO CODE HERE}\n"),
	)
	if err == nil {
		t.Error("expected an error for an entry with no code")
	}
}
