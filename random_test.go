package edigen

import (
	"errors"
	"testing"
)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(99)
	b := NewSource(99)
	for i := 0; i < 100; i++ {
		assertEqual(t, a.between(0, 1000), b.between(0, 1000))
	}
	assertEqual(t, a.Digits(12), b.Digits(12))
	assertEqual(t, a.UUID().String(), b.UUID().String())
	assertEqual(
		t,
		a.Date(fixtureDateStart, fixtureDateEnd),
		b.Date(fixtureDateStart, fixtureDateEnd),
	)
}

func TestSourceDerive(t *testing.T) {
	a := NewSource(7).Derive(3)
	b := NewSource(7).Derive(3)
	assertEqual(t, a.Digits(20), b.Digits(20))

	// distinct derivations give distinct streams
	c := NewSource(7).Derive(4)
	if NewSource(7).Derive(3).Digits(20) == c.Digits(20) {
		t.Error("derived sources with different indexes produced the same stream")
	}
}

func TestIntRangeInverted(t *testing.T) {
	s := NewSource(1)
	_, err := s.IntRange(10, 5)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}

	v, err := s.IntRange(5, 5)
	assertNoError(t, err)
	assertEqual(t, v, 5)
}

func TestChoiceEmpty(t *testing.T) {
	s := NewSource(1)
	_, err := choice(s, []string{})
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("expected ErrEmptyPool, got %v", err)
	}
}

func TestWeightedChoiceDistribution(t *testing.T) {
	s := NewSource(12345)
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		v, err := weightedChoice(
			s, []weighted[string]{
				{item: "A", weight: 70},
				{item: "E", weight: 15},
				{item: "R", weight: 15},
			},
		)
		assertNoError(t, err)
		counts[v]++
	}
	if counts["A"] < 6500 || counts["A"] > 7500 {
		t.Errorf("expected ~7000 draws of A, got %d", counts["A"])
	}
}

func TestControlNumber(t *testing.T) {
	s := NewSource(2)
	for i := 0; i < 50; i++ {
		cn := s.ControlNumber(9)
		assertEqual(t, len(cn), 9)
		if cn == "000000000" {
			t.Error("control number must never be zero")
		}
	}
	assertEqual(t, len(s.ControlNumber(4)), 4)
}

func TestCentsFormatting(t *testing.T) {
	assertEqual(t, cents(0), "0.00")
	assertEqual(t, cents(5), "0.05")
	assertEqual(t, cents(150), "1.50")
	assertEqual(t, cents(120000), "1200.00")
	assertEqual(t, cents(-2599), "-25.99")
}
