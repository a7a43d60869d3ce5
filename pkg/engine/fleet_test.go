package engine

import (
	"errors"
	"testing"
)

func TestFleetComposition_Strength(t *testing.T) {
	f := FleetComposition{Frigates: 4, Cruisers: 2, Battleships: 1}
	if got := f.Strength(); got != 4+5+5 {
		t.Errorf("expected strength 14, got %f", got)
	}
}

func TestFleetComposition_Validate(t *testing.T) {
	if err := (FleetComposition{Frigates: 1}).Validate(); err != nil {
		t.Errorf("valid fleet rejected: %v", err)
	}
	if err := (FleetComposition{Cruisers: -1}).Validate(); !errors.Is(err, ErrNegativeFleet) {
		t.Errorf("expected ErrNegativeFleet, got %v", err)
	}
	if err := (FleetComposition{Battleships: MaxFleetSize + 1}).Validate(); !errors.Is(err, ErrFleetTooLarge) {
		t.Errorf("expected ErrFleetTooLarge, got %v", err)
	}
}

func TestFleetComposition_ContainsAndSubtract(t *testing.T) {
	home := FleetComposition{Frigates: 10, Cruisers: 5, Battleships: 2}
	force := FleetComposition{Frigates: 6, Cruisers: 5}

	if !home.Contains(force) {
		t.Fatal("expected home fleet to contain the attack force")
	}
	rest := home.Subtract(force)
	if rest != (FleetComposition{Frigates: 4, Battleships: 2}) {
		t.Errorf("unexpected remainder %v", rest)
	}
	if err := rest.Validate(); err != nil {
		t.Errorf("remainder invalid: %v", err)
	}

	tooMany := FleetComposition{Battleships: 3}
	if home.Contains(tooMany) {
		t.Error("expected Contains to reject an oversized force")
	}
}

func TestFleetComposition_Scale(t *testing.T) {
	f := FleetComposition{Frigates: 10, Cruisers: 3, Battleships: 1}
	scaled := f.Scale(0.7)
	if scaled != (FleetComposition{Frigates: 7, Cruisers: 2, Battleships: 0}) {
		t.Errorf("unexpected scaled fleet %v", scaled)
	}
	if !f.Contains(scaled) {
		t.Error("scaled fleet must fit in the original")
	}
}

func TestParseUnitClass(t *testing.T) {
	for _, c := range AllClasses() {
		got, err := ParseUnitClass(string(c))
		if err != nil || got != c {
			t.Errorf("round-trip failed for %s: %v", c, err)
		}
	}
	if _, err := ParseUnitClass("destroyer"); err == nil {
		t.Error("expected error for unknown class")
	}
}
