package engine

import (
	"errors"
	"fmt"
)

// UnitClass identifies one of the three ship hull classes.
type UnitClass string

const (
	Frigate    UnitClass = "frigate"
	Cruiser    UnitClass = "cruiser"
	Battleship UnitClass = "battleship"
)

// AllClasses returns the unit classes in canonical order.
func AllClasses() []UnitClass {
	return []UnitClass{Frigate, Cruiser, Battleship}
}

// ParseUnitClass converts a string to a UnitClass.
func ParseUnitClass(s string) (UnitClass, error) {
	switch UnitClass(s) {
	case Frigate, Cruiser, Battleship:
		return UnitClass(s), nil
	}
	return "", fmt.Errorf("unknown unit class %q", s)
}

// MaxFleetSize caps any single count field. Counts beyond this indicate
// an arithmetic bug upstream, not a legitimate fleet.
const MaxFleetSize = 1_000_000

// ErrNegativeFleet reports a composition with a negative count.
var ErrNegativeFleet = errors.New("fleet composition has negative count")

// ErrFleetTooLarge reports a composition exceeding MaxFleetSize.
var ErrFleetTooLarge = errors.New("fleet composition exceeds maximum size")

// FleetComposition holds counts of each hull class. The zero value is an
// empty fleet.
type FleetComposition struct {
	Frigates    int `json:"frigates"`
	Cruisers    int `json:"cruisers"`
	Battleships int `json:"battleships"`
}

// Count returns the number of ships of the given class.
func (f FleetComposition) Count(c UnitClass) int {
	switch c {
	case Frigate:
		return f.Frigates
	case Cruiser:
		return f.Cruisers
	case Battleship:
		return f.Battleships
	}
	return 0
}

// SetCount sets the number of ships of the given class.
func (f *FleetComposition) SetCount(c UnitClass, n int) {
	switch c {
	case Frigate:
		f.Frigates = n
	case Cruiser:
		f.Cruisers = n
	case Battleship:
		f.Battleships = n
	}
}

// Total returns the total ship count.
func (f FleetComposition) Total() int {
	return f.Frigates + f.Cruisers + f.Battleships
}

// IsEmpty reports whether the fleet has no ships.
func (f FleetComposition) IsEmpty() bool {
	return f.Total() == 0
}

// Validate checks the composition invariants: no negative counts, and no
// count beyond MaxFleetSize.
func (f FleetComposition) Validate() error {
	if f.Frigates < 0 || f.Cruisers < 0 || f.Battleships < 0 {
		return ErrNegativeFleet
	}
	if f.Frigates > MaxFleetSize || f.Cruisers > MaxFleetSize || f.Battleships > MaxFleetSize {
		return ErrFleetTooLarge
	}
	return nil
}

// Add returns the component-wise sum of two compositions.
func (f FleetComposition) Add(o FleetComposition) FleetComposition {
	return FleetComposition{
		Frigates:    f.Frigates + o.Frigates,
		Cruisers:    f.Cruisers + o.Cruisers,
		Battleships: f.Battleships + o.Battleships,
	}
}

// Subtract returns f minus o. The caller must ensure o fits in f
// (see Contains); a negative result fails Validate.
func (f FleetComposition) Subtract(o FleetComposition) FleetComposition {
	return FleetComposition{
		Frigates:    f.Frigates - o.Frigates,
		Cruisers:    f.Cruisers - o.Cruisers,
		Battleships: f.Battleships - o.Battleships,
	}
}

// Contains reports whether o fits in f component-wise.
func (f FleetComposition) Contains(o FleetComposition) bool {
	return o.Frigates <= f.Frigates && o.Cruisers <= f.Cruisers && o.Battleships <= f.Battleships
}

// Scale returns a composition with each count multiplied by frac and
// floored. Used to carve an attack force out of a home fleet.
func (f FleetComposition) Scale(frac float64) FleetComposition {
	return FleetComposition{
		Frigates:    int(float64(f.Frigates) * frac),
		Cruisers:    int(float64(f.Cruisers) * frac),
		Battleships: int(float64(f.Battleships) * frac),
	}
}

// Strength returns the coarse value metric used by AI heuristics:
// frigates count 1, cruisers 2.5, battleships 5. This is distinct from
// the combat effectiveness matrix.
func (f FleetComposition) Strength() float64 {
	return float64(f.Frigates) + 2.5*float64(f.Cruisers) + 5*float64(f.Battleships)
}

func (f FleetComposition) String() string {
	return fmt.Sprintf("%dF/%dC/%dB", f.Frigates, f.Cruisers, f.Battleships)
}
