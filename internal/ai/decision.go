package ai

import (
	"errors"
	"fmt"

	"github.com/mwestphal/voidfront/pkg/engine"
)

// DecisionType tags the variant of a Decision.
type DecisionType string

const (
	DecisionBuild  DecisionType = "build"
	DecisionAttack DecisionType = "attack"
	DecisionScan   DecisionType = "scan"
	DecisionWait   DecisionType = "wait"
)

// ScanType selects what an intelligence scan targets.
type ScanType string

const (
	ScanFleet   ScanType = "fleet"
	ScanEconomy ScanType = "economy"
)

// Decision is the single action an archetype emits each turn. Exactly
// one variant's fields are populated, selected by Type: unit builds use
// Class+Quantity, economy builds use Expand, attacks use Target+Fleet,
// scans use Scan.
type Decision struct {
	Type     DecisionType            `json:"type"`
	Class    engine.UnitClass        `json:"class,omitempty"`
	Quantity int                     `json:"quantity,omitempty"`
	Expand   engine.ResourceType     `json:"expand,omitempty"`
	Target   string                  `json:"target,omitempty"`
	Fleet    engine.FleetComposition `json:"fleet,omitempty"`
	Scan     ScanType                `json:"scan,omitempty"`
}

// Wait returns the do-nothing decision.
func Wait() Decision {
	return Decision{Type: DecisionWait}
}

// ErrInvalidDecision reports a decision the emitting strategy could not
// actually afford or field. The engine validates before emitting, so a
// failure here is an engine defect, not a game event.
var ErrInvalidDecision = errors.New("invalid decision")

// ValidateDecision checks a decision against the deciding side's own
// state: builds must be affordable, attack compositions must be non-empty
// and fit in the home fleet.
func ValidateDecision(d Decision, st *State) error {
	switch d.Type {
	case DecisionWait, DecisionScan:
		return nil
	case DecisionBuild:
		if d.Expand != "" {
			if !st.Resources.CanAfford(engine.ExpansionCost()) {
				return fmt.Errorf("%w: cannot afford economy expansion", ErrInvalidDecision)
			}
			return nil
		}
		if d.Quantity <= 0 {
			return fmt.Errorf("%w: non-positive build quantity %d", ErrInvalidDecision, d.Quantity)
		}
		if _, err := engine.ParseUnitClass(string(d.Class)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDecision, err)
		}
		cost := engine.BuildCost(d.Class)
		total := engine.Resources{Metal: cost.Metal * d.Quantity, Energy: cost.Energy * d.Quantity}
		if !st.Resources.CanAfford(total) {
			return fmt.Errorf("%w: cannot afford %d %s", ErrInvalidDecision, d.Quantity, d.Class)
		}
		return nil
	case DecisionAttack:
		if d.Fleet.IsEmpty() {
			return fmt.Errorf("%w: attack with empty fleet", ErrInvalidDecision)
		}
		if !st.Fleet.Contains(d.Fleet) {
			return fmt.Errorf("%w: attack force %s exceeds home fleet %s", ErrInvalidDecision, d.Fleet, st.Fleet)
		}
		if d.Target == "" {
			return fmt.Errorf("%w: attack without target", ErrInvalidDecision)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown decision type %q", ErrInvalidDecision, d.Type)
}
