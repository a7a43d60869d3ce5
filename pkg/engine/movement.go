package engine

import (
	"errors"
	"fmt"
)

// Mission identifies why a fleet is in flight.
type Mission string

const (
	MissionAttack Mission = "attack"
	MissionReturn Mission = "return"
)

// MissionPhase classifies where an in-flight fleet is in its cycle.
// It is derived from turn arithmetic, never stored.
type MissionPhase string

const (
	PhaseOutbound  MissionPhase = "outbound"
	PhaseCombat    MissionPhase = "combat"
	PhaseReturning MissionPhase = "returning"
)

var (
	// ErrEmptyFleet reports an attempt to create a movement with no ships.
	ErrEmptyFleet = errors.New("movement requires a non-empty fleet")
	// ErrBadTiming reports a movement whose turn numbers violate
	// returnTurn > arrivalTurn > creation turn.
	ErrBadTiming = errors.New("movement timing violates return > arrival > creation")
	// ErrBadMission reports an unrecognized mission type.
	ErrBadMission = errors.New("unrecognized mission type")
)

// Transit timing for an attack mission: one turn out, the engagement on
// the arrival turn, one turn back.
const (
	transitTurns = 1
	returnCycle  = 3
)

// FleetMovement is a fleet in flight toward a target. The composition is
// owned by the movement; it was debited from the home fleet at creation.
type FleetMovement struct {
	Composition FleetComposition `json:"composition"`
	Target      string           `json:"target"`
	Mission     Mission          `json:"mission"`
	CreatedTurn int              `json:"created_turn"`
	ArrivalTurn int              `json:"arrival_turn"`
	ReturnTurn  int              `json:"return_turn"`
}

// NewFleetMovement creates an attack movement departing on the current
// turn: arrival next turn, home again two turns after that.
func NewFleetMovement(comp FleetComposition, target string, currentTurn int) (*FleetMovement, error) {
	m := &FleetMovement{
		Composition: comp,
		Target:      target,
		Mission:     MissionAttack,
		CreatedTurn: currentTurn,
		ArrivalTurn: currentTurn + transitTurns,
		ReturnTurn:  currentTurn + returnCycle,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the movement construction invariants.
func (m *FleetMovement) Validate() error {
	if m.Composition.IsEmpty() {
		return ErrEmptyFleet
	}
	if err := m.Composition.Validate(); err != nil {
		return err
	}
	if m.ReturnTurn <= m.ArrivalTurn || m.ArrivalTurn <= m.CreatedTurn {
		return fmt.Errorf("%w: created=%d arrival=%d return=%d",
			ErrBadTiming, m.CreatedTurn, m.ArrivalTurn, m.ReturnTurn)
	}
	switch m.Mission {
	case MissionAttack, MissionReturn:
	default:
		return fmt.Errorf("%w: %q", ErrBadMission, m.Mission)
	}
	return nil
}

// Phase derives the mission phase from the current turn. This, not any
// stored flag, is the single source of truth for visibility and
// vulnerability.
func (m *FleetMovement) Phase(currentTurn int) MissionPhase {
	switch {
	case currentTurn < m.ArrivalTurn:
		return PhaseOutbound
	case currentTurn == m.ArrivalTurn:
		return PhaseCombat
	default:
		return PhaseReturning
	}
}

// IsInTransit reports whether the fleet is away from home this turn.
// While true, the owner's home system is vulnerable and the traveling
// fleet is invisible to scans.
func (m *FleetMovement) IsInTransit(currentTurn int) bool {
	return currentTurn >= m.ArrivalTurn-1 && currentTurn < m.ReturnTurn
}

// CanRecall reports whether the movement can still be aborted. A fleet
// is recallable only on its creation turn; once departure takes effect
// the ships are committed.
func (m *FleetMovement) CanRecall(currentTurn int) bool {
	return currentTurn < m.ArrivalTurn
}

// MovementReport partitions a movement list by what should happen to
// each movement this turn.
type MovementReport struct {
	StillAdvancing []FleetMovement
	ReadyForCombat []FleetMovement
	Returning      []FleetMovement
}

// ProcessFleetMovements classifies movements for the current turn. It is
// a pure, one-shot classification: combat-phase movements are handed to
// the caller for resolution, returning movements carry survivors home.
// Return-mission movements never re-enter combat; they merge home as soon
// as they arrive.
func ProcessFleetMovements(movements []FleetMovement, currentTurn int) MovementReport {
	var report MovementReport
	for _, m := range movements {
		if m.Mission == MissionReturn {
			if currentTurn >= m.ArrivalTurn {
				report.Returning = append(report.Returning, m)
			} else {
				report.StillAdvancing = append(report.StillAdvancing, m)
			}
			continue
		}
		switch m.Phase(currentTurn) {
		case PhaseOutbound:
			report.StillAdvancing = append(report.StillAdvancing, m)
		case PhaseCombat:
			report.ReadyForCombat = append(report.ReadyForCombat, m)
		default:
			report.Returning = append(report.Returning, m)
		}
	}
	return report
}

// CreateReturningFleet builds the homeward movement for battle survivors.
// An annihilated raiding fleet never returns: nil when survivors are
// empty. The return leg takes one turn.
func CreateReturningFleet(survivors FleetComposition, original FleetMovement, currentTurn int) *FleetMovement {
	if survivors.IsEmpty() {
		return nil
	}
	return &FleetMovement{
		Composition: survivors,
		Target:      original.Target,
		Mission:     MissionReturn,
		CreatedTurn: currentTurn,
		ArrivalTurn: currentTurn + 1,
		ReturnTurn:  currentTurn + 2,
	}
}
