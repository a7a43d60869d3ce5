// Package ai implements the decision engine: four interchangeable
// archetype strategies behind a single Strategy interface, sharing the
// threat/economy heuristics in base.go. The archetype is chosen once at
// session setup and fixed for the session.
package ai

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mwestphal/voidfront/pkg/engine"
)

// Strategy emits one decision per turn from the refreshed AI state.
type Strategy interface {
	Name() string
	Decide(st *State) Decision
}

// Archetype labels accepted by New.
const (
	ArchetypeAggressor = "aggressor"
	ArchetypeEconomist = "economist"
	ArchetypeTrickster = "trickster"
	ArchetypeHybrid    = "hybrid"
)

// Archetypes returns all valid archetype labels.
func Archetypes() []string {
	return []string{ArchetypeAggressor, ArchetypeEconomist, ArchetypeTrickster, ArchetypeHybrid}
}

// strategyForArchetype builds the strategy variant for a label.
func strategyForArchetype(archetype string) (Strategy, Profile, error) {
	switch archetype {
	case ArchetypeAggressor:
		return &AggressorStrategy{}, aggressorProfile, nil
	case ArchetypeEconomist:
		return &EconomistStrategy{}, economistProfile, nil
	case ArchetypeTrickster:
		return NewTrickster(), tricksterProfile, nil
	case ArchetypeHybrid:
		return NewHybrid(), hybridProfile, nil
	}
	return nil, Profile{}, fmt.Errorf("unknown archetype %q", archetype)
}

// Engine is the stateful per-side decision engine: it owns the AI state
// mirror, refreshes it from the canonical game state each turn, and
// delegates to its archetype strategy.
type Engine struct {
	side     engine.Side
	strategy Strategy
	state    *State
}

// New builds a decision engine for a side. An unrecognized archetype is
// a construction-time error; the engine cannot be built.
func New(archetype string, side engine.Side) (*Engine, error) {
	strategy, profile, err := strategyForArchetype(archetype)
	if err != nil {
		return nil, err
	}
	return &Engine{
		side:     side,
		strategy: strategy,
		state:    &State{Archetype: archetype, Profile: profile},
	}, nil
}

// Strategy exposes the underlying strategy variant.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// State exposes the engine's internal AI state mirror.
func (e *Engine) State() *State {
	return e.state
}

// ProcessTurn refreshes the AI state from the canonical game state and
// returns this turn's decision. Decisions are validated against the
// side's own state before being returned; a validation failure means the
// strategy itself is defective.
func (e *Engine) ProcessTurn(gs *engine.GameState) (Decision, error) {
	e.state.Refresh(gs, e.side)
	d := e.strategy.Decide(e.state)
	if err := ValidateDecision(d, e.state); err != nil {
		log.Error().
			Str("archetype", e.state.Archetype).
			Str("side", string(e.side)).
			Int("turn", gs.Turn).
			Err(err).
			Msg("Strategy emitted invalid decision")
		return Wait(), fmt.Errorf("archetype %s: %w", e.state.Archetype, err)
	}
	return d, nil
}
