package ai

import "github.com/mwestphal/voidfront/pkg/engine"

// Profile is an archetype's fixed behavior probabilities. They never
// change for the lifetime of a session.
type Profile struct {
	MilitaryFocus     float64
	EconomicFocus     float64
	DeceptionChance   float64
	AdaptiveVariation float64
}

// State mirrors the deciding side's slice of the canonical game state,
// refreshed from it every turn, plus the derived heuristics the
// strategies read.
type State struct {
	Archetype string
	Profile   Profile

	Turn         int
	Resources    engine.Resources
	Fleet        engine.FleetComposition
	Movements    []engine.FleetMovement
	Economy      engine.Economy
	Intelligence engine.Intelligence

	// Enemy picture: the visible (home) enemy fleet and enemy income.
	EnemyFleet  engine.FleetComposition
	EnemyIncome int

	// Derived each turn.
	ThreatLevel       float64
	EconomicAdvantage float64
}

// Refresh copies the side's canonical state and recomputes the derived
// threat and economic heuristics.
func (st *State) Refresh(gs *engine.GameState, side engine.Side) {
	own := gs.Player(side)
	enemy := gs.Player(side.Opponent())

	st.Turn = gs.Turn
	st.Resources = own.Resources
	st.Fleet = own.Fleet
	st.Movements = append(st.Movements[:0], own.Movements...)
	st.Economy = own.Economy
	st.Intelligence = own.Intelligence

	st.EnemyFleet = enemy.VisibleFleet()
	st.EnemyIncome = enemy.Economy.TotalIncome()

	st.ThreatLevel = ThreatLevel(st.Fleet.Strength(), st.EnemyFleet.Strength())
	st.EconomicAdvantage = EconomicAdvantage(st.Economy.TotalIncome(), st.EnemyIncome)
}
