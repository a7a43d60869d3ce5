package engine

// Side identifies one of the two parties in the conflict.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Resources is a stockpile of the two resource types.
type Resources struct {
	Metal  int `json:"metal"`
	Energy int `json:"energy"`
}

// CanAfford reports whether the stockpile covers a cost.
func (r Resources) CanAfford(cost Resources) bool {
	return r.Metal >= cost.Metal && r.Energy >= cost.Energy
}

// Spend debits a cost from the stockpile.
func (r *Resources) Spend(cost Resources) {
	r.Metal -= cost.Metal
	r.Energy -= cost.Energy
}

// Economy tracks per-turn income for each resource type.
type Economy struct {
	MetalIncome  int `json:"metal_income"`
	EnergyIncome int `json:"energy_income"`
}

// TotalIncome returns combined per-turn income.
func (e Economy) TotalIncome() int {
	return e.MetalIncome + e.EnergyIncome
}

// Intelligence is one side's last-known picture of the enemy.
type Intelligence struct {
	KnownEnemyFleet FleetComposition `json:"known_enemy_fleet"`
	LastScanTurn    int              `json:"last_scan_turn"`
}

// BuildOrder is a queued unit build that completes on CompleteTurn.
type BuildOrder struct {
	Class        UnitClass `json:"class"`
	Quantity     int       `json:"quantity"`
	CompleteTurn int       `json:"complete_turn"`
}

// PlayerState is the full canonical state of one side.
type PlayerState struct {
	Resources    Resources        `json:"resources"`
	Fleet        FleetComposition `json:"fleet"`
	Movements    []FleetMovement  `json:"movements,omitempty"`
	BuildQueue   []BuildOrder     `json:"build_queue,omitempty"`
	Economy      Economy          `json:"economy"`
	Intelligence Intelligence     `json:"intelligence"`
}

// VisibleFleet returns the fleet an enemy scan would observe. Ships in
// transit are invisible; they were debited from the home fleet on
// departure, so the home fleet alone is the visible picture.
func (p *PlayerState) VisibleFleet() FleetComposition {
	return p.Fleet
}

// IsVulnerable reports whether any of the side's fleets are in transit,
// leaving the home system with reduced defense.
func (p *PlayerState) IsVulnerable(currentTurn int) bool {
	for i := range p.Movements {
		if p.Movements[i].IsInTransit(currentTurn) {
			return true
		}
	}
	return false
}

// GameState is the canonical two-sided state, owned by the orchestrator
// and passed by reference into the AI engine each turn.
type GameState struct {
	Turn  int         `json:"turn"`
	SideA PlayerState `json:"side_a"`
	SideB PlayerState `json:"side_b"`
}

// NewGameState returns the starting position: empty fleets, the base
// economy, and enough resources for opening builds.
func NewGameState() *GameState {
	start := PlayerState{
		Resources: Resources{Metal: startingMetal, Energy: startingEnergy},
		Economy:   Economy{MetalIncome: baseMetalIncome, EnergyIncome: baseEnergyIncome},
	}
	return &GameState{Turn: 1, SideA: start, SideB: start}
}

// Player returns a pointer to the given side's state.
func (gs *GameState) Player(s Side) *PlayerState {
	if s == SideA {
		return &gs.SideA
	}
	return &gs.SideB
}
