package engine

// Starting stockpiles and base income. Incomes are in credits per turn;
// the AI's economy targets (15k/25k total income) are expressed on the
// same scale.
const (
	startingMetal    = 10_000
	startingEnergy   = 8_000
	baseMetalIncome  = 4_000
	baseEnergyIncome = 3_000
)

// buildCosts is the fixed per-class build cost table. The AI heuristics
// read it; nothing mutates it.
var buildCosts = map[UnitClass]Resources{
	Frigate:    {Metal: 500, Energy: 300},
	Cruiser:    {Metal: 1_500, Energy: 1_000},
	Battleship: {Metal: 4_000, Energy: 2_500},
}

// buildTimes is the number of turns each class takes to construct.
var buildTimes = map[UnitClass]int{
	Frigate:    1,
	Cruiser:    1,
	Battleship: 2,
}

// BuildCost returns the cost of one unit of the given class.
func BuildCost(c UnitClass) Resources {
	return buildCosts[c]
}

// BuildTime returns the construction time in turns for the given class.
func BuildTime(c UnitClass) int {
	return buildTimes[c]
}

// ResourceType identifies an economy expansion target.
type ResourceType string

const (
	Metal  ResourceType = "metal"
	Energy ResourceType = "energy"
)

// Economy expansion: each expansion costs a flat amount and raises the
// chosen income by a fixed step.
var (
	expansionCost = Resources{Metal: 2_000, Energy: 1_500}
	expansionStep = 1_000
)

// ExpansionCost returns the cost of one economy expansion.
func ExpansionCost() Resources {
	return expansionCost
}

// ExpandEconomy applies one expansion of the chosen resource type.
// The caller must have debited ExpansionCost already.
func ExpandEconomy(e *Economy, t ResourceType) {
	if t == Energy {
		e.EnergyIncome += expansionStep
		return
	}
	e.MetalIncome += expansionStep
}

// TickIncome credits one turn of income to both sides.
func (gs *GameState) TickIncome() {
	for _, s := range []Side{SideA, SideB} {
		p := gs.Player(s)
		p.Resources.Metal += p.Economy.MetalIncome
		p.Resources.Energy += p.Economy.EnergyIncome
	}
}

// CompleteBuilds moves finished build orders into the home fleet and
// keeps the rest queued. Returns the completed orders.
func (p *PlayerState) CompleteBuilds(currentTurn int) []BuildOrder {
	var done, pending []BuildOrder
	for _, b := range p.BuildQueue {
		if b.CompleteTurn <= currentTurn {
			p.Fleet.SetCount(b.Class, p.Fleet.Count(b.Class)+b.Quantity)
			done = append(done, b)
		} else {
			pending = append(pending, b)
		}
	}
	p.BuildQueue = pending
	return done
}

// CheapestUnitCost returns the cost of the cheapest hull. A side that
// cannot afford it and has no ships left is out of the fight.
func CheapestUnitCost() Resources {
	return buildCosts[Frigate]
}
