package ai

import "github.com/mwestphal/voidfront/pkg/engine"

// ThreatLevel estimates relative danger from the enemy fleet on a 0-1
// scale: the enemy/own strength ratio shifted down by 0.5 and clamped.
// Parity reads as 0.5; a 1.5x enemy advantage saturates at 1.
func ThreatLevel(ownStrength, enemyStrength float64) float64 {
	ratio := 1.0
	if ownStrength > 0 {
		ratio = enemyStrength / ownStrength
	}
	return clamp01(ratio - 0.5)
}

// EconomicAdvantage compares normalized income between sides on a -1..1
// scale. Zero when both incomes are zero.
func EconomicAdvantage(ownIncome, enemyIncome int) float64 {
	total := ownIncome + enemyIncome
	if total == 0 {
		return 0
	}
	return float64(ownIncome-enemyIncome) / float64(total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// maxAffordable returns how many units of a class the resources cover.
func maxAffordable(res engine.Resources, c engine.UnitClass) int {
	cost := engine.BuildCost(c)
	n := res.Metal / cost.Metal
	if m := res.Energy / cost.Energy; m < n {
		n = m
	}
	if n < 0 {
		return 0
	}
	return n
}

// buildPreferred returns a build decision for the first class in the
// preference order with at least one affordable unit, capping the
// quantity at a small batch. Returns Wait when nothing is affordable.
func buildPreferred(st *State, order ...engine.UnitClass) Decision {
	for _, c := range order {
		n := maxAffordable(st.Resources, c)
		if n == 0 {
			continue
		}
		qty := 1 + aiIntn(3)
		if qty > n {
			qty = n
		}
		return Decision{Type: DecisionBuild, Class: c, Quantity: qty}
	}
	return Wait()
}

// expandWeakerIncome returns an economy expansion targeting whichever
// resource income is currently lower, or Wait if unaffordable.
func expandWeakerIncome(st *State) Decision {
	if !st.Resources.CanAfford(engine.ExpansionCost()) {
		return Wait()
	}
	target := engine.Metal
	if st.Economy.EnergyIncome < st.Economy.MetalIncome {
		target = engine.Energy
	}
	return Decision{Type: DecisionBuild, Expand: target}
}

// attackForce carves a random fraction in [loFrac, hiFrac) out of the
// home fleet, component-wise floored. May be empty for tiny fleets.
func attackForce(fleet engine.FleetComposition, loFrac, hiFrac float64) engine.FleetComposition {
	return fleet.Scale(aiRange(loFrac, hiFrac))
}

// EnemyHomeTarget is the identifier attack decisions aim at. The game
// has a single enemy home system.
const EnemyHomeTarget = "enemy_home"

// attackDecision wraps a force into an attack on the enemy home system,
// falling back to Wait when the force is empty.
func attackDecision(force engine.FleetComposition) Decision {
	if force.IsEmpty() {
		return Wait()
	}
	return Decision{Type: DecisionAttack, Target: EnemyHomeTarget, Fleet: force}
}
