package ai

import "github.com/mwestphal/voidfront/pkg/engine"

var aggressorProfile = Profile{
	MilitaryFocus:     0.8,
	EconomicFocus:     0.2,
	DeceptionChance:   0.1,
	AdaptiveVariation: 0.2,
}

// Aggressor thresholds.
const (
	aggressorMinAttackFleet  = 5
	aggressorMaxAttackThreat = 0.8
	aggressorPanicThreat     = 0.7
	aggressorIncomeTarget    = 15_000
	aggressorForceLo         = 0.6
	aggressorForceHi         = 0.8
)

// AggressorStrategy pursues military pressure: frequent attacks with
// most of the home fleet, builds when it cannot attack, and only tops up
// the economy when income is badly behind.
type AggressorStrategy struct{}

func (AggressorStrategy) Name() string { return ArchetypeAggressor }

func (a AggressorStrategy) Decide(st *State) Decision {
	// Under heavy threat, occasionally snap to a one-turn defensive
	// build instead of pressing the attack.
	if aiFloat64() < st.Profile.AdaptiveVariation && st.ThreatLevel > aggressorPanicThreat {
		return buildPreferred(st, engine.Frigate, engine.Cruiser)
	}

	if aiFloat64() < st.Profile.MilitaryFocus {
		if st.Fleet.Total() >= aggressorMinAttackFleet && st.ThreatLevel < aggressorMaxAttackThreat {
			if d := attackDecision(attackForce(st.Fleet, aggressorForceLo, aggressorForceHi)); d.Type == DecisionAttack {
				return d
			}
		}
		return buildPreferred(st, engine.Frigate, engine.Cruiser, engine.Battleship)
	}

	if st.Economy.TotalIncome() < aggressorIncomeTarget {
		return expandWeakerIncome(st)
	}
	return Wait()
}
