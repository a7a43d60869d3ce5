package ai

import "github.com/mwestphal/voidfront/pkg/engine"

var tricksterProfile = Profile{
	MilitaryFocus:     0.5,
	EconomicFocus:     0.3,
	DeceptionChance:   0.6,
	AdaptiveVariation: 0.3,
}

// Trickster tuning.
const (
	tricksterCooldownLo     = 2
	tricksterCooldownSpread = 3
	tricksterMinAttackFleet = 6
	tricksterForceLo        = 0.5
	tricksterForceHi        = 0.7
)

// TricksterStrategy plays a balanced game punctuated by deliberately
// misleading moves: builds of the hull class it least needs and noisy
// scans, gated by a cooldown so deception stays occasional.
type TricksterStrategy struct {
	// DeceptionChance is the probability of a deceptive move once the
	// cooldown has expired.
	DeceptionChance float64

	cooldown int
}

// NewTrickster builds a trickster with the default deception chance and
// its cooldown already running.
func NewTrickster() *TricksterStrategy {
	return &TricksterStrategy{
		DeceptionChance: tricksterProfile.DeceptionChance,
		cooldown:        tricksterCooldownLo + aiIntn(tricksterCooldownSpread),
	}
}

func (*TricksterStrategy) Name() string { return ArchetypeTrickster }

// Cooldown returns the turns remaining before the next deception window.
func (t *TricksterStrategy) Cooldown() int {
	return t.cooldown
}

func (t *TricksterStrategy) Decide(st *State) Decision {
	if t.cooldown > 0 {
		t.cooldown--
	} else if aiFloat64() < t.DeceptionChance {
		t.cooldown = tricksterCooldownLo + aiIntn(tricksterCooldownSpread)
		return t.deceive(st)
	}

	// Between deceptions, play a balanced aggressor/economist mix.
	if aiFloat64() < st.Profile.MilitaryFocus {
		if st.Fleet.Total() >= tricksterMinAttackFleet && st.ThreatLevel < 0.7 {
			if d := attackDecision(attackForce(st.Fleet, tricksterForceLo, tricksterForceHi)); d.Type == DecisionAttack {
				return d
			}
		}
		return buildPreferred(st, engine.Cruiser, engine.Frigate, engine.Battleship)
	}
	if st.Economy.TotalIncome() < economistIncomeTarget {
		return expandWeakerIncome(st)
	}
	if st.Fleet.Total() < economistDefenseFloor {
		return buildPreferred(st, engine.Frigate, engine.Cruiser)
	}
	return Wait()
}

// deceive emits a misleading move: half the time a single build of the
// hull class the fleet already has most of (telegraphing the wrong
// doctrine), otherwise a scan that reveals its own curiosity and nothing
// else.
func (t *TricksterStrategy) deceive(st *State) Decision {
	if aiFloat64() < 0.5 {
		c := mostStockedClass(st.Fleet)
		if maxAffordable(st.Resources, c) > 0 {
			return Decision{Type: DecisionBuild, Class: c, Quantity: 1}
		}
	}
	return Decision{Type: DecisionScan, Scan: ScanEconomy}
}

// mostStockedClass returns the class with the highest count, frigates on
// ties and for empty fleets.
func mostStockedClass(f engine.FleetComposition) engine.UnitClass {
	best := engine.Frigate
	for _, c := range []engine.UnitClass{engine.Cruiser, engine.Battleship} {
		if f.Count(c) > f.Count(best) {
			best = c
		}
	}
	return best
}
