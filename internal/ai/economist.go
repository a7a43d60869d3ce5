package ai

import "github.com/mwestphal/voidfront/pkg/engine"

var economistProfile = Profile{
	MilitaryFocus:     0.25,
	EconomicFocus:     0.75,
	DeceptionChance:   0.1,
	AdaptiveVariation: 0.2,
}

// Economist thresholds.
const (
	economistIncomeTarget   = 25_000
	economistMinAttackFleet = 10
	economistAttackAdvEdge  = 0.3
	economistStrengthGate   = 2.0
	economistDefenseFloor   = 8
	economistScanChance     = 0.3
	economistBuildThreat    = 0.5
	economistForceLo        = 0.4
	economistForceHi        = 0.5
)

// EconomistStrategy grows income toward a target and only fights from a
// position of overwhelming advantage, keeping a small defensive floor of
// ships at home.
type EconomistStrategy struct{}

func (EconomistStrategy) Name() string { return ArchetypeEconomist }

func (e EconomistStrategy) Decide(st *State) Decision {
	// Military builds only under real pressure.
	if aiFloat64() < st.Profile.MilitaryFocus && st.ThreatLevel > economistBuildThreat {
		return buildPreferred(st, engine.Frigate, engine.Cruiser, engine.Battleship)
	}

	if aiFloat64() < st.Profile.EconomicFocus && st.Economy.TotalIncome() < economistIncomeTarget {
		if d := expandWeakerIncome(st); d.Type == DecisionBuild {
			return d
		}
	}

	// Attack only with a large fleet, a clear economic edge, and a 2:1
	// strength advantage, committing under half the fleet.
	if st.Fleet.Total() >= economistMinAttackFleet &&
		st.EconomicAdvantage > economistAttackAdvEdge &&
		st.Fleet.Strength() >= economistStrengthGate*st.EnemyFleet.Strength() {
		if d := attackDecision(attackForce(st.Fleet, economistForceLo, economistForceHi)); d.Type == DecisionAttack {
			return d
		}
	}

	if st.Fleet.Total() < economistDefenseFloor {
		return buildPreferred(st, engine.Frigate, engine.Cruiser)
	}
	if aiFloat64() < economistScanChance {
		return Decision{Type: DecisionScan, Scan: ScanFleet}
	}
	return Wait()
}
