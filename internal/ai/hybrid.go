package ai

import "github.com/mwestphal/voidfront/pkg/engine"

var hybridProfile = Profile{
	MilitaryFocus:     0.5,
	EconomicFocus:     0.5,
	DeceptionChance:   0.2,
	AdaptiveVariation: 0.4,
}

// HybridPosture is one state of the hybrid's internal strategy machine.
type HybridPosture string

const (
	PostureAggressive    HybridPosture = "aggressive"
	PostureEconomic      HybridPosture = "economic"
	PostureDefensive     HybridPosture = "defensive"
	PostureOpportunistic HybridPosture = "opportunistic"
)

var allPostures = []HybridPosture{
	PostureAggressive, PostureEconomic, PostureDefensive, PostureOpportunistic,
}

// Hybrid tuning.
const (
	hybridDurationLo      = 2
	hybridDurationSpread  = 3
	hybridReviewThreat    = 0.7
	hybridReviewEconEdge  = 0.3
	hybridMirrorRatio     = 1.5
	hybridMinAttackFleet  = 4
	hybridAggForceLo      = 0.7
	hybridAggForceHi      = 0.9
	hybridOppForceLo      = 0.5
	hybridOppForceHi      = 0.7
	hybridOppStrengthEdge = 1.5
	hybridDefenseFloor    = 10
	hybridScanChance      = 0.4
)

// HybridStrategy runs a four-posture state machine. A posture holds for
// a random 2-4 turns, then is re-selected from the current threat and
// economic picture; in between, a strong enough opponent posture can
// trigger a reactive override that mirrors it.
type HybridStrategy struct {
	posture  HybridPosture
	duration int
}

// NewHybrid starts in a random posture with a fresh review timer.
func NewHybrid() *HybridStrategy {
	return &HybridStrategy{
		posture:  allPostures[aiIntn(len(allPostures))],
		duration: hybridDurationLo + aiIntn(hybridDurationSpread),
	}
}

func (*HybridStrategy) Name() string { return ArchetypeHybrid }

// CurrentPosture returns the active posture label.
func (h *HybridStrategy) CurrentPosture() HybridPosture {
	return h.posture
}

// TurnsUntilReview returns how many more Decide calls run before the
// posture is re-selected.
func (h *HybridStrategy) TurnsUntilReview() int {
	return h.duration
}

func (h *HybridStrategy) Decide(st *State) Decision {
	// Reactive override: mirror an opponent posture that is clearly
	// dominating on fleet or income. Without such a trigger the current
	// posture stands regardless of the variation draw.
	if aiFloat64() < st.Profile.AdaptiveVariation {
		switch {
		case st.EnemyFleet.Strength() > hybridMirrorRatio*st.Fleet.Strength():
			h.posture = PostureDefensive
		case float64(st.EnemyIncome) > hybridMirrorRatio*float64(st.Economy.TotalIncome()):
			h.posture = PostureEconomic
		}
	}

	h.duration--
	if h.duration <= 0 {
		h.posture = h.reviewPosture(st)
		h.duration = hybridDurationLo + aiIntn(hybridDurationSpread)
	}

	switch h.posture {
	case PostureAggressive:
		return h.decideAggressive(st)
	case PostureEconomic:
		return h.decideEconomic(st)
	case PostureDefensive:
		return h.decideDefensive(st)
	default:
		return h.decideOpportunistic(st)
	}
}

// reviewPosture re-selects the posture from the threat/economy picture.
func (h *HybridStrategy) reviewPosture(st *State) HybridPosture {
	switch {
	case st.ThreatLevel > hybridReviewThreat:
		if aiFloat64() < 0.7 {
			return PostureDefensive
		}
		return PostureAggressive
	case st.EconomicAdvantage < -hybridReviewEconEdge:
		if aiFloat64() < 0.6 {
			return PostureEconomic
		}
		return PostureOpportunistic
	case st.EconomicAdvantage > hybridReviewEconEdge:
		if aiFloat64() < 0.6 {
			return PostureAggressive
		}
		return PostureOpportunistic
	default:
		return allPostures[aiIntn(len(allPostures))]
	}
}

// decideAggressive commits most of even a small fleet.
func (h *HybridStrategy) decideAggressive(st *State) Decision {
	if st.Fleet.Total() >= hybridMinAttackFleet && st.ThreatLevel < 0.9 {
		if d := attackDecision(attackForce(st.Fleet, hybridAggForceLo, hybridAggForceHi)); d.Type == DecisionAttack {
			return d
		}
	}
	return buildPreferred(st, engine.Cruiser, engine.Battleship, engine.Frigate)
}

func (h *HybridStrategy) decideEconomic(st *State) Decision {
	if st.Economy.TotalIncome() < economistIncomeTarget {
		if d := expandWeakerIncome(st); d.Type == DecisionBuild {
			return d
		}
	}
	return buildPreferred(st, engine.Frigate)
}

func (h *HybridStrategy) decideDefensive(st *State) Decision {
	if st.Fleet.Total() < hybridDefenseFloor {
		return buildPreferred(st, engine.Frigate, engine.Cruiser, engine.Battleship)
	}
	if aiFloat64() < hybridScanChance {
		return Decision{Type: DecisionScan, Scan: ScanFleet}
	}
	return Wait()
}

// decideOpportunistic strikes only when the visible enemy fleet is
// clearly weaker, otherwise gathers intelligence.
func (h *HybridStrategy) decideOpportunistic(st *State) Decision {
	if !st.Fleet.IsEmpty() &&
		st.Fleet.Strength() >= hybridOppStrengthEdge*st.EnemyFleet.Strength() &&
		st.Fleet.Total() >= hybridMinAttackFleet {
		if d := attackDecision(attackForce(st.Fleet, hybridOppForceLo, hybridOppForceHi)); d.Type == DecisionAttack {
			return d
		}
	}
	if aiFloat64() < hybridScanChance {
		return Decision{Type: DecisionScan, Scan: ScanFleet}
	}
	return buildPreferred(st, engine.Frigate, engine.Cruiser)
}
