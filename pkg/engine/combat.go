package engine

// CombatOutcome classifies how a battle ended.
type CombatOutcome string

const (
	DecisiveAttacker CombatOutcome = "decisive_attacker"
	DecisiveDefender CombatOutcome = "decisive_defender"
	CloseBattle      CombatOutcome = "close_battle"
)

// Outcome classification thresholds on attacker/defender strength ratio.
const (
	decisiveRatio = 2.0
	routedRatio   = 0.5
)

// Casualty rate ranges per role.
const (
	closeLossLo    = 0.40
	closeLossHi    = 0.60
	winnerLossLo   = 0.10
	winnerLossHi   = 0.30
	loserLossLo    = 0.70
	loserLossHi    = 0.90
	multiplierLo   = 0.8
	multiplierHi   = 1.2
)

// effectiveness is the fixed rock-paper-scissors matrix:
// effectiveness[attacker class][defender class].
var effectiveness = map[UnitClass]map[UnitClass]float64{
	Frigate:    {Frigate: 1.0, Cruiser: 1.5, Battleship: 0.7},
	Cruiser:    {Frigate: 0.7, Cruiser: 1.0, Battleship: 1.5},
	Battleship: {Frigate: 1.5, Cruiser: 0.7, Battleship: 1.0},
}

// CombatFactors holds the per-unit-class random multipliers for one
// resolution, one set per side. Inject fixed factors for deterministic
// tests; pass nil to ResolveCombat to draw them from the engine RNG.
type CombatFactors struct {
	Attacker map[UnitClass]float64
	Defender map[UnitClass]float64
}

// UnityFactors returns factors fixed at 1.0 for both sides.
func UnityFactors() *CombatFactors {
	f := &CombatFactors{
		Attacker: make(map[UnitClass]float64, 3),
		Defender: make(map[UnitClass]float64, 3),
	}
	for _, c := range AllClasses() {
		f.Attacker[c] = 1.0
		f.Defender[c] = 1.0
	}
	return f
}

func drawFactors() *CombatFactors {
	f := &CombatFactors{
		Attacker: make(map[UnitClass]float64, 3),
		Defender: make(map[UnitClass]float64, 3),
	}
	for _, c := range AllClasses() {
		f.Attacker[c] = uniform(multiplierLo, multiplierHi)
		f.Defender[c] = uniform(multiplierLo, multiplierHi)
	}
	return f
}

// CombatResult is the pure output of one resolution. The caller decides
// how to fold survivors and casualties back into persistent state.
type CombatResult struct {
	Outcome            CombatOutcome    `json:"outcome"`
	Ratio              float64          `json:"ratio"`
	AttackerSurvivors  FleetComposition `json:"attacker_survivors"`
	DefenderSurvivors  FleetComposition `json:"defender_survivors"`
	AttackerCasualties FleetComposition `json:"attacker_casualties"`
	DefenderCasualties FleetComposition `json:"defender_casualties"`
}

// combatStrength computes one side's effective strength against the
// enemy composition: for each own class, count x multiplier x the
// effectiveness against the enemy weighted by the enemy's class mix.
// Against an empty enemy the mix weighting is neutral (1.0), so a
// non-empty side always has positive strength.
func combatStrength(own FleetComposition, enemy FleetComposition, factors map[UnitClass]float64) float64 {
	enemyTotal := float64(enemy.Total())
	total := 0.0
	for _, c := range AllClasses() {
		n := own.Count(c)
		if n == 0 {
			continue
		}
		weighted := 1.0
		if enemyTotal > 0 {
			weighted = 0.0
			for _, e := range AllClasses() {
				weighted += effectiveness[c][e] * float64(enemy.Count(e)) / enemyTotal
			}
		}
		total += float64(n) * factors[c] * weighted
	}
	return total
}

// applyCasualties splits a composition into (survivors, casualties) at
// the given loss rate, flooring casualties per class so survivor counts
// never go negative.
func applyCasualties(f FleetComposition, rate float64) (FleetComposition, FleetComposition) {
	var survivors, casualties FleetComposition
	for _, c := range AllClasses() {
		lost := int(float64(f.Count(c)) * rate)
		casualties.SetCount(c, lost)
		survivors.SetCount(c, f.Count(c)-lost)
	}
	return survivors, casualties
}

// ResolveCombat resolves a battle between two compositions. It is a pure
// function of its inputs plus the injected or drawn random factors: no
// I/O, no mutation of the inputs. A zero-strength side loses decisively.
func ResolveCombat(attacker, defender FleetComposition, factors *CombatFactors) CombatResult {
	if factors == nil {
		factors = drawFactors()
	}

	attStr := combatStrength(attacker, defender, factors.Attacker)
	defStr := combatStrength(defender, attacker, factors.Defender)

	var outcome CombatOutcome
	var ratio float64
	switch {
	case attStr == 0:
		outcome = DecisiveDefender
	case defStr == 0:
		outcome = DecisiveAttacker
	default:
		ratio = attStr / defStr
		switch {
		case ratio >= decisiveRatio:
			outcome = DecisiveAttacker
		case ratio <= routedRatio:
			outcome = DecisiveDefender
		default:
			outcome = CloseBattle
		}
	}

	var attRate, defRate float64
	switch outcome {
	case DecisiveAttacker:
		attRate = uniform(winnerLossLo, winnerLossHi)
		defRate = uniform(loserLossLo, loserLossHi)
	case DecisiveDefender:
		attRate = uniform(loserLossLo, loserLossHi)
		defRate = uniform(winnerLossLo, winnerLossHi)
	default:
		attRate = uniform(closeLossLo, closeLossHi)
		defRate = uniform(closeLossLo, closeLossHi)
	}

	result := CombatResult{Outcome: outcome, Ratio: ratio}
	result.AttackerSurvivors, result.AttackerCasualties = applyCasualties(attacker, attRate)
	result.DefenderSurvivors, result.DefenderCasualties = applyCasualties(defender, defRate)
	return result
}
