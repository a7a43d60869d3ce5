package engine

import (
	"math/rand"
	"testing"
)

func TestResolveCombat_DecisiveRout(t *testing.T) {
	attacker := FleetComposition{Frigates: 200}
	defender := FleetComposition{Frigates: 10}

	result := ResolveCombat(attacker, defender, UnityFactors())

	if result.Outcome != DecisiveAttacker {
		t.Fatalf("expected decisive_attacker, got %s", result.Outcome)
	}
	if result.Ratio < 19.9 || result.Ratio > 20.1 {
		t.Errorf("expected ratio near 20, got %f", result.Ratio)
	}
	// Defender loses a fraction in [0.70, 0.90] of its 10 frigates.
	lost := result.DefenderCasualties.Frigates
	if lost < 7 || lost > 9 {
		t.Errorf("expected defender to lose 7-9 frigates, lost %d", lost)
	}
}

func TestResolveCombat_CloseBattle(t *testing.T) {
	attacker := FleetComposition{Frigates: 50, Cruisers: 20, Battleships: 10}
	defender := FleetComposition{Frigates: 45, Cruisers: 25, Battleships: 15}

	result := ResolveCombat(attacker, defender, UnityFactors())

	if result.Outcome != CloseBattle {
		t.Fatalf("expected close_battle, got %s (ratio %f)", result.Outcome, result.Ratio)
	}
	if result.Ratio < 0.5 || result.Ratio > 2.0 {
		t.Errorf("close battle ratio out of band: %f", result.Ratio)
	}
}

func TestResolveCombat_ZeroStrengthSides(t *testing.T) {
	fleet := FleetComposition{Cruisers: 12}

	if r := ResolveCombat(FleetComposition{}, fleet, nil); r.Outcome != DecisiveDefender {
		t.Errorf("empty attacker: expected decisive_defender, got %s", r.Outcome)
	}
	if r := ResolveCombat(fleet, FleetComposition{}, nil); r.Outcome != DecisiveAttacker {
		t.Errorf("empty defender: expected decisive_attacker, got %s", r.Outcome)
	}
}

func TestResolveCombat_DoesNotMutateInputs(t *testing.T) {
	attacker := FleetComposition{Frigates: 30, Cruisers: 10}
	defender := FleetComposition{Frigates: 25, Battleships: 5}
	attBefore, defBefore := attacker, defender

	ResolveCombat(attacker, defender, nil)

	if attacker != attBefore || defender != defBefore {
		t.Error("ResolveCombat mutated its inputs")
	}
}

func TestResolveCombat_Conservation(t *testing.T) {
	SeedRng(42)
	defer ResetRng()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		attacker := FleetComposition{
			Frigates:    rng.Intn(100),
			Cruisers:    rng.Intn(50),
			Battleships: rng.Intn(25),
		}
		defender := FleetComposition{
			Frigates:    rng.Intn(100),
			Cruisers:    rng.Intn(50),
			Battleships: rng.Intn(25),
		}

		r := ResolveCombat(attacker, defender, nil)

		if r.AttackerSurvivors.Add(r.AttackerCasualties) != attacker {
			t.Fatalf("attacker conservation violated: %v + %v != %v",
				r.AttackerSurvivors, r.AttackerCasualties, attacker)
		}
		if r.DefenderSurvivors.Add(r.DefenderCasualties) != defender {
			t.Fatalf("defender conservation violated: %v + %v != %v",
				r.DefenderSurvivors, r.DefenderCasualties, defender)
		}
		for _, f := range []FleetComposition{
			r.AttackerSurvivors, r.AttackerCasualties,
			r.DefenderSurvivors, r.DefenderCasualties,
		} {
			if err := f.Validate(); err != nil {
				t.Fatalf("invalid composition after combat: %v", err)
			}
		}
	}
}

func TestResolveCombat_OutcomeMatchesRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		attacker := FleetComposition{
			Frigates:    1 + rng.Intn(80),
			Cruisers:    rng.Intn(40),
			Battleships: rng.Intn(20),
		}
		defender := FleetComposition{
			Frigates:    1 + rng.Intn(80),
			Cruisers:    rng.Intn(40),
			Battleships: rng.Intn(20),
		}
		factors := &CombatFactors{
			Attacker: map[UnitClass]float64{},
			Defender: map[UnitClass]float64{},
		}
		for _, c := range AllClasses() {
			factors.Attacker[c] = 0.8 + rng.Float64()*0.4
			factors.Defender[c] = 0.8 + rng.Float64()*0.4
		}

		r := ResolveCombat(attacker, defender, factors)

		var want CombatOutcome
		switch {
		case r.Ratio >= 2.0:
			want = DecisiveAttacker
		case r.Ratio <= 0.5:
			want = DecisiveDefender
		default:
			want = CloseBattle
		}
		if r.Outcome != want {
			t.Fatalf("ratio %f: expected %s, got %s", r.Ratio, want, r.Outcome)
		}
	}
}

func TestResolveCombat_CasualtyRateBands(t *testing.T) {
	SeedRng(3)
	defer ResetRng()

	attacker := FleetComposition{Frigates: 1000}
	defender := FleetComposition{Frigates: 1000}

	for i := 0; i < 100; i++ {
		r := ResolveCombat(attacker, defender, nil)
		if r.Outcome != CloseBattle {
			continue
		}
		attLost := float64(r.AttackerCasualties.Frigates) / 1000
		defLost := float64(r.DefenderCasualties.Frigates) / 1000
		if attLost < 0.39 || attLost > 0.60 {
			t.Fatalf("attacker close-battle loss rate out of band: %f", attLost)
		}
		if defLost < 0.39 || defLost > 0.60 {
			t.Fatalf("defender close-battle loss rate out of band: %f", defLost)
		}
	}
}
