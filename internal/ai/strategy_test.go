package ai

import (
	"math/rand"
	"testing"

	"github.com/mwestphal/voidfront/pkg/engine"
)

func TestNew_UnknownArchetype(t *testing.T) {
	if _, err := New("berserker", engine.SideB); err == nil {
		t.Error("expected construction error for unknown archetype")
	}
}

func TestNew_AllArchetypes(t *testing.T) {
	for _, a := range Archetypes() {
		e, err := New(a, engine.SideB)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		if e.Strategy().Name() != a {
			t.Errorf("%s: strategy reports name %s", a, e.Strategy().Name())
		}
	}
}

func TestEngine_DeterministicUnderSeededRng(t *testing.T) {
	defer ResetRng()

	gs := engine.NewGameState()
	gs.SideA.Fleet = engine.FleetComposition{Frigates: 20, Cruisers: 8, Battleships: 3}
	gs.SideB.Fleet = engine.FleetComposition{Frigates: 15, Cruisers: 10, Battleships: 2}

	for _, a := range Archetypes() {
		run := func() []Decision {
			SeedRng(1234)
			e, err := New(a, engine.SideB)
			if err != nil {
				t.Fatalf("%s: %v", a, err)
			}
			var decisions []Decision
			for i := 0; i < 10; i++ {
				d, err := e.ProcessTurn(gs)
				if err != nil {
					t.Fatalf("%s: turn %d: %v", a, i, err)
				}
				decisions = append(decisions, d)
			}
			return decisions
		}

		first := run()
		second := run()
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("%s: decision %d differs under identical seed: %+v vs %+v",
					a, i, first[i], second[i])
			}
		}
	}
}

func TestEngine_DecisionsAlwaysValid(t *testing.T) {
	defer ResetRng()
	SeedRng(5)

	rng := rand.New(rand.NewSource(11))
	for _, a := range Archetypes() {
		e, err := New(a, engine.SideB)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		for i := 0; i < 200; i++ {
			gs := engine.NewGameState()
			gs.SideB.Resources = engine.Resources{Metal: rng.Intn(20_000), Energy: rng.Intn(20_000)}
			gs.SideB.Fleet = engine.FleetComposition{
				Frigates:    rng.Intn(30),
				Cruisers:    rng.Intn(15),
				Battleships: rng.Intn(8),
			}
			gs.SideA.Fleet = engine.FleetComposition{
				Frigates:    rng.Intn(30),
				Cruisers:    rng.Intn(15),
				Battleships: rng.Intn(8),
			}
			gs.Turn = 1 + rng.Intn(50)

			if _, err := e.ProcessTurn(gs); err != nil {
				t.Fatalf("%s: iteration %d: %v", a, i, err)
			}
		}
	}
}

func TestState_RefreshDerivesHeuristics(t *testing.T) {
	gs := engine.NewGameState()
	gs.SideB.Fleet = engine.FleetComposition{Frigates: 10}
	gs.SideA.Fleet = engine.FleetComposition{Frigates: 20}
	gs.SideA.Economy = engine.Economy{MetalIncome: 9_000, EnergyIncome: 5_000}

	st := &State{}
	st.Refresh(gs, engine.SideB)

	// Enemy is twice as strong: ratio 2.0 - 0.5 clamps to 1.
	if st.ThreatLevel != 1.0 {
		t.Errorf("expected threat 1.0, got %f", st.ThreatLevel)
	}
	if st.EconomicAdvantage >= 0 {
		t.Errorf("expected negative economic advantage, got %f", st.EconomicAdvantage)
	}
	if st.EnemyFleet != gs.SideA.Fleet {
		t.Errorf("enemy fleet mirror wrong: %v", st.EnemyFleet)
	}
}
