package ai

import (
	"testing"

	"github.com/mwestphal/voidfront/pkg/engine"
)

func aggressorState(fleet engine.FleetComposition, enemy engine.FleetComposition) *State {
	gs := engine.NewGameState()
	gs.SideB.Fleet = fleet
	gs.SideB.Resources = engine.Resources{Metal: 100_000, Energy: 100_000}
	gs.SideA.Fleet = enemy

	st := &State{Archetype: ArchetypeAggressor, Profile: aggressorProfile}
	st.Refresh(gs, engine.SideB)
	return st
}

func TestAggressor_NeverAttacksBelowFleetMinimum(t *testing.T) {
	defer ResetRng()
	SeedRng(2)

	s := AggressorStrategy{}
	st := aggressorState(engine.FleetComposition{Frigates: 4}, engine.FleetComposition{Frigates: 4})

	for i := 0; i < 200; i++ {
		if d := s.Decide(st); d.Type == DecisionAttack {
			t.Fatal("aggressor attacked with a 4-ship fleet")
		}
	}
}

func TestAggressor_NeverAttacksUnderOverwhelmingThreat(t *testing.T) {
	defer ResetRng()
	SeedRng(6)

	s := AggressorStrategy{}
	st := aggressorState(
		engine.FleetComposition{Frigates: 20},
		engine.FleetComposition{Battleships: 200},
	)
	if st.ThreatLevel < aggressorMaxAttackThreat {
		t.Fatalf("test setup: threat %f too low", st.ThreatLevel)
	}

	for i := 0; i < 200; i++ {
		if d := s.Decide(st); d.Type == DecisionAttack {
			t.Fatal("aggressor attacked under overwhelming threat")
		}
	}
}

func TestAggressor_AttacksWithMostOfTheFleet(t *testing.T) {
	defer ResetRng()
	SeedRng(13)

	s := AggressorStrategy{}
	st := aggressorState(
		engine.FleetComposition{Frigates: 100, Cruisers: 40, Battleships: 10},
		engine.FleetComposition{Frigates: 50},
	)

	sawAttack := false
	for i := 0; i < 100; i++ {
		d := s.Decide(st)
		if d.Type != DecisionAttack {
			continue
		}
		sawAttack = true
		if !st.Fleet.Contains(d.Fleet) {
			t.Fatalf("attack force %v exceeds fleet", d.Fleet)
		}
		// 60-80% commitment, floored per class.
		if d.Fleet.Frigates < 60 || d.Fleet.Frigates > 80 {
			t.Fatalf("frigate commitment %d outside 60-80%%", d.Fleet.Frigates)
		}
	}
	if !sawAttack {
		t.Error("aggressor never attacked from a dominant position")
	}
}

func TestAggressor_SkipsEconomyAboveIncomeTarget(t *testing.T) {
	defer ResetRng()
	SeedRng(19)

	s := AggressorStrategy{}
	st := aggressorState(engine.FleetComposition{Frigates: 10}, engine.FleetComposition{Frigates: 10})
	st.Economy = engine.Economy{MetalIncome: 10_000, EnergyIncome: 10_000}

	for i := 0; i < 200; i++ {
		if d := s.Decide(st); d.Type == DecisionBuild && d.Expand != "" {
			t.Fatal("aggressor expanded economy above its income target")
		}
	}
}
