// Package game sequences turns: it collects one decision per side,
// applies it to the canonical state, advances fleet movements, resolves
// combat, and checks win conditions. The engine and AI packages stay
// pure; all mutation happens here.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mwestphal/voidfront/internal/ai"
	"github.com/mwestphal/voidfront/pkg/engine"
)

// DecisionMaker emits one decision per turn for one side. Satisfied by
// *ai.Engine and by the interactive CLI's human controller.
type DecisionMaker interface {
	ProcessTurn(gs *engine.GameState) (ai.Decision, error)
}

// BattleEvent records one resolved battle for reporting and persistence.
type BattleEvent struct {
	Turn     int                 `json:"turn"`
	Attacker engine.Side         `json:"attacker"`
	Target   string              `json:"target"`
	Result   engine.CombatResult `json:"result"`
}

// Orchestrator owns the canonical game state and runs turns to
// completion. It is strictly single-threaded: one RunTurn fully
// completes before the next begins.
type Orchestrator struct {
	State    *engine.GameState
	Faults   *Collector
	MaxTurns int

	makers  map[engine.Side]DecisionMaker
	battles []BattleEvent
}

// DefaultMaxTurns caps a match before it is scored on points.
const DefaultMaxTurns = 200

// NewOrchestrator builds an orchestrator over a fresh game state.
func NewOrchestrator(a, b DecisionMaker, maxTurns int) *Orchestrator {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Orchestrator{
		State:    engine.NewGameState(),
		Faults:   NewCollector(DefaultFaultHistory),
		MaxTurns: maxTurns,
		makers:   map[engine.Side]DecisionMaker{engine.SideA: a, engine.SideB: b},
	}
}

// Battles returns all battle events recorded so far.
func (o *Orchestrator) Battles() []BattleEvent {
	return o.battles
}

// TurnOutcome summarizes one processed turn.
type TurnOutcome struct {
	Turn      int
	Decisions map[engine.Side]ai.Decision
	Battles   []BattleEvent
	Over      bool
	Winner    engine.Side // empty on draw or while the game runs
}

// RunTurn processes one full turn: income, build completion, one
// decision per side (A before B, each fully applied before the other is
// computed), movement advancement with combat resolution, then the win
// check. The turn counter advances at the end.
func (o *Orchestrator) RunTurn() (*TurnOutcome, error) {
	gs := o.State
	outcome := &TurnOutcome{Turn: gs.Turn, Decisions: make(map[engine.Side]ai.Decision, 2)}

	gs.TickIncome()
	for _, s := range []engine.Side{engine.SideA, engine.SideB} {
		gs.Player(s).CompleteBuilds(gs.Turn)
	}

	for _, s := range []engine.Side{engine.SideA, engine.SideB} {
		d, err := o.makers[s].ProcessTurn(gs)
		if err != nil {
			// A decision engine emitting invalid output is a defect,
			// not a game event; record it and treat the turn as a wait.
			o.Faults.Report(gs.Turn, SeverityCritical, err.Error())
			d = ai.Wait()
		}
		o.applyDecision(s, d)
		outcome.Decisions[s] = d
	}

	battles := o.advanceMovements()
	outcome.Battles = battles

	over, winner := o.checkGameOver()
	outcome.Over = over
	outcome.Winner = winner

	gs.Turn++
	return outcome, nil
}

// applyDecision mutates the deciding side's state. Inputs are already
// validated by the decision engine; failures here are engine defects.
func (o *Orchestrator) applyDecision(s engine.Side, d ai.Decision) {
	gs := o.State
	p := gs.Player(s)

	switch d.Type {
	case ai.DecisionWait:
		return

	case ai.DecisionBuild:
		if d.Expand != "" {
			cost := engine.ExpansionCost()
			if !p.Resources.CanAfford(cost) {
				o.Faults.Report(gs.Turn, SeverityCritical,
					fmt.Sprintf("side %s: unaffordable economy expansion", s))
				return
			}
			p.Resources.Spend(cost)
			engine.ExpandEconomy(&p.Economy, d.Expand)
			return
		}
		cost := engine.BuildCost(d.Class)
		total := engine.Resources{Metal: cost.Metal * d.Quantity, Energy: cost.Energy * d.Quantity}
		if !p.Resources.CanAfford(total) {
			o.Faults.Report(gs.Turn, SeverityCritical,
				fmt.Sprintf("side %s: unaffordable build of %d %s", s, d.Quantity, d.Class))
			return
		}
		p.Resources.Spend(total)
		p.BuildQueue = append(p.BuildQueue, engine.BuildOrder{
			Class:        d.Class,
			Quantity:     d.Quantity,
			CompleteTurn: gs.Turn + engine.BuildTime(d.Class),
		})

	case ai.DecisionAttack:
		if !p.Fleet.Contains(d.Fleet) || d.Fleet.IsEmpty() {
			o.Faults.Report(gs.Turn, SeverityCritical,
				fmt.Sprintf("side %s: attack force %s unavailable", s, d.Fleet))
			return
		}
		// Debit the home fleet before constructing the movement.
		p.Fleet = p.Fleet.Subtract(d.Fleet)
		m, err := engine.NewFleetMovement(d.Fleet, d.Target, gs.Turn)
		if err != nil {
			p.Fleet = p.Fleet.Add(d.Fleet)
			o.Faults.Report(gs.Turn, SeverityCritical,
				fmt.Sprintf("side %s: movement rejected: %v", s, err))
			return
		}
		p.Movements = append(p.Movements, *m)

	case ai.DecisionScan:
		enemy := gs.Player(s.Opponent())
		p.Intelligence = engine.Intelligence{
			KnownEnemyFleet: enemy.VisibleFleet(),
			LastScanTurn:    gs.Turn,
		}

	default:
		o.Faults.Report(gs.Turn, SeverityWarning,
			fmt.Sprintf("side %s: ignoring decision type %q", s, d.Type))
	}
}

// advanceMovements classifies both sides' movements for the current
// turn, resolves arrivals against the defender's home fleet, and merges
// returning survivors.
func (o *Orchestrator) advanceMovements() []BattleEvent {
	gs := o.State
	var battles []BattleEvent

	for _, s := range []engine.Side{engine.SideA, engine.SideB} {
		p := gs.Player(s)
		if len(p.Movements) == 0 {
			continue
		}
		report := engine.ProcessFleetMovements(p.Movements, gs.Turn)
		p.Movements = report.StillAdvancing

		for _, m := range report.ReadyForCombat {
			defender := gs.Player(s.Opponent())
			result := engine.ResolveCombat(m.Composition, defender.Fleet, nil)
			defender.Fleet = result.DefenderSurvivors

			battle := BattleEvent{Turn: gs.Turn, Attacker: s, Target: m.Target, Result: result}
			battles = append(battles, battle)
			o.battles = append(o.battles, battle)

			log.Debug().
				Str("attacker", string(s)).
				Int("turn", gs.Turn).
				Str("outcome", string(result.Outcome)).
				Float64("ratio", result.Ratio).
				Msg("Battle resolved")

			if ret := engine.CreateReturningFleet(result.AttackerSurvivors, m, gs.Turn); ret != nil {
				p.Movements = append(p.Movements, *ret)
			}
		}

		for _, m := range report.Returning {
			p.Fleet = p.Fleet.Add(m.Composition)
		}
	}
	return battles
}

// Recall aborts a movement before departure, returning its ships to the
// home fleet. Index is into the side's movement list.
func (o *Orchestrator) Recall(s engine.Side, idx int) error {
	p := o.State.Player(s)
	if idx < 0 || idx >= len(p.Movements) {
		return fmt.Errorf("no movement at index %d", idx)
	}
	m := p.Movements[idx]
	if !m.CanRecall(o.State.Turn) {
		return fmt.Errorf("movement departed on turn %d and cannot be recalled", m.CreatedTurn)
	}
	p.Fleet = p.Fleet.Add(m.Composition)
	p.Movements = append(p.Movements[:idx], p.Movements[idx+1:]...)
	return nil
}

// defeated reports whether a side is out of the fight: no ships at home
// or in flight, nothing building, and not enough resources for the
// cheapest hull.
func defeated(p *engine.PlayerState) bool {
	return p.Fleet.IsEmpty() &&
		len(p.Movements) == 0 &&
		len(p.BuildQueue) == 0 &&
		!p.Resources.CanAfford(engine.CheapestUnitCost())
}

// Score is the points value used when the turn cap ends a match.
func Score(p *engine.PlayerState) float64 {
	return p.Fleet.Strength() + float64(p.Economy.TotalIncome())/1000
}

func (o *Orchestrator) checkGameOver() (bool, engine.Side) {
	gs := o.State
	aDown, bDown := defeated(&gs.SideA), defeated(&gs.SideB)
	switch {
	case aDown && bDown:
		return true, ""
	case aDown:
		return true, engine.SideB
	case bDown:
		return true, engine.SideA
	}

	if gs.Turn >= o.MaxTurns {
		sa, sb := Score(&gs.SideA), Score(&gs.SideB)
		switch {
		case sa > sb:
			return true, engine.SideA
		case sb > sa:
			return true, engine.SideB
		default:
			return true, ""
		}
	}
	return false, ""
}
