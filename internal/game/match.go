package game

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mwestphal/voidfront/internal/ai"
	"github.com/mwestphal/voidfront/internal/model"
	"github.com/mwestphal/voidfront/internal/repository"
	"github.com/mwestphal/voidfront/pkg/engine"
)

// MatchConfig configures a single archetype-vs-archetype match.
type MatchConfig struct {
	Name       string
	ArchetypeA string
	ArchetypeB string
	MaxTurns   int
	Seed       int64 // 0 = non-deterministic
	DryRun     bool  // skip DB writes
}

// MatchResult describes the outcome of a completed match.
type MatchResult struct {
	MatchID string
	Winner  string // side label or "" for draw
	Turns   int
	Battles int
	ScoreA  float64
	ScoreB  float64
	Faults  int
}

// RunMatch plays a full match between two archetypes, saving turns and
// battles to Postgres. Pass nil repos for dry-run mode. Seeded runs are
// deterministic when matches run one at a time.
func RunMatch(
	ctx context.Context,
	cfg MatchConfig,
	matchRepo repository.MatchRepository,
	turnRepo repository.TurnRepository,
) (*MatchResult, error) {
	if cfg.Seed != 0 {
		ai.SeedRng(cfg.Seed)
		engine.SeedRng(cfg.Seed + 1)
	}

	engineA, err := ai.New(cfg.ArchetypeA, engine.SideA)
	if err != nil {
		return nil, fmt.Errorf("side a: %w", err)
	}
	engineB, err := ai.New(cfg.ArchetypeB, engine.SideB)
	if err != nil {
		return nil, fmt.Errorf("side b: %w", err)
	}

	o := NewOrchestrator(engineA, engineB, cfg.MaxTurns)

	var matchID string
	if !cfg.DryRun {
		m, err := matchRepo.Create(ctx, cfg.Name, cfg.ArchetypeA, cfg.ArchetypeB, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("create match: %w", err)
		}
		matchID = m.ID
	}

	result := &MatchResult{MatchID: matchID}

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		outcome, err := o.RunTurn()
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", o.State.Turn, err)
		}
		result.Turns = outcome.Turn
		result.Battles += len(outcome.Battles)

		if !cfg.DryRun {
			if err := persistTurn(ctx, turnRepo, matchID, o.State, outcome); err != nil {
				return nil, err
			}
		}

		if !outcome.Over {
			continue
		}

		result.Winner = string(outcome.Winner)
		result.ScoreA = Score(&o.State.SideA)
		result.ScoreB = Score(&o.State.SideB)
		result.Faults = len(o.Faults.Faults())

		if !cfg.DryRun {
			if err := matchRepo.SetFinished(ctx, matchID, result.Winner, result.Turns); err != nil {
				return nil, fmt.Errorf("finish match: %w", err)
			}
		}

		log.Info().
			Str("matchId", matchID).
			Str("winner", result.Winner).
			Int("turns", result.Turns).
			Int("battles", result.Battles).
			Msg("Match finished")
		return result, nil
	}
}

// persistTurn saves one turn's decisions, state snapshot, and battles.
func persistTurn(
	ctx context.Context,
	turnRepo repository.TurnRepository,
	matchID string,
	gs *engine.GameState,
	outcome *TurnOutcome,
) error {
	decisionA, err := json.Marshal(outcome.Decisions[engine.SideA])
	if err != nil {
		return fmt.Errorf("marshal decision a: %w", err)
	}
	decisionB, err := json.Marshal(outcome.Decisions[engine.SideB])
	if err != nil {
		return fmt.Errorf("marshal decision b: %w", err)
	}
	state, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := turnRepo.SaveTurn(ctx, model.Turn{
		MatchID:    matchID,
		Turn:       outcome.Turn,
		DecisionA:  decisionA,
		DecisionB:  decisionB,
		StateAfter: state,
	}); err != nil {
		return err
	}

	if len(outcome.Battles) == 0 {
		return nil
	}
	battles := make([]model.Battle, 0, len(outcome.Battles))
	for _, b := range outcome.Battles {
		detail, err := json.Marshal(b.Result)
		if err != nil {
			return fmt.Errorf("marshal battle: %w", err)
		}
		battles = append(battles, model.Battle{
			MatchID:  matchID,
			Turn:     b.Turn,
			Attacker: string(b.Attacker),
			Outcome:  string(b.Result.Outcome),
			Ratio:    b.Result.Ratio,
			Detail:   detail,
		})
	}
	return turnRepo.SaveBattles(ctx, battles)
}
