package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwestphal/voidfront/internal/ai"
	"github.com/mwestphal/voidfront/internal/config"
	"github.com/mwestphal/voidfront/internal/game"
	"github.com/mwestphal/voidfront/internal/logger"
	redisrepo "github.com/mwestphal/voidfront/internal/repository/redis"
	"github.com/mwestphal/voidfront/pkg/engine"
)

// humanController reads the player's decision from stdin. Informational
// commands (status, recall) are handled inline and keep prompting until
// the player commits to an action for the turn.
type humanController struct {
	in   *bufio.Scanner
	orch *game.Orchestrator
	quit bool
}

func (h *humanController) ProcessTurn(gs *engine.GameState) (ai.Decision, error) {
	p := gs.Player(engine.SideA)
	for {
		fmt.Printf("\n[turn %d] metal %s  energy %s  fleet %s\n",
			gs.Turn,
			humanize.Comma(int64(p.Resources.Metal)),
			humanize.Comma(int64(p.Resources.Energy)),
			p.Fleet)
		fmt.Print("> ")
		if !h.in.Scan() {
			h.quit = true
			return ai.Wait(), nil
		}
		fields := strings.Fields(h.in.Text())
		if len(fields) == 0 {
			continue
		}

		d, handled, err := h.parse(fields, gs)
		if err != nil {
			fmt.Println("  " + err.Error())
			continue
		}
		if handled {
			continue
		}
		return d, nil
	}
}

// parse interprets one command line. handled=true means the command was
// informational and the player still owes a decision.
func (h *humanController) parse(fields []string, gs *engine.GameState) (ai.Decision, bool, error) {
	p := gs.Player(engine.SideA)

	switch fields[0] {
	case "build":
		if len(fields) != 3 {
			return ai.Decision{}, false, fmt.Errorf("usage: build <frigate|cruiser|battleship> <qty>")
		}
		class, err := engine.ParseUnitClass(fields[1])
		if err != nil {
			return ai.Decision{}, false, err
		}
		qty, err := strconv.Atoi(fields[2])
		if err != nil || qty <= 0 {
			return ai.Decision{}, false, fmt.Errorf("quantity must be a positive number")
		}
		cost := engine.BuildCost(class)
		total := engine.Resources{Metal: cost.Metal * qty, Energy: cost.Energy * qty}
		if !p.Resources.CanAfford(total) {
			return ai.Decision{}, false, fmt.Errorf("need %s metal and %s energy",
				humanize.Comma(int64(total.Metal)), humanize.Comma(int64(total.Energy)))
		}
		return ai.Decision{Type: ai.DecisionBuild, Class: class, Quantity: qty}, false, nil

	case "expand":
		if len(fields) != 2 || (fields[1] != "metal" && fields[1] != "energy") {
			return ai.Decision{}, false, fmt.Errorf("usage: expand <metal|energy>")
		}
		if !p.Resources.CanAfford(engine.ExpansionCost()) {
			c := engine.ExpansionCost()
			return ai.Decision{}, false, fmt.Errorf("expansion costs %s metal and %s energy",
				humanize.Comma(int64(c.Metal)), humanize.Comma(int64(c.Energy)))
		}
		return ai.Decision{Type: ai.DecisionBuild, Expand: engine.ResourceType(fields[1])}, false, nil

	case "attack":
		if len(fields) != 4 {
			return ai.Decision{}, false, fmt.Errorf("usage: attack <frigates> <cruisers> <battleships>")
		}
		var counts [3]int
		for i, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return ai.Decision{}, false, fmt.Errorf("ship counts must be non-negative numbers")
			}
			counts[i] = n
		}
		force := engine.FleetComposition{Frigates: counts[0], Cruisers: counts[1], Battleships: counts[2]}
		if force.IsEmpty() {
			return ai.Decision{}, false, fmt.Errorf("attack force is empty")
		}
		if !p.Fleet.Contains(force) {
			return ai.Decision{}, false, fmt.Errorf("only %s available at home", p.Fleet)
		}
		return ai.Decision{Type: ai.DecisionAttack, Target: ai.EnemyHomeTarget, Fleet: force}, false, nil

	case "scan":
		return ai.Decision{Type: ai.DecisionScan, Scan: ai.ScanFleet}, false, nil

	case "recall":
		if len(fields) != 2 {
			return ai.Decision{}, false, fmt.Errorf("usage: recall <movement#>")
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return ai.Decision{}, false, fmt.Errorf("usage: recall <movement#>")
		}
		if err := h.orch.Recall(engine.SideA, idx); err != nil {
			return ai.Decision{}, false, err
		}
		fmt.Println("  fleet recalled")
		return ai.Decision{}, true, nil

	case "status":
		printStatus(gs)
		return ai.Decision{}, true, nil

	case "wait":
		return ai.Wait(), false, nil

	case "quit":
		h.quit = true
		return ai.Wait(), false, nil

	case "help":
		fmt.Println("  commands: build, expand, attack, scan, recall, status, wait, quit")
		return ai.Decision{}, true, nil
	}
	return ai.Decision{}, false, fmt.Errorf("unknown command %q (try help)", fields[0])
}

func printStatus(gs *engine.GameState) {
	p := gs.Player(engine.SideA)
	fmt.Printf("  resources: %s metal, %s energy (income %s/%s per turn)\n",
		humanize.Comma(int64(p.Resources.Metal)), humanize.Comma(int64(p.Resources.Energy)),
		humanize.Comma(int64(p.Economy.MetalIncome)), humanize.Comma(int64(p.Economy.EnergyIncome)))
	fmt.Printf("  home fleet: %s\n", p.Fleet)
	if p.IsVulnerable(gs.Turn) {
		fmt.Println("  warning: fleets in transit, home defense is reduced")
	}
	for i, m := range p.Movements {
		fmt.Printf("  movement %d: %s -> %s (%s, arrives turn %d)\n",
			i, m.Composition, m.Target, m.Phase(gs.Turn), m.ArrivalTurn)
	}
	for _, b := range p.BuildQueue {
		fmt.Printf("  building: %d %s (ready turn %d)\n", b.Quantity, b.Class, b.CompleteTurn)
	}
	if p.Intelligence.LastScanTurn > 0 {
		fmt.Printf("  last scan (turn %d): enemy fleet %s\n",
			p.Intelligence.LastScanTurn, p.Intelligence.KnownEnemyFleet)
	}
}

func main() {
	logger.Init()
	cfg := config.Load()

	var archetype string
	var maxTurns int
	flag.StringVar(&archetype, "ai", cfg.Archetype, "Opponent archetype (aggressor|economist|trickster|hybrid)")
	flag.IntVar(&maxTurns, "max-turns", cfg.MaxTurns, "Max turns before scoring on points")
	flag.Parse()

	opponent, err := ai.New(archetype, engine.SideB)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown archetype")
	}

	human := &humanController{in: bufio.NewScanner(os.Stdin)}
	orch := game.NewOrchestrator(human, opponent, maxTurns)
	human.orch = orch

	sessionID := uuid.NewString()
	ctx := logger.WithSessionID(context.Background(), sessionID)
	slog := logger.ForSession(ctx)

	// Session snapshots go to Redis when available, so a crashed session
	// leaves an inspectable last state behind.
	var cache *redisrepo.Client
	if c, err := redisrepo.NewClient(cfg.RedisURL); err == nil {
		cache = c
		defer cache.Close()
		defer cache.DeleteSession(ctx, sessionID, []string{"a", "b"})
	} else {
		slog.Debug().Err(err).Msg("Redis unavailable, session snapshots disabled")
	}

	slog.Info().Str("archetype", archetype).Int("maxTurns", maxTurns).Msg("Session started")

	fmt.Printf("voidfront -- you are side a, facing a %s opponent (session %s)\n", archetype, sessionID)
	fmt.Println("type help for commands")

	for {
		outcome, err := orch.RunTurn()
		if err != nil {
			slog.Fatal().Err(err).Msg("Turn failed")
		}

		for _, b := range outcome.Battles {
			who := "your fleet"
			if b.Attacker == engine.SideB {
				who = "enemy fleet"
			}
			fmt.Printf("  battle at %s: %s attacked, outcome %s (ratio %.2f)\n",
				b.Target, who, b.Result.Outcome, b.Result.Ratio)
		}

		if cache != nil {
			if snap, err := json.Marshal(orch.State); err == nil {
				if err := cache.SetSnapshot(ctx, sessionID, snap); err != nil {
					slog.Debug().Err(err).Msg("Snapshot write failed")
				}
			}
			for side, d := range outcome.Decisions {
				if raw, err := json.Marshal(d); err == nil {
					cache.SetLastDecision(ctx, sessionID, string(side), raw)
				}
			}
		}

		if human.quit {
			fmt.Println("goodbye")
			return
		}
		if outcome.Over {
			switch outcome.Winner {
			case engine.SideA:
				fmt.Printf("victory on turn %d\n", outcome.Turn)
			case engine.SideB:
				fmt.Printf("defeat on turn %d\n", outcome.Turn)
			default:
				fmt.Printf("draw on turn %d\n", outcome.Turn)
			}
			fmt.Printf("final score: you %.1f, opponent %.1f\n",
				game.Score(&orch.State.SideA), game.Score(&orch.State.SideB))
			return
		}
	}
}
