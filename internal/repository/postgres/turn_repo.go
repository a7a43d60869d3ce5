package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwestphal/voidfront/internal/model"
)

// TurnRepo handles turn and battle history database operations.
type TurnRepo struct {
	db *sql.DB
}

// NewTurnRepo creates a TurnRepo.
func NewTurnRepo(db *sql.DB) *TurnRepo {
	return &TurnRepo{db: db}
}

// SaveTurn inserts one resolved turn.
func (r *TurnRepo) SaveTurn(ctx context.Context, t model.Turn) error {
	id := t.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO turns (id, match_id, turn, decision_a, decision_b, state_after)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, t.MatchID, t.Turn, []byte(t.DecisionA), []byte(t.DecisionB), []byte(t.StateAfter))
	if err != nil {
		return fmt.Errorf("save turn: %w", err)
	}
	return nil
}

// SaveBattles inserts a batch of battle records.
func (r *TurnRepo) SaveBattles(ctx context.Context, battles []model.Battle) error {
	for _, b := range battles {
		id := b.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO battles (id, match_id, turn, attacker, outcome, ratio, detail)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, b.MatchID, b.Turn, b.Attacker, b.Outcome, b.Ratio, []byte(b.Detail))
		if err != nil {
			return fmt.Errorf("save battle: %w", err)
		}
	}
	return nil
}

// ListTurns returns a match's turns in order.
func (r *TurnRepo) ListTurns(ctx context.Context, matchID string) ([]model.Turn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, match_id, turn, decision_a, decision_b, state_after, created_at
		 FROM turns WHERE match_id = $1 ORDER BY turn`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		var da, db2, sa []byte
		if err := rows.Scan(&t.ID, &t.MatchID, &t.Turn, &da, &db2, &sa, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.DecisionA, t.DecisionB, t.StateAfter = da, db2, sa
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// ListBattles returns a match's battles in turn order.
func (r *TurnRepo) ListBattles(ctx context.Context, matchID string) ([]model.Battle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, match_id, turn, attacker, outcome, ratio, detail
		 FROM battles WHERE match_id = $1 ORDER BY turn`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list battles: %w", err)
	}
	defer rows.Close()

	var battles []model.Battle
	for rows.Next() {
		var b model.Battle
		var detail []byte
		if err := rows.Scan(&b.ID, &b.MatchID, &b.Turn, &b.Attacker, &b.Outcome, &b.Ratio, &detail); err != nil {
			return nil, fmt.Errorf("scan battle: %w", err)
		}
		b.Detail = detail
		battles = append(battles, b)
	}
	return battles, rows.Err()
}
