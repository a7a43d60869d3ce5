package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwestphal/voidfront/internal/model"
)

// MatchRepo handles match history database operations.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo creates a MatchRepo.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// Create inserts a new match in active status.
func (r *MatchRepo) Create(ctx context.Context, name, archetypeA, archetypeB string, seed int64) (*model.Match, error) {
	var m model.Match
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO matches (id, name, archetype_a, archetype_b, seed, status)
		 VALUES ($1, $2, $3, $4, $5, 'active')
		 RETURNING id, name, archetype_a, archetype_b, seed, status, created_at`,
		uuid.NewString(), name, archetypeA, archetypeB, seed,
	).Scan(&m.ID, &m.Name, &m.ArchetypeA, &m.ArchetypeB, &m.Seed, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return &m, nil
}

// FindByID returns a match by ID, or nil when absent.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	var m model.Match
	var winner sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, archetype_a, archetype_b, seed, status, winner, turns, created_at, finished_at
		 FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.ArchetypeA, &m.ArchetypeB, &m.Seed, &m.Status, &winner, &m.Turns,
		&m.CreatedAt, &m.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	m.Winner = winner.String
	return &m, nil
}

// ListFinished returns finished matches, most recent first.
func (r *MatchRepo) ListFinished(ctx context.Context, limit int) ([]model.Match, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, archetype_a, archetype_b, seed, status, winner, turns, created_at, finished_at
		 FROM matches WHERE status = 'finished'
		 ORDER BY finished_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		var winner sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.ArchetypeA, &m.ArchetypeB, &m.Seed, &m.Status, &winner,
			&m.Turns, &m.CreatedAt, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Winner = winner.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// SetFinished marks a match finished with its winner ("" for a draw)
// and final turn count.
func (r *MatchRepo) SetFinished(ctx context.Context, matchID, winner string, turns int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE matches SET status = 'finished', winner = NULLIF($2, ''), turns = $3, finished_at = NOW()
		 WHERE id = $1`, matchID, winner, turns)
	if err != nil {
		return fmt.Errorf("finish match: %w", err)
	}
	return nil
}
