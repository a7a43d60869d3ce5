package repository

import (
	"context"
	"encoding/json"

	"github.com/mwestphal/voidfront/internal/model"
)

// MatchRepository defines match history operations.
type MatchRepository interface {
	Create(ctx context.Context, name, archetypeA, archetypeB string, seed int64) (*model.Match, error)
	FindByID(ctx context.Context, id string) (*model.Match, error)
	ListFinished(ctx context.Context, limit int) ([]model.Match, error)
	SetFinished(ctx context.Context, matchID, winner string, turns int) error
}

// TurnRepository defines per-turn history operations.
type TurnRepository interface {
	SaveTurn(ctx context.Context, t model.Turn) error
	SaveBattles(ctx context.Context, battles []model.Battle) error
	ListTurns(ctx context.Context, matchID string) ([]model.Turn, error)
	ListBattles(ctx context.Context, matchID string) ([]model.Battle, error)
}

// SessionCache defines live session state operations (Redis).
type SessionCache interface {
	SetSnapshot(ctx context.Context, sessionID string, state json.RawMessage) error
	GetSnapshot(ctx context.Context, sessionID string) (json.RawMessage, error)
	SetLastDecision(ctx context.Context, sessionID, side string, decision json.RawMessage) error
	GetLastDecision(ctx context.Context, sessionID, side string) (json.RawMessage, error)
	DeleteSession(ctx context.Context, sessionID string, sides []string) error
}
