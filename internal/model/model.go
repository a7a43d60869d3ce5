// Package model holds the persistence-facing row types shared by the
// repositories and the match harness.
package model

import (
	"encoding/json"
	"time"
)

// Match represents one recorded game between two archetypes (or a
// player and an archetype).
type Match struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ArchetypeA string     `json:"archetype_a"`
	ArchetypeB string     `json:"archetype_b"`
	Status     string     `json:"status"` // active, finished
	Winner     string     `json:"winner,omitempty"`
	Turns      int        `json:"turns"`
	Seed       int64      `json:"seed,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Turn is one resolved turn of a match: both decisions and the state
// after the turn, stored as JSON snapshots.
type Turn struct {
	ID         string          `json:"id"`
	MatchID    string          `json:"match_id"`
	Turn       int             `json:"turn"`
	DecisionA  json.RawMessage `json:"decision_a"`
	DecisionB  json.RawMessage `json:"decision_b"`
	StateAfter json.RawMessage `json:"state_after"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Battle is one resolved battle within a turn.
type Battle struct {
	ID       string          `json:"id"`
	MatchID  string          `json:"match_id"`
	Turn     int             `json:"turn"`
	Attacker string          `json:"attacker"`
	Outcome  string          `json:"outcome"`
	Ratio    float64         `json:"ratio"`
	Detail   json.RawMessage `json:"detail"`
}
