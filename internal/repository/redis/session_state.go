package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key patterns for Redis session state.
func snapshotKey(sessionID string) string { return "session:" + sessionID + ":state" }
func decisionKey(sessionID, side string) string {
	return "session:" + sessionID + ":decision:" + side
}

// SetSnapshot stores the live session state JSON.
func (c *Client) SetSnapshot(ctx context.Context, sessionID string, state json.RawMessage) error {
	return c.rdb.Set(ctx, snapshotKey(sessionID), []byte(state), 0).Err()
}

// GetSnapshot retrieves the live session state JSON, nil when absent.
func (c *Client) GetSnapshot(ctx context.Context, sessionID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

// SetLastDecision stores a side's most recent decision.
func (c *Client) SetLastDecision(ctx context.Context, sessionID, side string, decision json.RawMessage) error {
	return c.rdb.Set(ctx, decisionKey(sessionID, side), []byte(decision), 0).Err()
}

// GetLastDecision retrieves a side's most recent decision, nil when absent.
func (c *Client) GetLastDecision(ctx context.Context, sessionID, side string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, decisionKey(sessionID, side)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last decision: %w", err)
	}
	return json.RawMessage(data), nil
}

// DeleteSession removes all Redis data for a session (on session end).
func (c *Client) DeleteSession(ctx context.Context, sessionID string, sides []string) error {
	keys := []string{snapshotKey(sessionID)}
	for _, side := range sides {
		keys = append(keys, decisionKey(sessionID, side))
	}
	return c.rdb.Del(ctx, keys...).Err()
}
