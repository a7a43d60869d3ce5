//go:build integration

package redis

import (
	"context"
	"encoding/json"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mwestphal/voidfront/internal/testutil"
)

var testRDB *goredis.Client

func setup(t *testing.T) *Client {
	t.Helper()
	if testRDB == nil {
		testRDB = testutil.SetupRedis(t)
	}
	testutil.CleanupRedis(t, testRDB)
	return NewClientFromPool(testRDB)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	sessionID := "test-session-1"

	state := json.RawMessage(`{"turn":12,"side_a":{"resources":{"metal":5000,"energy":3000}}}`)

	if err := c.SetSnapshot(ctx, sessionID, state); err != nil {
		t.Fatalf("set snapshot: %v", err)
	}

	got, err := c.GetSnapshot(ctx, sessionID)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil snapshot")
	}

	var fetched map[string]any
	json.Unmarshal(got, &fetched)
	if fetched["turn"].(float64) != 12 {
		t.Fatalf("snapshot round-trip failed: %s", string(got))
	}
}

func TestSnapshotNotFound(t *testing.T) {
	c := setup(t)

	got, err := c.GetSnapshot(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("get missing snapshot: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing snapshot")
	}
}

func TestLastDecisionPerSide(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	sessionID := "test-session-2"

	decisionA := json.RawMessage(`{"type":"attack","target":"enemy_home"}`)
	decisionB := json.RawMessage(`{"type":"build","class":"cruiser","quantity":3}`)

	c.SetLastDecision(ctx, sessionID, "a", decisionA)
	c.SetLastDecision(ctx, sessionID, "b", decisionB)

	got, err := c.GetLastDecision(ctx, sessionID, "a")
	if err != nil {
		t.Fatalf("get last decision: %v", err)
	}
	if string(got) != string(decisionA) {
		t.Fatalf("expected %s, got %s", decisionA, got)
	}

	// Side with no stored decision returns nil
	missing, err := c.GetLastDecision(ctx, "other-session", "a")
	if err != nil {
		t.Fatalf("get missing decision: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for session with no decision")
	}
}

func TestDeleteSession(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	sessionID := "test-session-3"
	sides := []string{"a", "b"}

	c.SetSnapshot(ctx, sessionID, json.RawMessage(`{"turn":1}`))
	c.SetLastDecision(ctx, sessionID, "a", json.RawMessage(`{"type":"wait"}`))
	c.SetLastDecision(ctx, sessionID, "b", json.RawMessage(`{"type":"wait"}`))

	if err := c.DeleteSession(ctx, sessionID, sides); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	state, _ := c.GetSnapshot(ctx, sessionID)
	if state != nil {
		t.Fatal("expected snapshot deleted")
	}
	for _, side := range sides {
		d, _ := c.GetLastDecision(ctx, sessionID, side)
		if d != nil {
			t.Fatalf("expected side %s decision deleted", side)
		}
	}
}
