package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSessionIDRoundTrip(t *testing.T) {
	ctx := WithSessionID(context.Background(), "sess-42")
	if got := SessionIDFromContext(ctx); got != "sess-42" {
		t.Errorf("session id = %q, want sess-42", got)
	}
	if got := SessionIDFromContext(context.Background()); got != "" {
		t.Errorf("session id on bare context = %q, want empty", got)
	}
}

func TestForSessionEnrichesEvents(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	ctx := WithSessionID(context.Background(), "sess-7")
	l := ForSession(ctx)
	l.Info().Msg("turn done")

	if !strings.Contains(buf.String(), `"sessionId":"sess-7"`) {
		t.Errorf("log event missing session id: %s", buf.String())
	}
}

func TestForSessionWithoutIDUsesGlobal(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	l := ForSession(context.Background())
	l.Info().Msg("no session")

	if strings.Contains(buf.String(), "sessionId") {
		t.Errorf("unexpected session id on bare context: %s", buf.String())
	}
}
