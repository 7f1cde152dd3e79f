package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sakif/farm-assistant/internal/ai"
	"github.com/sakif/farm-assistant/internal/repository/sqlite"
)

// SHARED TEST FIXTURES:
// Handler tests run against the real service layer — a fake model behind
// the AI gateway and an in-memory sqlite store — so they exercise the same
// wiring the server does, minus the network.

// testLogger discards output. Handlers log liberally; tests don't care.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore creates a throwaway in-memory store for one test.
func newTestStore(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// fakeCompleter is a canned model: same reply (or error) for every call.
type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) CompleteText(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

func (f *fakeCompleter) CompleteVision(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

// newFakeGateway wires a canned model into a real AI gateway.
func newFakeGateway(reply string, err error) *ai.Service {
	return ai.NewService(&fakeCompleter{reply: reply, err: err}, testLogger())
}
