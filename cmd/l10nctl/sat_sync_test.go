package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/l10n_addons/internal/platform/app"
	"github.com/SscSPs/l10n_addons/internal/platform/config"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{StorageBackend: config.StorageMemory, PACTestMode: true}
	a, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestSyncLoop_OneShot(t *testing.T) {
	a := newTestApp(t)
	err := syncLoop(context.Background(), a.Services.EDIDocument, nil, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, err)
}

func TestSyncLoop_StopsWithContext(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- syncLoop(ctx, a.Services.EDIDocument, nil, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sync loop did not stop")
	}
}
