package analytics

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClient_DisabledWithoutKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewPosthogClient("", "", logger)

	assert.False(t, client.IsInitialized())
	assert.NotPanics(t, func() {
		client.Enqueue("user-1", "document_signed", map[string]any{"lane": "ginvoice"})
		client.Close()
	})

	var nilClient *PosthogClientWrapper
	assert.False(t, nilClient.IsInitialized())
}
