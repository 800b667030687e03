// Package analytics forwards product events to PostHog. A client built without an api key
// is a no-op, so callers never check whether tracking is enabled.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog ingestion host.
const DefaultEndpoint = "https://eu.i.posthog.com"

// Tracker records a named event for a distinct user.
type Tracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// PosthogClientWrapper wraps posthog.Client and tolerates being uninitialized.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

var _ Tracker = (*PosthogClientWrapper)(nil)

// NewPosthogClient creates the wrapper. An empty apiKey yields a disabled client.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, event tracking disabled")
		return &PosthogClientWrapper{logger: logger}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client, event tracking disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

// IsInitialized reports whether events are actually sent.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

// Enqueue queues an event. It never blocks on the network.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	if err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	w.posthogClient.Close()
}

// Nop discards every event.
type Nop struct{}

// Enqueue implements Tracker.
func (Nop) Enqueue(string, string, map[string]any) {}
