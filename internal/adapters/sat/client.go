// Package sat queries the tax authority status service.
package sat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
)

// Client posts batches of uuids to the status endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.SATClient = (*Client)(nil)

// NewClient creates a Client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: &http.Client{Timeout: timeout}}
}

type statusRequest struct {
	UUIDs []string `json:"uuids"`
}

type statusResponse struct {
	Statuses []struct {
		UUID   string `json:"uuid"`
		Status string `json:"status"`
	} `json:"statuses"`
}

// FetchStatuses implements gateways.SATClient.
func (c *Client) FetchStatuses(ctx context.Context, uuids []string) (map[string]string, error) {
	out := make(map[string]string, len(uuids))
	if len(uuids) == 0 {
		return out, nil
	}
	payload, err := json.Marshal(statusRequest{UUIDs: uuids})
	if err != nil {
		return nil, fmt.Errorf("sat: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/status", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("sat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sat: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sat: unexpected status %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("sat: decode response: %w", err)
	}
	for _, s := range body.Statuses {
		out[s.UUID] = s.Status
	}
	return out, nil
}
