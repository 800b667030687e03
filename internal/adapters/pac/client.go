// Package pac is the HTTP client of the authorized signing provider (PAC).
package pac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds the provider endpoint and OAuth2 client credentials.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Client calls the provider's JSON API. Every request carries a client-credentials token.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.PACClient = (*Client)(nil)

// NewClient creates a Client. Tokens are fetched lazily and cached until they expire.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := base
	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		httpClient = cc.Client(ctx)
		httpClient.Timeout = timeout
	}
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), httpClient: httpClient}
}

type stampRequest struct {
	RFC         string   `json:"rfc"`
	Type        string   `json:"type"`
	Periodicity string   `json:"periodicity,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	References  []string `json:"references"`
	XML         []byte   `json:"xml"`
}

type stampResponse struct {
	UUID     string `json:"uuid"`
	XML      []byte `json:"xml"`
	Filename string `json:"filename"`
}

type cancelRequest struct {
	RFC              string `json:"rfc"`
	UUID             string `json:"uuid"`
	Reason           string `json:"reason"`
	SubstitutionUUID string `json:"substitution_uuid,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Sign stamps a CFDI.
func (c *Client) Sign(ctx context.Context, req gateways.SignRequest) (*gateways.SignResult, error) {
	var res stampResponse
	err := c.post(ctx, "/v1/stamp", stampRequest{
		RFC:         req.CompanyVAT,
		Type:        string(req.Lane),
		Periodicity: req.Periodicity,
		Origin:      req.Origin,
		References:  req.OrderIDs,
		XML:         req.XML,
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.UUID == "" {
		return nil, fmt.Errorf("pac: stamp response without uuid")
	}
	name := res.Filename
	if name == "" {
		name = res.UUID + ".xml"
	}
	return &gateways.SignResult{UUID: res.UUID, Attachment: res.XML, AttachmentName: name}, nil
}

// Cancel cancels a stamped CFDI.
func (c *Client) Cancel(ctx context.Context, req gateways.CancelRequest) error {
	return c.post(ctx, "/v1/cancel", cancelRequest{
		RFC:              req.CompanyVAT,
		UUID:             req.UUID,
		Reason:           req.Reason,
		SubstitutionUUID: req.SubstitutionUUID,
	}, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("pac: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("pac: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("pac: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("pac: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("pac: %s", e.Error)
		}
		return fmt.Errorf("pac: unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("pac: decode response: %w", err)
	}
	return nil
}
