// Package sandbox is an in-process signing provider and tax authority for test mode.
// Documents it signs report "valid" and documents it cancels report "cancelled".
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
	"github.com/google/uuid"
)

// Provider implements both gateways.PACClient and gateways.SATClient.
type Provider struct {
	mu       sync.Mutex
	statuses map[string]domain.SATState
	failNext error
}

var (
	_ gateways.PACClient = (*Provider)(nil)
	_ gateways.SATClient = (*Provider)(nil)
)

// New creates an empty sandbox.
func New() *Provider {
	return &Provider{statuses: make(map[string]domain.SATState)}
}

// FailNext makes the next Sign or Cancel call fail with err.
func (p *Provider) FailNext(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failNext = err
}

func (p *Provider) takeFailure() error {
	err := p.failNext
	p.failNext = nil
	return err
}

// Sign implements gateways.PACClient.
func (p *Provider) Sign(ctx context.Context, req gateways.SignRequest) (*gateways.SignResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure(); err != nil {
		return nil, err
	}
	if len(req.XML) == 0 {
		return nil, errors.New("sandbox: empty payload")
	}
	id := uuid.NewString()
	p.statuses[id] = domain.SATValid
	return &gateways.SignResult{
		UUID:           id,
		Attachment:     req.XML,
		AttachmentName: fmt.Sprintf("%s_%s.xml", req.Lane, id),
	}, nil
}

// Cancel implements gateways.PACClient.
func (p *Provider) Cancel(ctx context.Context, req gateways.CancelRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure(); err != nil {
		return err
	}
	if _, ok := p.statuses[req.UUID]; !ok {
		return fmt.Errorf("sandbox: unknown uuid %s", req.UUID)
	}
	p.statuses[req.UUID] = domain.SATCancelled
	return nil
}

// FetchStatuses implements gateways.SATClient.
func (p *Provider) FetchStatuses(ctx context.Context, uuids []string) (map[string]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(uuids))
	for _, id := range uuids {
		if s, ok := p.statuses[id]; ok {
			out[id] = string(s)
		}
	}
	return out, nil
}
