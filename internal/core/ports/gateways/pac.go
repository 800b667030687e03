package gateways

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// SignRequest asks the signing provider to stamp a CFDI built for a set of orders.
type SignRequest struct {
	Lane        domain.Lane
	CompanyID   string
	CompanyVAT  string
	OrderIDs    []string
	Origin      string
	Periodicity string
	XML         []byte
}

// SignResult is the stamped document returned by the provider.
type SignResult struct {
	UUID           string
	Attachment     []byte
	AttachmentName string
}

// CancelRequest asks the provider to cancel a stamped CFDI.
type CancelRequest struct {
	CompanyVAT       string
	UUID             string
	Reason           string
	SubstitutionUUID string
}

// PACClient is the authorized signing provider. Any returned error is a remote failure and is
// recorded on the document rather than propagated.
type PACClient interface {
	Sign(ctx context.Context, req SignRequest) (*SignResult, error)
	Cancel(ctx context.Context, req CancelRequest) error
}
