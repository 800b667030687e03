package gateways

import "context"

// SATClient queries the tax authority for the status of stamped documents.
type SATClient interface {
	// FetchStatuses returns the raw status string for each uuid the authority answered for.
	// Missing uuids are left out of the map.
	FetchStatuses(ctx context.Context, uuids []string) (map[string]string, error)
}
