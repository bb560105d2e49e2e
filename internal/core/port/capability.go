package port

import (
	"context"
	"encoding/json"

	"adpilot/internal/core/domain"
)

// Capability is the operation set shared by direct platform connectors and
// third-party integrators. Implementations classify every failure with one
// of the domain error kinds and retry rate-limited or transient failures on
// their own before returning.
type Capability interface {
	// CreateCampaign creates a campaign and returns its external id.
	CreateCampaign(ctx context.Context, t domain.Target, spec domain.CampaignSpec) (string, error)
	// UpdateBudget sets the campaign budget in integer units.
	UpdateBudget(ctx context.Context, t domain.Target, budget int64) error
	Pause(ctx context.Context, t domain.Target) error
	Activate(ctx context.Context, t domain.Target) error
	// GetPerformance returns the vendor's raw performance payload.
	GetPerformance(ctx context.Context, t domain.Target, w domain.Window) (json.RawMessage, error)
}

// Connector talks directly to one ad platform.
type Connector interface {
	Capability
	Name() string
	Platform() domain.Platform
}

// Integrator is a third-party service proxying operations to one or more
// platforms.
type Integrator interface {
	Capability
	Name() string
	Addresses(p domain.Platform) bool
}

// SourceRegistry resolves the candidate sources for a platform.
type SourceRegistry interface {
	// Integrators returns the integrators addressing p in priority order.
	Integrators(p domain.Platform) []Integrator
	Connector(p domain.Platform) (Connector, bool)
}
