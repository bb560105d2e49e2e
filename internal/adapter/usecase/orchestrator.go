package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/normalize"
	"adpilot/internal/core/port"
	"adpilot/internal/observability"
)

// Orchestrator routes every campaign operation through the integrators
// registered for the platform, falling back to the direct connector. It
// implements port.Orchestrator.
type Orchestrator struct {
	registry  port.SourceRegistry
	store     port.MetricsStore
	campaigns port.CampaignRepository
	metrics   *observability.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// OrchestratorOption customises an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithOrchestratorMetrics records fallback attempts.
func WithOrchestratorMetrics(m *observability.Metrics) OrchestratorOption {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithOrchestratorClock replaces time.Now.
func WithOrchestratorClock(now func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator creates the middleware.
func NewOrchestrator(registry port.SourceRegistry, store port.MetricsStore, campaigns port.CampaignRepository, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		registry:  registry,
		store:     store,
		campaigns: campaigns,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type source struct {
	name string
	cap  port.Capability
}

// candidates lists the integrators addressing p followed by its connector.
func (o *Orchestrator) candidates(p domain.Platform) []source {
	var out []source
	for _, i := range o.registry.Integrators(p) {
		out = append(out, source{name: i.Name(), cap: i})
	}
	if c, ok := o.registry.Connector(p); ok {
		out = append(out, source{name: c.Name(), cap: c})
	}
	return out
}

// walk invokes call on each candidate until one succeeds. NotSupported
// skips a candidate; every other failure is recorded and the walk moves on.
func (o *Orchestrator) walk(ctx context.Context, op domain.Operation, p domain.Platform, call func(context.Context, port.Capability) error) (port.Result, error) {
	var res port.Result
	for _, s := range o.candidates(p) {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%s on %s: %w", op, p, err)
		}

		err := call(ctx, s.cap)
		a := domain.Attempt{Source: s.name, Outcome: domain.AttemptSucceeded, Err: err}
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrNotSupported):
			a.Outcome = domain.AttemptSkipped
		default:
			a.Outcome = domain.AttemptFailed
		}
		res.Attempts = append(res.Attempts, a)
		o.metrics.ObserveAttempt(s.name, string(op), string(a.Outcome))

		if err == nil {
			res.Source = s.name
			return res, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, fmt.Errorf("%s on %s: %w", op, p, err)
		}
		if a.Outcome == domain.AttemptFailed {
			o.logger.Warn("source failed, trying next",
				slog.String("op", string(op)),
				slog.String("platform", string(p)),
				slog.String("source", s.name),
				slog.Any("err", err),
			)
		}
	}

	o.metrics.ObserveExhausted(string(op), string(p))
	return res, &domain.AllSourcesExhaustedError{Op: op, Platform: p, Attempts: res.Attempts}
}

// CreateCampaign creates the campaign through the first capable source and
// records it. New campaigns start paused and marked for the engine to
// activate once it allocates budget.
func (o *Orchestrator) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, port.Result, error) {
	if !req.Platform.Valid() {
		return nil, port.Result{}, fmt.Errorf("%w: unknown platform %q", domain.ErrValidation, req.Platform)
	}
	if req.SKUID == "" || req.AccountID == "" || req.Spec.Name == "" || req.Spec.Budget <= 0 {
		return nil, port.Result{}, fmt.Errorf("%w: sku, account, name and a positive budget are required", domain.ErrValidation)
	}

	target := domain.Target{Platform: req.Platform, AccountID: req.AccountID}
	var externalID string
	res, err := o.walk(ctx, domain.OpCreateCampaign, req.Platform, func(ctx context.Context, c port.Capability) error {
		id, err := c.CreateCampaign(ctx, target, req.Spec)
		externalID = id
		return err
	})
	if err != nil {
		return nil, res, err
	}

	now := o.now()
	campaign := domain.Campaign{
		ID:         uuid.NewString(),
		SKUID:      req.SKUID,
		Platform:   req.Platform,
		AccountID:  req.AccountID,
		ExternalID: externalID,
		Name:       req.Spec.Name,
		Budget:     req.Spec.Budget,
		Status:     domain.CampaignPaused,
		AutoPaused: true,
		Source:     res.Source,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := o.campaigns.Create(ctx, campaign); err != nil {
		return nil, res, fmt.Errorf("record campaign created by %s as %s: %w", res.Source, externalID, err)
	}
	return &campaign, res, nil
}

// UpdateBudget sets the budget of c and records it once confirmed.
func (o *Orchestrator) UpdateBudget(ctx context.Context, c domain.Campaign, budget int64) (port.Result, error) {
	if budget <= 0 {
		return port.Result{}, fmt.Errorf("%w: budget must be positive", domain.ErrValidation)
	}
	res, err := o.walk(ctx, domain.OpUpdateBudget, c.Platform, func(ctx context.Context, cp port.Capability) error {
		return cp.UpdateBudget(ctx, c.Target(), budget)
	})
	if err != nil {
		return res, err
	}
	if err := o.campaigns.UpdateBudget(ctx, c.ID, budget, o.now()); err != nil {
		return res, fmt.Errorf("record budget of campaign %s: %w", c.ID, err)
	}
	return res, nil
}

// Pause pauses c. auto marks pauses issued by the decision engine.
func (o *Orchestrator) Pause(ctx context.Context, c domain.Campaign, auto bool) (port.Result, error) {
	res, err := o.walk(ctx, domain.OpPause, c.Platform, func(ctx context.Context, cp port.Capability) error {
		return cp.Pause(ctx, c.Target())
	})
	if err != nil {
		return res, err
	}
	if err := o.campaigns.UpdateStatus(ctx, c.ID, domain.CampaignPaused, auto, o.now()); err != nil {
		return res, fmt.Errorf("record pause of campaign %s: %w", c.ID, err)
	}
	return res, nil
}

// Activate resumes c.
func (o *Orchestrator) Activate(ctx context.Context, c domain.Campaign) (port.Result, error) {
	res, err := o.walk(ctx, domain.OpActivate, c.Platform, func(ctx context.Context, cp port.Capability) error {
		return cp.Activate(ctx, c.Target())
	})
	if err != nil {
		return res, err
	}
	if err := o.campaigns.UpdateStatus(ctx, c.ID, domain.CampaignActive, false, o.now()); err != nil {
		return res, fmt.Errorf("record activation of campaign %s: %w", c.ID, err)
	}
	return res, nil
}

// FetchPerformance returns the metric of the first source able to report
// it. Both the raw payload and the normalized record are persisted.
func (o *Orchestrator) FetchPerformance(ctx context.Context, c domain.Campaign, w domain.Window) (port.PerformanceResult, error) {
	if !w.Valid() {
		return port.PerformanceResult{}, fmt.Errorf("%w: invalid window", domain.ErrValidation)
	}
	var payload json.RawMessage
	res, err := o.walk(ctx, domain.OpGetPerformance, c.Platform, func(ctx context.Context, cp port.Capability) error {
		raw, err := cp.GetPerformance(ctx, c.Target(), w)
		payload = raw
		return err
	})
	out := port.PerformanceResult{Result: res}
	if err != nil {
		return out, err
	}

	m, err := o.record(ctx, c, w, res.Source, payload)
	if err != nil {
		return out, err
	}
	out.Metric = m
	out.Sources = []string{res.Source}
	return out, nil
}

// AggregatePerformance asks every candidate source and merges what they
// report. Each source's raw and normalized records are persisted.
func (o *Orchestrator) AggregatePerformance(ctx context.Context, c domain.Campaign, w domain.Window) (port.PerformanceResult, error) {
	if !w.Valid() {
		return port.PerformanceResult{}, fmt.Errorf("%w: invalid window", domain.ErrValidation)
	}
	var (
		out     port.PerformanceResult
		records []domain.NormalizedMetric
	)
	for _, s := range o.candidates(c.Platform) {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("%s on %s: %w", domain.OpGetPerformance, c.Platform, err)
		}

		a := domain.Attempt{Source: s.name, Outcome: domain.AttemptSucceeded}
		raw, err := s.cap.GetPerformance(ctx, c.Target(), w)
		if err == nil {
			var m domain.NormalizedMetric
			if m, err = o.record(ctx, c, w, s.name, raw); err == nil {
				records = append(records, m)
				out.Sources = append(out.Sources, s.name)
			}
		}
		if err != nil {
			a.Err = err
			a.Outcome = domain.AttemptFailed
			if errors.Is(err, domain.ErrNotSupported) {
				a.Outcome = domain.AttemptSkipped
			}
		}
		out.Attempts = append(out.Attempts, a)
		o.metrics.ObserveAttempt(s.name, string(domain.OpGetPerformance), string(a.Outcome))
	}

	if len(records) == 0 {
		o.metrics.ObserveExhausted(string(domain.OpGetPerformance), string(c.Platform))
		return out, &domain.AllSourcesExhaustedError{Op: domain.OpGetPerformance, Platform: c.Platform, Attempts: out.Attempts}
	}
	merged, err := normalize.Merge(records)
	if err != nil {
		return out, err
	}
	out.Metric = merged
	out.Source = merged.Source
	return out, nil
}

// record persists the raw payload, normalizes it and persists the result.
// The raw snapshot is kept even when the payload cannot be normalized.
func (o *Orchestrator) record(ctx context.Context, c domain.Campaign, w domain.Window, source string, payload json.RawMessage) (domain.NormalizedMetric, error) {
	snap := domain.RawMetricSnapshot{
		ID:         uuid.NewString(),
		Source:     source,
		SKUID:      c.SKUID,
		CampaignID: c.ID,
		Platform:   c.Platform,
		AccountID:  c.AccountID,
		Window:     w,
		FetchedAt:  o.now(),
		Payload:    payload,
	}
	if err := o.store.AppendRaw(ctx, snap); err != nil {
		return domain.NormalizedMetric{}, fmt.Errorf("store raw metrics from %s: %w", source, err)
	}

	m, err := normalize.Normalize(snap)
	if err != nil {
		return domain.NormalizedMetric{}, err
	}
	m.ID = uuid.NewString()
	if err := o.store.AppendNormalized(ctx, m); err != nil {
		return domain.NormalizedMetric{}, fmt.Errorf("store normalized metrics from %s: %w", source, err)
	}
	return m, nil
}

var _ port.Orchestrator = (*Orchestrator)(nil)
