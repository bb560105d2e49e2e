package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/intelligence"
	"adpilot/internal/core/normalize"
	"adpilot/internal/core/port"
	"adpilot/internal/observability"
)

// EngineDeps groups the ports used by the decision engine. Lock and
// Publisher are optional.
type EngineDeps struct {
	SKUs         port.SKURepository
	Campaigns    port.CampaignRepository
	Decisions    port.DecisionRepository
	Metrics      port.MetricsStore
	Orchestrator port.Orchestrator
	Lock         port.CycleLock
	Publisher    port.DecisionPublisher
}

// Engine runs the hourly intelligence cycle. It implements port.Engine.
type Engine struct {
	deps     EngineDeps
	settings intelligence.Settings
	workers  int
	deadline time.Duration
	metrics  *observability.Metrics
	logger   *slog.Logger
	now      func() time.Time
	allocate func(intelligence.AllocationInput, intelligence.Settings) (intelligence.Allocation, error)
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithWorkers bounds the number of SKUs evaluated concurrently.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithCycleDeadline bounds the duration of one cycle. SKUs still running
// at the deadline are abandoned without a decision.
func WithCycleDeadline(d time.Duration) EngineOption {
	return func(e *Engine) { e.deadline = d }
}

func WithEngineMetrics(m *observability.Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

func WithEngineClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a decision engine with the given global settings.
func NewEngine(deps EngineDeps, settings intelligence.Settings, logger *slog.Logger, opts ...EngineOption) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		deps:     deps,
		settings: settings,
		workers:  4,
		logger:   logger,
		now:      time.Now,
		allocate: intelligence.Allocate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// RunCycle evaluates every active SKU for the hour containing asOf. SKUs
// are independent: one failing SKU never stops the others. A SKU that
// already has a decision for the hour is reported as a duplicate and left
// alone.
func (e *Engine) RunCycle(ctx context.Context, asOf time.Time) (port.CycleReport, error) {
	asOf = asOf.UTC()
	hour := asOf.Truncate(time.Hour)
	report := port.CycleReport{AsOf: asOf, CycleHour: hour}

	start := time.Now()
	defer func() { e.metrics.ObserveCycle(time.Since(start)) }()

	if e.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.deadline)
		defer cancel()
	}

	skus, err := e.deps.SKUs.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("list active skus: %w", err)
	}

	outcomes := make([]port.SKUOutcome, len(skus))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, sku := range skus {
		g.Go(func() error {
			outcomes[i] = e.runSKU(ctx, sku, asOf, hour)
			return nil
		})
	}
	_ = g.Wait()
	report.Outcomes = outcomes

	e.logger.Info("cycle finished",
		slog.Time("cycle_hour", hour),
		slog.Int("skus", len(skus)),
		slog.Int("decided", report.Count(port.SKUDecided)),
		slog.Int("duplicate", report.Count(port.SKUDuplicate)),
		slog.Int("skipped", report.Count(port.SKUSkipped)),
		slog.Int("failed", report.Count(port.SKUFailed)),
		slog.Int("abandoned", report.Count(port.SKUAbandoned)),
	)
	return report, nil
}

// skuError carries the outcome status of a SKU that ended without a
// decision. keepClaim is set once campaign operations were issued: the hour
// must not be replayed.
type skuError struct {
	status    port.SKUOutcomeStatus
	err       error
	keepClaim bool
}

func (e *skuError) Error() string { return e.err.Error() }
func (e *skuError) Unwrap() error { return e.err }

func skip(err error) error    { return &skuError{status: port.SKUSkipped, err: err} }
func fail(err error) error    { return &skuError{status: port.SKUFailed, err: err} }
func abandon(err error) error { return &skuError{status: port.SKUAbandoned, err: err} }

func keepClaim(err error) error {
	var se *skuError
	if errors.As(err, &se) {
		se.keepClaim = true
		return err
	}
	return &skuError{status: port.SKUFailed, err: err, keepClaim: true}
}

func (e *Engine) runSKU(ctx context.Context, sku domain.SKU, asOf, hour time.Time) port.SKUOutcome {
	logger := e.logger.With(slog.String("sku_id", sku.ID), slog.Time("cycle_hour", hour))
	out := port.SKUOutcome{SKUID: sku.ID}
	defer func() { e.metrics.ObserveOutcome(string(out.Status)) }()

	if ctx.Err() != nil {
		out.Status, out.Reason = port.SKUAbandoned, ctx.Err().Error()
		return out
	}

	done, err := e.deps.Decisions.Exists(ctx, sku.ID, hour)
	if err != nil {
		logger.Error("check decision log", slog.Any("err", err))
		out.Status, out.Reason = port.SKUFailed, err.Error()
		return out
	}
	if done {
		out.Status, out.Reason = port.SKUDuplicate, "decision already recorded"
		return out
	}
	if e.deps.Lock != nil {
		ok, err := e.deps.Lock.TryAcquire(ctx, sku.ID, hour)
		if err != nil {
			logger.Error("claim cycle", slog.Any("err", err))
			out.Status, out.Reason = port.SKUFailed, err.Error()
			return out
		}
		if !ok {
			out.Status, out.Reason = port.SKUDuplicate, "cycle claimed elsewhere"
			return out
		}
	}

	d, err := e.decide(ctx, sku, asOf, hour, logger)
	if err == nil {
		out.Status, out.Decision = port.SKUDecided, d
		return out
	}

	out.Status, out.Reason = port.SKUFailed, err.Error()
	var se *skuError
	if errors.As(err, &se) {
		out.Status = se.status
	}
	switch {
	case e.deps.Lock == nil:
	case se != nil && se.keepClaim:
		logger.Warn("cycle claim kept after issued operations")
	default:
		if rerr := e.deps.Lock.Release(context.WithoutCancel(ctx), sku.ID, hour); rerr != nil {
			logger.Warn("release cycle claim", slog.Any("err", rerr))
		}
	}
	switch {
	case errors.Is(err, port.ErrDuplicate):
		out.Status = port.SKUDuplicate
	case out.Status == port.SKUSkipped:
		logger.Warn("sku skipped", slog.Any("err", err))
	case out.Status == port.SKUAbandoned:
		logger.Warn("sku abandoned", slog.Any("err", err))
	default:
		logger.Error("sku failed", slog.Any("err", err))
	}
	return out
}

type plannedOp struct {
	campaign  domain.Campaign
	op        domain.Operation
	newBudget int64
}

// decide evaluates one SKU, issues its campaign operations and records the
// decision.
func (e *Engine) decide(ctx context.Context, sku domain.SKU, asOf, hour time.Time, logger *slog.Logger) (*domain.IntelligenceDecision, error) {
	s := e.settings.WithOverrides(sku.Overrides)
	if err := s.Validate(); err != nil {
		return nil, skip(fmt.Errorf("sku settings: %w", err))
	}
	if sku.TotalBudget <= 0 {
		return nil, skip(fmt.Errorf("%w: sku has no budget", domain.ErrValidation))
	}

	all, err := e.deps.Campaigns.ListBySKU(ctx, sku.ID)
	if err != nil {
		return nil, fail(fmt.Errorf("list campaigns: %w", err))
	}
	var managed []domain.Campaign
	for _, c := range all {
		if c.Managed() {
			managed = append(managed, c)
		}
	}
	if len(managed) == 0 {
		return nil, skip(errors.New("no managed campaigns"))
	}

	obs, err := e.observe(ctx, sku, managed, asOf, hour, s)
	if err != nil {
		if ctx.Err() != nil {
			return nil, abandon(err)
		}
		if errors.Is(err, domain.ErrStaleMetrics) {
			return nil, skip(err)
		}
		return nil, fail(err)
	}

	state := sku.ModeState
	if state.Mode == "" {
		state = domain.ModeState{Mode: domain.ModeExplore, EnteredAt: sku.CreatedAt}
		if state.EnteredAt.IsZero() {
			state.EnteredAt = asOf
		}
	}
	tr := intelligence.Advance(intelligence.ModeInput{
		State:       state,
		AsOf:        asOf,
		TotalBudget: sku.TotalBudget,
		Impressions: obs.total.Impressions,
		Confidence:  obs.confidence,
		ROAS:        obs.total.ROAS,
	}, s)

	runway, err := e.forecast(ctx, sku, obs, asOf, s)
	if err != nil {
		if ctx.Err() != nil {
			return nil, abandon(err)
		}
		return nil, fail(err)
	}

	rationale := domain.Rationale{
		Impressions:         obs.total.Impressions,
		ImpressionThreshold: tr.Threshold,
		Confidence:          obs.confidence,
		ROAS:                obs.total.ROAS,
		BurnRatePerDay:      runway.BurnPerDay,
		RemainingBudget:     runway.Remaining,
		Pacing:              string(runway.Pacing),
		Transition:          tr.Reason,
	}
	if runway.Finite() {
		days := math.Round(runway.DaysRemaining*100) / 100
		rationale.ForecastDaysRemaining = &days
	}
	if runway.Warning && !runway.Breach {
		rationale.Warnings = append(rationale.Warnings, fmt.Sprintf("budget depletes in %.1f days", runway.DaysRemaining))
	}

	var (
		ops    []plannedOp
		action domain.Action
	)
	if runway.Breach {
		action = domain.ActionPause
		for _, c := range managed {
			if c.Status == domain.CampaignActive {
				ops = append(ops, plannedOp{campaign: c, op: domain.OpPause})
			}
		}
		rationale.Warnings = append(rationale.Warnings, fmt.Sprintf("runway below %.1f days", s.MinRunwayDays))
		e.metrics.ObserveRunwayPause()
	} else {
		inputs := make([]intelligence.CampaignInput, 0, len(managed))
		for _, c := range managed {
			agg := obs.perCampaign[c.ID]
			inputs = append(inputs, intelligence.CampaignInput{
				ID:            c.ID,
				CurrentBudget: c.Budget,
				Impressions:   agg.Impressions,
				ROAS:          agg.ROAS,
			})
		}
		alloc, err := e.allocate(intelligence.AllocationInput{
			SKUID:       sku.ID,
			TotalBudget: sku.TotalBudget,
			Mode:        tr.To,
			Campaigns:   inputs,
		}, s)
		if err != nil {
			if errors.Is(err, domain.ErrAllocationInvariant) {
				e.metrics.ObserveInvariantFailure()
				logger.Error("allocation invariant violated", slog.Bool("logic_defect", true), slog.Any("err", err))
				return nil, fail(err)
			}
			return nil, skip(err)
		}
		rationale.ExploreReserve = alloc.ExploreReserve
		rationale.Excluded = alloc.Excluded
		ops = plan(managed, alloc, s.NoOpTolerancePercent)
		action = actionFor(ops)
	}

	settle := func(err error) error {
		if len(ops) > 0 {
			return keepClaim(err)
		}
		return err
	}

	deltas := e.execute(ctx, ops, &rationale, logger)
	if ctx.Err() != nil {
		return nil, settle(abandon(fmt.Errorf("cycle deadline reached: %w", ctx.Err())))
	}

	d := domain.IntelligenceDecision{
		ID:           uuid.NewString(),
		SKUID:        sku.ID,
		ClientID:     sku.ClientID,
		CycleHour:    hour,
		Timestamp:    e.now().UTC(),
		Mode:         tr.To,
		PreviousMode: tr.From,
		Action:       action,
		Deltas:       deltas,
		Rationale:    rationale,
	}
	if err := e.deps.Decisions.Append(ctx, d); err != nil {
		return nil, settle(fail(fmt.Errorf("append decision: %w", err)))
	}

	// Mode state is stored only for recorded decisions.
	if err := e.deps.SKUs.UpdateMode(ctx, sku.ID, tr.Next); err != nil {
		logger.Error("store mode state", slog.Any("err", err))
	}
	if tr.Changed() {
		e.metrics.ObserveTransition(string(tr.From), string(tr.To))
		logger.Info("mode changed", slog.String("from", string(tr.From)), slog.String("to", string(tr.To)), slog.String("reason", tr.Reason))
	}
	e.metrics.ObserveDecision(string(d.Action), string(d.Mode))
	logger.Info("decision recorded", slog.String("action", string(d.Action)), slog.String("mode", string(d.Mode)), slog.Int("deltas", len(d.Deltas)))

	if e.deps.Publisher != nil {
		if err := e.deps.Publisher.PublishDecision(ctx, d); err != nil {
			e.metrics.ObservePublishError()
			logger.Warn("publish decision", slog.Any("err", err))
		}
	}
	return &d, nil
}

// plan turns an allocation into campaign operations. Excluded campaigns
// that are running get paused; auto-paused campaigns that received budget
// get activated before their budget is set.
func plan(managed []domain.Campaign, alloc intelligence.Allocation, tolerance float64) []plannedOp {
	var ops []plannedOp
	for _, c := range managed {
		budget, funded := alloc.Budgets[c.ID]
		if !funded {
			if c.Status == domain.CampaignActive {
				ops = append(ops, plannedOp{campaign: c, op: domain.OpPause})
			}
			continue
		}
		if c.Status != domain.CampaignActive {
			ops = append(ops, plannedOp{campaign: c, op: domain.OpActivate})
			if budget != c.Budget {
				ops = append(ops, plannedOp{campaign: c, op: domain.OpUpdateBudget, newBudget: budget})
			}
			continue
		}
		if intelligence.Material(c.Budget, budget, tolerance) {
			ops = append(ops, plannedOp{campaign: c, op: domain.OpUpdateBudget, newBudget: budget})
		}
	}
	return ops
}

func actionFor(ops []plannedOp) domain.Action {
	if len(ops) == 0 {
		return domain.ActionNoOp
	}
	if slices.ContainsFunc(ops, func(o plannedOp) bool { return o.op == domain.OpActivate }) {
		return domain.ActionActivate
	}
	return domain.ActionReallocate
}

// execute issues the operations one by one. A failed operation is recorded
// and does not stop the others, except that a campaign whose activation
// failed keeps its budget.
func (e *Engine) execute(ctx context.Context, ops []plannedOp, rationale *domain.Rationale, logger *slog.Logger) []domain.CampaignDelta {
	deltas := make([]domain.CampaignDelta, 0, len(ops))
	failed := make(map[string]bool)
	for _, op := range ops {
		if ctx.Err() != nil {
			break
		}
		c := op.campaign
		delta := domain.CampaignDelta{
			CampaignID: c.ID,
			Operation:  op.op,
			OldBudget:  c.Budget,
			NewBudget:  c.Budget,
		}
		if op.op == domain.OpUpdateBudget {
			delta.NewBudget = op.newBudget
			delta.Delta = op.newBudget - c.Budget
		}
		if failed[c.ID] {
			delta.Error = "not attempted: earlier operation failed"
			deltas = append(deltas, delta)
			continue
		}

		var (
			res port.Result
			err error
		)
		switch op.op {
		case domain.OpPause:
			res, err = e.deps.Orchestrator.Pause(ctx, c, true)
		case domain.OpActivate:
			res, err = e.deps.Orchestrator.Activate(ctx, c)
		case domain.OpUpdateBudget:
			res, err = e.deps.Orchestrator.UpdateBudget(ctx, c, op.newBudget)
		}
		delta.Source = res.Source
		if err != nil {
			failed[c.ID] = true
			delta.Error = err.Error()
			rationale.Failures = append(rationale.Failures, fmt.Sprintf("%s %s: %v", op.op, c.ID, err))
			logger.Warn("campaign operation failed", slog.String("campaign_id", c.ID), slog.String("op", string(op.op)), slog.Any("err", err))
		} else {
			delta.Applied = true
		}
		deltas = append(deltas, delta)
	}
	return deltas
}

type observation struct {
	perCampaign map[string]domain.Aggregate
	total       domain.Aggregate
	records     []domain.NormalizedMetric
	confidence  float64
}

// observe makes sure every managed campaign has fresh metrics, refreshing
// stale ones for the last closed hour, and summarises the observation
// window.
func (e *Engine) observe(ctx context.Context, sku domain.SKU, campaigns []domain.Campaign, asOf, hour time.Time, s intelligence.Settings) (observation, error) {
	window := domain.Window{Start: asOf.Add(-s.ObservationWindow), End: asOf}
	refresh := domain.Window{Start: hour.Add(-time.Hour), End: hour}

	for _, c := range campaigns {
		recs, err := e.deps.Metrics.QueryWindow(ctx, domain.MetricScope{CampaignID: c.ID}, window)
		if err != nil {
			return observation{}, fmt.Errorf("query metrics of campaign %s: %w", c.ID, err)
		}
		if fresh(recs, asOf, s.StaleAfter) {
			continue
		}
		if _, err := e.deps.Orchestrator.FetchPerformance(ctx, c, refresh); err != nil {
			if ctx.Err() != nil {
				return observation{}, ctx.Err()
			}
			return observation{}, fmt.Errorf("%w: campaign %s: %v", domain.ErrStaleMetrics, c.ID, err)
		}
	}

	recs, err := e.deps.Metrics.QueryWindow(ctx, domain.MetricScope{SKUID: sku.ID}, window)
	if err != nil {
		return observation{}, fmt.Errorf("query metrics of sku: %w", err)
	}
	recs = normalize.Dedupe(recs)

	obs := observation{perCampaign: make(map[string]domain.Aggregate), records: recs}
	type hourly struct{ spend, revenue float64 }
	byHour := make(map[int64]*hourly)
	for _, r := range recs {
		agg := obs.perCampaign[r.CampaignID]
		agg.Add(r)
		obs.perCampaign[r.CampaignID] = agg
		obs.total.Add(r)

		k := r.Window.Start.Unix()
		if byHour[k] == nil {
			byHour[k] = &hourly{}
		}
		byHour[k].spend += r.Spend
		byHour[k].revenue += r.Revenue
	}
	for id, agg := range obs.perCampaign {
		agg.Derive()
		obs.perCampaign[id] = agg
	}
	obs.total.Derive()

	keys := make([]int64, 0, len(byHour))
	for k := range byHour {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	series := make([]float64, 0, len(keys))
	for _, k := range keys {
		if h := byHour[k]; h.spend > 0 {
			series = append(series, h.revenue/h.spend)
		}
	}
	obs.confidence = intelligence.Confidence(series, s.MinDataPoints)
	return obs, nil
}

func fresh(recs []domain.NormalizedMetric, asOf time.Time, staleAfter time.Duration) bool {
	cutoff := asOf.Add(-staleAfter)
	for _, r := range recs {
		if !r.Window.End.Before(cutoff) {
			return true
		}
	}
	return false
}

// forecast computes the SKU's runway from its lifetime spend and the burn
// rate over the burn window.
func (e *Engine) forecast(ctx context.Context, sku domain.SKU, obs observation, asOf time.Time, s intelligence.Settings) (intelligence.Runway, error) {
	since := sku.CreatedAt
	if since.IsZero() {
		since = asOf.AddDate(-1, 0, 0)
	}
	lifetime, err := e.deps.Metrics.Aggregate(ctx, domain.MetricScope{SKUID: sku.ID}, domain.Window{Start: since, End: asOf})
	if err != nil {
		return intelligence.Runway{}, fmt.Errorf("aggregate lifetime spend: %w", err)
	}

	burnStart := asOf.Add(-s.BurnWindow)
	if since.After(burnStart) {
		burnStart = since
	}
	burnWindow := domain.Window{Start: burnStart, End: asOf}
	var spend float64
	for _, r := range obs.records {
		if burnWindow.Contains(r.Window) {
			spend += r.Spend
		}
	}

	daysLeft := float64(s.FlightDays)
	if !sku.CreatedAt.IsZero() {
		end := sku.CreatedAt.Add(time.Duration(s.FlightDays) * 24 * time.Hour)
		daysLeft = end.Sub(asOf).Hours() / 24
	}

	return intelligence.Forecast(intelligence.RunwayInput{
		Spend:     domain.ToCents(spend),
		Elapsed:   burnWindow.Duration(),
		Remaining: sku.TotalBudget - domain.ToCents(lifetime.Spend),
		DaysLeft:  daysLeft,
	}, s), nil
}

var _ port.Engine = (*Engine)(nil)
