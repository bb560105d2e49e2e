package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/intelligence"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
	"adpilot/internal/observability"
)

var cycleAsOf = hour0.Add(30 * time.Minute)

type engineFixture struct {
	engine    *Engine
	skus      *memory.SKUStore
	campaigns *memory.CampaignStore
	decisions *memory.DecisionStore
	metrics   *memory.MetricsStore
	lock      *memory.CycleLock
	orch      *mocks.MockOrchestrator
	publisher *mocks.MockDecisionPublisher
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		skus:      memory.NewSKUStore(),
		campaigns: memory.NewCampaignStore(),
		decisions: memory.NewDecisionStore(),
		metrics:   memory.NewMetricsStore(),
		lock:      memory.NewCycleLock(),
		orch:      mocks.NewMockOrchestrator(t),
		publisher: mocks.NewMockDecisionPublisher(t),
	}
	f.build(t, f.decisions)
	return f
}

// build (re)creates the engine over the fixture stores with the given
// decision log.
func (f *engineFixture) build(t *testing.T, decisions port.DecisionRepository) {
	t.Helper()
	engine, err := NewEngine(EngineDeps{
		SKUs:         f.skus,
		Campaigns:    f.campaigns,
		Decisions:    decisions,
		Metrics:      f.metrics,
		Orchestrator: f.orch,
		Lock:         f.lock,
		Publisher:    f.publisher,
	}, intelligence.DefaultSettings(), discardLogger(),
		WithWorkers(2),
		WithEngineClock(func() time.Time { return cycleAsOf }),
	)
	require.NoError(t, err)
	f.engine = engine
}

// flakyDecisions fails the first failures appends.
type flakyDecisions struct {
	*memory.DecisionStore
	failures int
}

func (d *flakyDecisions) Append(ctx context.Context, dec domain.IntelligenceDecision) error {
	if d.failures > 0 {
		d.failures--
		return errors.New("connection reset by peer")
	}
	return d.DecisionStore.Append(ctx, dec)
}

func (f *engineFixture) addSKU(id string, total int64, age time.Duration) {
	created := cycleAsOf.Add(-age)
	f.skus.Put(domain.SKU{
		ID:          id,
		ClientID:    "client-1",
		Name:        id,
		TotalBudget: total,
		Status:      domain.SKUStatusActive,
		ModeState:   domain.ModeState{Mode: domain.ModeExplore, EnteredAt: created},
		CreatedAt:   created,
	})
}

func (f *engineFixture) addCampaign(t *testing.T, skuID, id string, budget int64, status domain.CampaignStatus, autoPaused bool) {
	t.Helper()
	require.NoError(t, f.campaigns.Create(context.Background(), domain.Campaign{
		ID:         id,
		SKUID:      skuID,
		Platform:   domain.PlatformMetaAds,
		AccountID:  "act-1",
		ExternalID: "ext-" + id,
		Budget:     budget,
		Status:     status,
		AutoPaused: autoPaused,
	}))
}

func (f *engineFixture) seed(t *testing.T, skuID, campaignID string, w domain.Window, spend, revenue float64, impressions int64) {
	t.Helper()
	m := domain.NormalizedMetric{
		ID:          fmt.Sprintf("%s-%d", campaignID, w.Start.Unix()),
		Source:      "meta_ads",
		SKUID:       skuID,
		CampaignID:  campaignID,
		Platform:    domain.PlatformMetaAds,
		AccountID:   "act-1",
		Window:      w,
		FetchedAt:   w.End,
		Spend:       spend,
		Revenue:     revenue,
		Impressions: impressions,
		DataQuality: 0.8,
	}
	m.Derive()
	require.NoError(t, f.metrics.AppendNormalized(context.Background(), m))
}

func campaignID(id string) any {
	return mock.MatchedBy(func(c domain.Campaign) bool { return c.ID == id })
}

func skuDecision(id string) any {
	return mock.MatchedBy(func(d domain.IntelligenceDecision) bool { return d.SKUID == id })
}

var applied = port.Result{Source: "meta_ads"}

func TestRunCycleReallocatesInExplore(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-1", 100000, 48*time.Hour)
	for _, id := range []string{"c1", "c2", "c3"} {
		f.addCampaign(t, "sku-1", id, 30000, domain.CampaignActive, false)
	}
	f.seed(t, "sku-1", "c1", lastHour, 10, 30, 1200)
	f.seed(t, "sku-1", "c2", lastHour, 10, 10, 300)
	f.seed(t, "sku-1", "c3", lastHour, 1, 0, 50)

	f.orch.EXPECT().UpdateBudget(mock.Anything, campaignID("c1"), int64(50000)).Return(applied, nil).Once()
	f.orch.EXPECT().UpdateBudget(mock.Anything, campaignID("c3"), int64(20000)).Return(applied, nil).Once()
	f.publisher.EXPECT().PublishDecision(mock.Anything, skuDecision("sku-1")).Return(nil).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	assert.Equal(t, hour0, report.CycleHour)
	require.Len(t, report.Outcomes, 1)
	require.Equal(t, port.SKUDecided, report.Outcomes[0].Status)

	d := report.Outcomes[0].Decision
	assert.Equal(t, domain.ModeExplore, d.Mode)
	assert.Equal(t, domain.ActionReallocate, d.Action)
	assert.Equal(t, hour0, d.CycleHour)
	require.Len(t, d.Deltas, 2)
	assert.Equal(t, "c1", d.Deltas[0].CampaignID)
	assert.Equal(t, int64(20000), d.Deltas[0].Delta)
	assert.True(t, d.Deltas[0].Applied)
	assert.Equal(t, "meta_ads", d.Deltas[0].Source)
	assert.Equal(t, "c3", d.Deltas[1].CampaignID)
	assert.Equal(t, int64(-10000), d.Deltas[1].Delta)

	assert.Equal(t, int64(1550), d.Rationale.Impressions)
	assert.Equal(t, int64(20000), d.Rationale.ExploreReserve)
	assert.Equal(t, int64(2100), d.Rationale.BurnRatePerDay)
	assert.Equal(t, int64(97900), d.Rationale.RemainingBudget)
	require.NotNil(t, d.Rationale.ForecastDaysRemaining)

	assert.Len(t, f.decisions.All(), 1)
}

func TestRunCycleIsIdempotentWithinTheHour(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-1", 100000, 48*time.Hour)
	for _, id := range []string{"c1", "c2", "c3"} {
		f.addCampaign(t, "sku-1", id, 30000, domain.CampaignActive, false)
	}
	f.seed(t, "sku-1", "c1", lastHour, 10, 30, 1200)
	f.seed(t, "sku-1", "c2", lastHour, 10, 10, 300)
	f.seed(t, "sku-1", "c3", lastHour, 1, 0, 50)

	f.orch.EXPECT().UpdateBudget(mock.Anything, mock.Anything, mock.Anything).Return(applied, nil).Times(2)
	f.publisher.EXPECT().PublishDecision(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf.Add(20*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(port.SKUDuplicate))
	assert.Equal(t, 0, report.Count(port.SKUDecided))
	assert.Len(t, f.decisions.All(), 1)
}

func TestRunCycleRespectsForeignClaim(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-1", 100000, 48*time.Hour)
	f.addCampaign(t, "sku-1", "c1", 50000, domain.CampaignActive, false)

	ok, err := f.lock.TryAcquire(context.Background(), "sku-1", hour0)
	require.NoError(t, err)
	require.True(t, ok)

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, port.SKUDuplicate, report.Outcomes[0].Status)
	assert.Empty(t, f.decisions.All())
}

// $50 left at $100 a day is half a day of runway.
func TestRunCyclePausesOnRunwayBreach(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-1", 100000, 10*24*time.Hour)
	f.addCampaign(t, "sku-1", "c1", 50000, domain.CampaignActive, false)
	f.addCampaign(t, "sku-1", "c2", 50000, domain.CampaignActive, false)

	created := cycleAsOf.Add(-10 * 24 * time.Hour)
	f.seed(t, "sku-1", "c1", domain.Window{Start: created, End: created.Add(time.Hour)}, 850, 0, 100)
	f.seed(t, "sku-1", "c1", lastHour, 60, 120, 3000)
	f.seed(t, "sku-1", "c2", lastHour, 40, 40, 2000)

	f.orch.EXPECT().Pause(mock.Anything, campaignID("c1"), true).Return(applied, nil).Once()
	f.orch.EXPECT().Pause(mock.Anything, campaignID("c2"), true).Return(applied, nil).Once()
	f.publisher.EXPECT().PublishDecision(mock.Anything, skuDecision("sku-1")).Return(nil).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Equal(t, port.SKUDecided, report.Outcomes[0].Status)

	d := report.Outcomes[0].Decision
	assert.Equal(t, domain.ActionPause, d.Action)
	require.Len(t, d.Deltas, 2)
	for _, delta := range d.Deltas {
		assert.Equal(t, domain.OpPause, delta.Operation)
		assert.True(t, delta.Applied)
	}
	assert.Equal(t, int64(10000), d.Rationale.BurnRatePerDay)
	assert.Equal(t, int64(5000), d.Rationale.RemainingBudget)
	require.NotNil(t, d.Rationale.ForecastDaysRemaining)
	assert.InDelta(t, 0.5, *d.Rationale.ForecastDaysRemaining, 1e-9)
}

func TestRunCycleSkipsSKUWithStaleMetrics(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-a", 100000, 48*time.Hour)
	f.addCampaign(t, "sku-a", "a1", 50000, domain.CampaignActive, false)
	f.addSKU("sku-b", 100000, 48*time.Hour)
	f.addCampaign(t, "sku-b", "b1", 50000, domain.CampaignActive, false)
	f.seed(t, "sku-b", "b1", lastHour, 10, 30, 5000)

	exhausted := &domain.AllSourcesExhaustedError{Op: domain.OpGetPerformance, Platform: domain.PlatformMetaAds}
	f.orch.EXPECT().FetchPerformance(mock.Anything, campaignID("a1"), lastHour).
		Return(port.PerformanceResult{}, exhausted).Times(2)
	f.publisher.EXPECT().PublishDecision(mock.Anything, skuDecision("sku-b")).Return(nil).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, port.SKUSkipped, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Reason, "stale")
	assert.Equal(t, port.SKUDecided, report.Outcomes[1].Status)
	assert.Equal(t, domain.ActionNoOp, report.Outcomes[1].Decision.Action)
	assert.Empty(t, report.Outcomes[1].Decision.Deltas)

	// the skipped SKU is retried later in the same hour
	report, err = f.engine.RunCycle(context.Background(), cycleAsOf.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, port.SKUSkipped, report.Outcomes[0].Status)
	assert.Equal(t, port.SKUDuplicate, report.Outcomes[1].Status)
}

func seedAutoPaused(t *testing.T, f *engineFixture) {
	t.Helper()
	f.addSKU("sku-1", 100000, 48*time.Hour)
	f.addCampaign(t, "sku-1", "c1", 50000, domain.CampaignActive, false)
	f.addCampaign(t, "sku-1", "c2", 10000, domain.CampaignPaused, true)
	f.addCampaign(t, "sku-1", "c3", 40000, domain.CampaignPaused, false)
	f.seed(t, "sku-1", "c1", lastHour, 20, 40, 5000)

	f.orch.EXPECT().FetchPerformance(mock.Anything, campaignID("c2"), lastHour).
		RunAndReturn(func(ctx context.Context, c domain.Campaign, w domain.Window) (port.PerformanceResult, error) {
			f.seed(t, "sku-1", "c2", w, 0, 0, 0)
			return port.PerformanceResult{Result: applied}, nil
		}).Once()
}

func TestRunCycleReactivatesFundedCampaigns(t *testing.T) {
	f := newEngineFixture(t)
	seedAutoPaused(t, f)

	f.orch.EXPECT().Activate(mock.Anything, campaignID("c2")).Return(applied, nil).Once()
	f.orch.EXPECT().UpdateBudget(mock.Anything, campaignID("c2"), int64(20000)).Return(applied, nil).Once()
	f.publisher.EXPECT().PublishDecision(mock.Anything, skuDecision("sku-1")).Return(nil).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Equal(t, port.SKUDecided, report.Outcomes[0].Status)

	d := report.Outcomes[0].Decision
	assert.Equal(t, domain.ActionActivate, d.Action)
	require.Len(t, d.Deltas, 2)
	assert.Equal(t, domain.OpActivate, d.Deltas[0].Operation)
	assert.Equal(t, domain.OpUpdateBudget, d.Deltas[1].Operation)
	assert.Equal(t, int64(20000), d.Deltas[1].NewBudget)
}

func TestRunCycleRecordsFailedOperations(t *testing.T) {
	f := newEngineFixture(t)
	seedAutoPaused(t, f)

	f.orch.EXPECT().Activate(mock.Anything, campaignID("c2")).
		Return(port.Result{}, &domain.AllSourcesExhaustedError{Op: domain.OpActivate, Platform: domain.PlatformMetaAds}).Once()
	f.publisher.EXPECT().PublishDecision(mock.Anything, skuDecision("sku-1")).Return(errors.New("broker down")).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Equal(t, port.SKUDecided, report.Outcomes[0].Status)

	d := report.Outcomes[0].Decision
	require.Len(t, d.Deltas, 2)
	assert.False(t, d.Deltas[0].Applied)
	assert.NotEmpty(t, d.Deltas[0].Error)
	assert.False(t, d.Deltas[1].Applied)
	assert.Len(t, d.Rationale.Failures, 1)
	assert.Len(t, f.decisions.All(), 1, "publish failures do not undo the decision")
}

func TestRunCycleAbandonsOnCancelledContext(t *testing.T) {
	f := newEngineFixture(t)
	f.addSKU("sku-1", 100000, 48*time.Hour)
	f.addCampaign(t, "sku-1", "c1", 50000, domain.CampaignActive, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.engine.RunCycle(ctx, cycleAsOf)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, port.SKUAbandoned, report.Outcomes[0].Status)
	assert.Empty(t, f.decisions.All())
}

func TestNewEngineRejectsInvalidSettings(t *testing.T) {
	s := intelligence.DefaultSettings()
	s.FloorPercent = 80
	_, err := NewEngine(EngineDeps{}, s, discardLogger())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func seedExplore(t *testing.T, f *engineFixture) {
	t.Helper()
	f.addSKU("sku-1", 100000, 48*time.Hour)
	for _, id := range []string{"c1", "c2", "c3"} {
		f.addCampaign(t, "sku-1", id, 30000, domain.CampaignActive, false)
	}
	f.seed(t, "sku-1", "c1", lastHour, 10, 30, 1200)
	f.seed(t, "sku-1", "c2", lastHour, 10, 10, 300)
	f.seed(t, "sku-1", "c3", lastHour, 1, 0, 50)
}

func TestRunCycleDoesNotReplayOperationsAfterFailedAppend(t *testing.T) {
	f := newEngineFixture(t)
	seedExplore(t, f)
	f.build(t, &flakyDecisions{DecisionStore: f.decisions, failures: 1})

	f.orch.EXPECT().UpdateBudget(mock.Anything, campaignID("c1"), int64(50000)).Return(applied, nil).Once()
	f.orch.EXPECT().UpdateBudget(mock.Anything, campaignID("c3"), int64(20000)).Return(applied, nil).Once()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, port.SKUFailed, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Reason, "append decision")

	report, err = f.engine.RunCycle(context.Background(), cycleAsOf.Add(20*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, port.SKUDuplicate, report.Outcomes[0].Status)
	assert.Empty(t, f.decisions.All())
	f.orch.AssertNumberOfCalls(t, "UpdateBudget", 2)
}

func TestRunCycleStoresModeOnlyWithDecision(t *testing.T) {
	f := newEngineFixture(t)
	created := cycleAsOf.Add(-10 * 24 * time.Hour)
	f.skus.Put(domain.SKU{
		ID:          "sku-1",
		ClientID:    "client-1",
		Name:        "sku-1",
		TotalBudget: 100000,
		Status:      domain.SKUStatusActive,
		ModeState:   domain.ModeState{Mode: domain.ModeExploit, EnteredAt: created},
		CreatedAt:   created,
	})
	f.addCampaign(t, "sku-1", "c1", 50000, domain.CampaignActive, false)
	f.seed(t, "sku-1", "c1", lastHour, 10, 10, 2000)
	f.build(t, &flakyDecisions{DecisionStore: f.decisions, failures: 1})

	f.orch.EXPECT().UpdateBudget(mock.Anything, mock.Anything, mock.Anything).Return(applied, nil).Maybe()
	f.publisher.EXPECT().PublishDecision(mock.Anything, mock.Anything).Return(nil).Maybe()

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Equal(t, port.SKUFailed, report.Outcomes[0].Status)

	sku, err := f.skus.Get(context.Background(), "sku-1")
	require.NoError(t, err)
	assert.Equal(t, 0, sku.RegressionStreak)

	report, err = f.engine.RunCycle(context.Background(), cycleAsOf.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, port.SKUDecided, report.Outcomes[0].Status)

	sku, err = f.skus.Get(context.Background(), "sku-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeExploit, sku.Mode)
	assert.Equal(t, 1, sku.RegressionStreak)
}

func TestRunCycleFailsSKUOnAllocationInvariant(t *testing.T) {
	f := newEngineFixture(t)
	seedExplore(t, f)

	m := observability.NewMetrics("test", prometheus.NewRegistry())
	f.engine.metrics = m
	f.engine.allocate = func(in intelligence.AllocationInput, _ intelligence.Settings) (intelligence.Allocation, error) {
		return intelligence.Allocation{}, &domain.AllocationInvariantError{SKUID: in.SKUID, Reason: "allocations exceed total budget"}
	}

	report, err := f.engine.RunCycle(context.Background(), cycleAsOf)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, port.SKUFailed, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Reason, "allocations exceed total budget")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvariantFailures))
	assert.Empty(t, f.decisions.All())

	// nothing was issued, so the hour stays open for a retry
	report, err = f.engine.RunCycle(context.Background(), cycleAsOf.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, port.SKUFailed, report.Outcomes[0].Status)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InvariantFailures))
}
