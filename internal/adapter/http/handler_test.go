package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

var now = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

type fixture struct {
	handler   *Handler
	engine    *mocks.MockEngine
	orch      *mocks.MockOrchestrator
	skus      *memory.SKUStore
	campaigns *memory.CampaignStore
	decisions *memory.DecisionStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		engine:    mocks.NewMockEngine(t),
		orch:      mocks.NewMockOrchestrator(t),
		skus:      memory.NewSKUStore(),
		campaigns: memory.NewCampaignStore(),
		decisions: memory.NewDecisionStore(),
	}
	f.handler = NewHandler(Services{
		Engine:       f.engine,
		Orchestrator: f.orch,
		SKUs:         f.skus,
		Campaigns:    f.campaigns,
		Decisions:    f.decisions,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	}))
	f.handler.now = func() time.Time { return now }

	f.skus.Put(domain.SKU{ID: "sku-1", ClientID: "client-1", TotalBudget: 100000, Status: domain.SKUStatusActive})
	require.NoError(t, f.campaigns.Create(context.Background(), domain.Campaign{
		ID:        "c1",
		SKUID:     "sku-1",
		Platform:  domain.PlatformMetaAds,
		AccountID: "act-1",
		Budget:    5000,
		Status:    domain.CampaignActive,
	}))
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRunCycle(t *testing.T) {
	f := newFixture(t)
	asOf := time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)
	f.engine.EXPECT().
		RunCycle(mock.Anything, mock.MatchedBy(func(t time.Time) bool { return t.Equal(asOf) })).
		Return(port.CycleReport{
			AsOf:      asOf,
			CycleHour: asOf.Truncate(time.Hour),
			Outcomes: []port.SKUOutcome{
				{SKUID: "sku-1", Status: port.SKUDecided, Decision: &domain.IntelligenceDecision{SKUID: "sku-1", Action: domain.ActionNoOp}},
				{SKUID: "sku-2", Status: port.SKUSkipped, Reason: "no managed campaigns"},
			},
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/cycles", `{"as_of":"2026-03-10T09:15:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[cycleResponse](t, rec)
	assert.True(t, resp.CycleHour.Equal(asOf.Truncate(time.Hour)))
	require.Len(t, resp.Outcomes, 2)
	assert.Equal(t, "decided", resp.Outcomes[0].Status)
	require.NotNil(t, resp.Outcomes[0].Decision)
	assert.Equal(t, "no managed campaigns", resp.Outcomes[1].Reason)
}

func TestRunCycle_DefaultsToNow(t *testing.T) {
	f := newFixture(t)
	f.engine.EXPECT().
		RunCycle(mock.Anything, mock.MatchedBy(func(t time.Time) bool { return t.Equal(now) })).
		Return(port.CycleReport{AsOf: now, CycleHour: now.Truncate(time.Hour)}, nil)

	rec := f.do(http.MethodPost, "/api/v1/cycles", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRunCycle_InvalidJSON(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/cycles", `{"as_of":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDecisions(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, f.decisions.Append(context.Background(), domain.IntelligenceDecision{
			ID:        "d" + string(rune('0'+i)),
			SKUID:     "sku-1",
			CycleHour: now.Truncate(time.Hour).Add(time.Duration(i) * time.Hour),
			Action:    domain.ActionNoOp,
		}))
	}

	rec := f.do(http.MethodGet, "/api/v1/skus/sku-1/decisions?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]domain.IntelligenceDecision](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/skus/sku-1/decisions?limit=x", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/skus/missing/decisions", "").Code)
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	created := &domain.Campaign{ID: "c9", SKUID: "sku-1", Platform: domain.PlatformMetaAds, ExternalID: "ext-9", Budget: 2500, Status: domain.CampaignPaused, Source: "meta_ads"}
	f.orch.EXPECT().
		CreateCampaign(mock.Anything, port.CreateCampaignReq{
			SKUID:     "sku-1",
			Platform:  domain.PlatformMetaAds,
			AccountID: "act-1",
			Spec:      domain.CampaignSpec{Name: "spring", Budget: 2500},
		}).
		Return(created, port.Result{Source: "meta_ads", Attempts: []domain.Attempt{{Source: "meta_ads", Outcome: domain.AttemptSucceeded}}}, nil)

	rec := f.do(http.MethodPost, "/api/v1/skus/sku-1/campaigns",
		`{"platform":"meta_ads","account_id":"act-1","name":"spring","budget":2500}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[operationResponse](t, rec)
	assert.Equal(t, "meta_ads", resp.Source)
	require.NotNil(t, resp.Campaign)
	assert.Equal(t, "ext-9", resp.Campaign.ExternalID)
}

func TestCreateCampaign_UnknownSKU(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/skus/nope/campaigns", `{"platform":"meta_ads","name":"x","budget":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBudget_Exhausted(t *testing.T) {
	f := newFixture(t)
	attempts := []domain.Attempt{
		{Source: "integrator_a", Outcome: domain.AttemptFailed, Err: errors.New("503 from upstream")},
		{Source: "meta_ads", Outcome: domain.AttemptFailed, Err: errors.New("rate limited")},
	}
	exhausted := &domain.AllSourcesExhaustedError{Op: "update_budget", Platform: domain.PlatformMetaAds, Attempts: attempts}
	f.orch.EXPECT().
		UpdateBudget(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.ID == "c1" }), int64(7000)).
		Return(port.Result{}, exhausted)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/c1/budget", `{"budget":7000}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	resp := decode[errorResponse](t, rec)
	require.Len(t, resp.Attempts, 2)
	assert.Equal(t, "integrator_a", resp.Attempts[0].Source)
	assert.Equal(t, "failed", resp.Attempts[0].Outcome)
	assert.Equal(t, "rate limited", resp.Attempts[1].Error)
}

func TestUpdateBudget_RejectsNonPositive(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/campaigns/c1/budget", `{"budget":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPause_IsUserInitiated(t *testing.T) {
	f := newFixture(t)
	f.orch.EXPECT().
		Pause(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.ID == "c1" }), false).
		RunAndReturn(func(ctx context.Context, c domain.Campaign, auto bool) (port.Result, error) {
			return port.Result{Source: "meta_ads"}, f.campaigns.UpdateStatus(ctx, c.ID, domain.CampaignPaused, auto, now)
		})

	rec := f.do(http.MethodPost, "/api/v1/campaigns/c1/pause", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[operationResponse](t, rec)
	assert.Equal(t, "meta_ads", resp.Source)
	require.NotNil(t, resp.Campaign)
	assert.Equal(t, string(domain.CampaignPaused), resp.Campaign.Status)
	assert.False(t, resp.Campaign.AutoPaused)
}

func TestActivate_UnknownCampaign(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/campaigns/missing/activate", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPerformance(t *testing.T) {
	f := newFixture(t)
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	window := domain.Window{Start: from, End: to}

	f.orch.EXPECT().
		AggregatePerformance(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.ID == "c1" }), window).
		Return(port.PerformanceResult{
			Result:  port.Result{Source: "merged"},
			Metric:  domain.NormalizedMetric{CampaignID: "c1", Impressions: 1200, Spend: 40},
			Sources: []string{"integrator_a", "meta_ads"},
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/c1/performance?from=2026-03-09T00:00:00Z&to=2026-03-10T00:00:00Z&merge=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[performanceResponse](t, rec)
	assert.Equal(t, []string{"integrator_a", "meta_ads"}, resp.Sources)
	assert.Equal(t, int64(1200), resp.Metric.Impressions)
}

func TestPerformance_InvalidWindow(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/campaigns/c1/performance?from=yesterday", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		f.do(http.MethodGet, "/api/v1/campaigns/c1/performance?from=2026-03-10T00:00:00Z&to=2026-03-09T00:00:00Z", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics", rec.Body.String())
}
