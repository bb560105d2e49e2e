package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
)

var hour0 = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// setupTestDB starts a PostgreSQL container and applies the migrations.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("adpilot"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedSKU(t *testing.T, skus *SKURepository, id, clientID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, skus.CreateClient(ctx, clientID, clientID, true))
	require.NoError(t, skus.Create(ctx, domain.SKU{
		ID: id, ClientID: clientID, Name: id, TotalBudget: 100000,
		Status: domain.SKUStatusActive, CreatedAt: hour0.Add(-48 * time.Hour),
	}))
}

func TestSKURepository(t *testing.T) {
	pool := setupTestDB(t)
	skus := NewSKURepository(pool)
	ctx := context.Background()

	seedSKU(t, skus, "sku-1", "client-1")
	seedSKU(t, skus, "sku-2", "client-2")
	require.NoError(t, skus.CreateClient(ctx, "client-3", "client-3", false))
	require.NoError(t, skus.Create(ctx, domain.SKU{ID: "sku-3", ClientID: "client-3", Name: "off", TotalBudget: 1, Status: domain.SKUStatusActive}))

	assert.ErrorIs(t, skus.Create(ctx, domain.SKU{ID: "sku-1", ClientID: "client-1", Status: domain.SKUStatusActive}), port.ErrDuplicate)

	active, err := skus.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "sku-1", active[0].ID)
	assert.Equal(t, domain.ModeExplore, active[0].Mode)

	state := domain.ModeState{Mode: domain.ModeExploit, EnteredAt: hour0, RegressionStreak: 2}
	require.NoError(t, skus.UpdateMode(ctx, "sku-1", state))
	got, err := skus.Get(ctx, "sku-1")
	require.NoError(t, err)
	assert.Equal(t, state, got.ModeState)

	assert.ErrorIs(t, skus.UpdateMode(ctx, "missing", state), port.ErrNotFound)
	_, err = skus.Get(ctx, "missing")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCampaignRepository(t *testing.T) {
	pool := setupTestDB(t)
	seedSKU(t, NewSKURepository(pool), "sku-1", "client-1")
	campaigns := NewCampaignRepository(pool)
	ctx := context.Background()

	c := domain.Campaign{
		ID: "c1", SKUID: "sku-1", Platform: domain.PlatformGoogleAds, AccountID: "acct",
		ExternalID: "ext-1", Name: "Search", Budget: 30000, Status: domain.CampaignActive, Source: "google_ads",
	}
	require.NoError(t, campaigns.Create(ctx, c))
	dup := c
	dup.ID = "c2"
	assert.ErrorIs(t, campaigns.Create(ctx, dup), port.ErrDuplicate)

	require.NoError(t, campaigns.UpdateBudget(ctx, "c1", 45000, hour0))
	require.NoError(t, campaigns.UpdateStatus(ctx, "c1", domain.CampaignPaused, true, hour0))

	got, err := campaigns.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(45000), got.Budget)
	assert.Equal(t, domain.CampaignPaused, got.Status)
	assert.True(t, got.AutoPaused)
	assert.True(t, got.Managed())
	assert.Equal(t, hour0, got.UpdatedAt)

	list, err := campaigns.ListBySKU(ctx, "sku-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, campaigns.UpdateBudget(ctx, "missing", 1, hour0), port.ErrNotFound)
}

func TestDecisionRepository(t *testing.T) {
	pool := setupTestDB(t)
	seedSKU(t, NewSKURepository(pool), "sku-1", "client-1")
	decisions := NewDecisionRepository(pool)
	ctx := context.Background()

	days := 12.5
	for i := range 3 {
		d := domain.IntelligenceDecision{
			ID: "d" + string(rune('1'+i)), SKUID: "sku-1", ClientID: "client-1",
			CycleHour: hour0.Add(time.Duration(i) * time.Hour), Timestamp: hour0.Add(time.Duration(i) * time.Hour),
			Mode: domain.ModeExplore, PreviousMode: domain.ModeExplore, Action: domain.ActionReallocate,
			Deltas: []domain.CampaignDelta{{CampaignID: "c1", Operation: domain.OpUpdateBudget, OldBudget: 100, NewBudget: 200, Delta: 100, Applied: true}},
			Rationale: domain.Rationale{Impressions: 1500, ForecastDaysRemaining: &days},
		}
		require.NoError(t, decisions.Append(ctx, d))
	}

	again := domain.IntelligenceDecision{ID: "other", SKUID: "sku-1", ClientID: "client-1", CycleHour: hour0, Timestamp: hour0,
		Mode: domain.ModeExplore, PreviousMode: domain.ModeExplore, Action: domain.ActionNoOp}
	assert.ErrorIs(t, decisions.Append(ctx, again), port.ErrDuplicate)

	ok, err := decisions.Exists(ctx, "sku-1", hour0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = decisions.Exists(ctx, "sku-1", hour0.Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := decisions.ListBySKU(ctx, "sku-1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "d3", list[0].ID)
	assert.Equal(t, hour0.Add(2*time.Hour), list[0].CycleHour)
	require.Len(t, list[0].Deltas, 1)
	require.NotNil(t, list[0].Rationale.ForecastDaysRemaining)
	assert.InDelta(t, 12.5, *list[0].Rationale.ForecastDaysRemaining, 1e-9)

	all, err := decisions.ListBySKU(ctx, "sku-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMetricsStoreAggregateKeepsNewestFetch(t *testing.T) {
	pool := setupTestDB(t)
	store := NewMetricsStore(pool)
	ctx := context.Background()

	w := domain.Window{Start: hour0.Add(-time.Hour), End: hour0}
	metric := func(id string, fetched time.Time, spend float64) domain.NormalizedMetric {
		m := domain.NormalizedMetric{
			ID: id, Source: "meta_ads", SKUID: "sku-1", CampaignID: "c1", Platform: domain.PlatformMetaAds,
			AccountID: "act", Window: w, FetchedAt: fetched, Spend: spend, Revenue: spend * 2, Impressions: 1000, Clicks: 10,
		}
		m.Derive()
		return m
	}
	require.NoError(t, store.AppendNormalized(ctx, metric("m1", hour0, 10)))
	require.NoError(t, store.AppendNormalized(ctx, metric("m2", hour0.Add(time.Minute), 12)))
	require.NoError(t, store.AppendRaw(ctx, domain.RawMetricSnapshot{
		ID: "r1", Source: "meta_ads", SKUID: "sku-1", CampaignID: "c1", Platform: domain.PlatformMetaAds,
		AccountID: "act", Window: w, FetchedAt: hour0, Payload: json.RawMessage(`{"spend":"12"}`),
	}))

	recs, err := store.QueryWindow(ctx, domain.MetricScope{CampaignID: "c1"}, domain.Window{Start: hour0.Add(-24 * time.Hour), End: hour0})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "m1", recs[0].ID)

	agg, err := store.Aggregate(ctx, domain.MetricScope{SKUID: "sku-1"}, domain.Window{Start: hour0.Add(-24 * time.Hour), End: hour0})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, agg.Spend, 1e-9)
	assert.Equal(t, int64(1000), agg.Impressions)
	assert.Equal(t, 1, agg.DataPoints)
	assert.InDelta(t, 2.0, agg.ROAS, 1e-9)

	err = store.AppendNormalized(ctx, domain.NormalizedMetric{ID: "bad", CampaignID: "c1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
