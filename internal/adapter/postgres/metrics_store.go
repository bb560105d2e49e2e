package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// MetricsStore implements port.MetricsStore on two append-only tables.
type MetricsStore struct {
	pool *pgxpool.Pool
}

func NewMetricsStore(pool *pgxpool.Pool) *MetricsStore {
	return &MetricsStore{pool: pool}
}

var _ port.MetricsStore = (*MetricsStore)(nil)

func (s *MetricsStore) AppendRaw(ctx context.Context, snap domain.RawMetricSnapshot) error {
	if snap.CampaignID == "" || !snap.Window.Valid() {
		return fmt.Errorf("%w: raw snapshot needs a campaign and a window", domain.ErrValidation)
	}
	payload := []byte(snap.Payload)
	if len(payload) == 0 {
		payload = []byte("null")
	}
	_, err := s.pool.Exec(ctx, `
        INSERT INTO raw_metric_snapshots (id, source, sku_id, campaign_id, platform, account_id,
                                          window_start, window_end, fetched_at, payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		snap.ID, snap.Source, snap.SKUID, snap.CampaignID, string(snap.Platform), snap.AccountID,
		snap.Window.Start, snap.Window.End, snap.FetchedAt, payload,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrDuplicate
		}
		return fmt.Errorf("insert raw snapshot: %w", err)
	}
	return nil
}

func (s *MetricsStore) AppendNormalized(ctx context.Context, m domain.NormalizedMetric) error {
	if m.CampaignID == "" || !m.Window.Valid() {
		return fmt.Errorf("%w: metric needs a campaign and a window", domain.ErrValidation)
	}
	_, err := s.pool.Exec(ctx, `
        INSERT INTO normalized_metrics (id, source, sku_id, campaign_id, platform, account_id,
                                        window_start, window_end, fetched_at, spend, impressions,
                                        clicks, conversions, revenue, ctr, cpc, cpm, roas, data_quality)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.ID, m.Source, m.SKUID, m.CampaignID, string(m.Platform), m.AccountID,
		m.Window.Start, m.Window.End, m.FetchedAt, m.Spend, m.Impressions,
		m.Clicks, m.Conversions, m.Revenue, m.CTR, m.CPC, m.CPM, m.ROAS, m.DataQuality,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrDuplicate
		}
		return fmt.Errorf("insert normalized metric: %w", err)
	}
	return nil
}

func (s *MetricsStore) QueryWindow(ctx context.Context, scope domain.MetricScope, w domain.Window) ([]domain.NormalizedMetric, error) {
	column, value := scopeFilter(scope)
	rows, err := s.pool.Query(ctx, `
        SELECT id, source, sku_id, campaign_id, platform, account_id, window_start, window_end,
               fetched_at, spend, impressions, clicks, conversions, revenue, ctr, cpc, cpm, roas, data_quality
        FROM normalized_metrics
        WHERE `+column+` = $1 AND window_start >= $2 AND window_end <= $3
        ORDER BY window_start, fetched_at`,
		value, w.Start, w.End,
	)
	if err != nil {
		return nil, fmt.Errorf("query normalized metrics: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.NormalizedMetric, error) {
		var (
			m        domain.NormalizedMetric
			platform string
		)
		err := row.Scan(&m.ID, &m.Source, &m.SKUID, &m.CampaignID, &platform, &m.AccountID,
			&m.Window.Start, &m.Window.End, &m.FetchedAt, &m.Spend, &m.Impressions, &m.Clicks,
			&m.Conversions, &m.Revenue, &m.CTR, &m.CPC, &m.CPM, &m.ROAS, &m.DataQuality)
		m.Platform = domain.Platform(platform)
		m.Window = domain.Window{Start: m.Window.Start.UTC(), End: m.Window.End.UTC()}
		m.FetchedAt = m.FetchedAt.UTC()
		return m, err
	})
}

// Aggregate sums the newest record of every campaign and window inside w.
func (s *MetricsStore) Aggregate(ctx context.Context, scope domain.MetricScope, w domain.Window) (domain.Aggregate, error) {
	column, value := scopeFilter(scope)
	var a domain.Aggregate
	err := s.pool.QueryRow(ctx, `
        SELECT COALESCE(SUM(spend), 0),
               COALESCE(SUM(revenue), 0),
               COALESCE(SUM(impressions), 0)::BIGINT,
               COALESCE(SUM(clicks), 0)::BIGINT,
               COALESCE(SUM(conversions), 0)::BIGINT,
               COUNT(*)
        FROM (
            SELECT DISTINCT ON (campaign_id, window_start, window_end)
                   spend, revenue, impressions, clicks, conversions
            FROM normalized_metrics
            WHERE `+column+` = $1 AND window_start >= $2 AND window_end <= $3
            ORDER BY campaign_id, window_start, window_end, fetched_at DESC
        ) latest`,
		value, w.Start, w.End,
	).Scan(&a.Spend, &a.Revenue, &a.Impressions, &a.Clicks, &a.Conversions, &a.DataPoints)
	if err != nil {
		return domain.Aggregate{}, fmt.Errorf("aggregate normalized metrics: %w", err)
	}
	a.Derive()
	return a, nil
}

func scopeFilter(scope domain.MetricScope) (column, value string) {
	if scope.CampaignID != "" {
		return "campaign_id", scope.CampaignID
	}
	return "sku_id", scope.SKUID
}
