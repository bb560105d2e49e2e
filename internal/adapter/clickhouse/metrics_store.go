package clickhouse

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// MetricsStore implements port.MetricsStore using ClickHouse.
type MetricsStore struct {
	conn *Conn
}

func NewMetricsStore(conn *Conn) *MetricsStore {
	return &MetricsStore{conn: conn}
}

var _ port.MetricsStore = (*MetricsStore)(nil)

func (s *MetricsStore) AppendRaw(ctx context.Context, snap domain.RawMetricSnapshot) error {
	if snap.CampaignID == "" || !snap.Window.Valid() {
		return fmt.Errorf("%w: raw snapshot needs a campaign and a window", domain.ErrValidation)
	}
	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO raw_metric_snapshots`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	err = batch.Append(
		snap.ID, snap.Source, snap.SKUID, snap.CampaignID, string(snap.Platform), snap.AccountID,
		snap.Window.Start, snap.Window.End, snap.FetchedAt, string(snap.Payload),
	)
	if err != nil {
		return fmt.Errorf("append to batch: %w", err)
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

func (s *MetricsStore) AppendNormalized(ctx context.Context, m domain.NormalizedMetric) error {
	if m.CampaignID == "" || !m.Window.Valid() {
		return fmt.Errorf("%w: metric needs a campaign and a window", domain.ErrValidation)
	}
	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO normalized_metrics`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	err = batch.Append(
		m.ID, m.Source, m.SKUID, m.CampaignID, string(m.Platform), m.AccountID,
		m.Window.Start, m.Window.End, m.FetchedAt,
		m.Spend, m.Impressions, m.Clicks, m.Conversions, m.Revenue,
		m.CTR, m.CPC, m.CPM, m.ROAS, m.DataQuality,
	)
	if err != nil {
		return fmt.Errorf("append to batch: %w", err)
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

func (s *MetricsStore) QueryWindow(ctx context.Context, scope domain.MetricScope, w domain.Window) ([]domain.NormalizedMetric, error) {
	column, value := scopeFilter(scope)
	rows, err := s.conn.Query(ctx, `
		SELECT id, source, sku_id, campaign_id, platform, account_id, window_start, window_end,
		       fetched_at, spend, impressions, clicks, conversions, revenue, ctr, cpc, cpm, roas, data_quality
		FROM normalized_metrics
		WHERE `+column+` = ? AND window_start >= ? AND window_end <= ?
		ORDER BY window_start, fetched_at`,
		value, w.Start, w.End,
	)
	if err != nil {
		return nil, fmt.Errorf("query normalized metrics: %w", err)
	}
	defer rows.Close()

	var result []domain.NormalizedMetric
	for rows.Next() {
		var (
			m        domain.NormalizedMetric
			platform string
		)
		if err := rows.Scan(&m.ID, &m.Source, &m.SKUID, &m.CampaignID, &platform, &m.AccountID,
			&m.Window.Start, &m.Window.End, &m.FetchedAt, &m.Spend, &m.Impressions, &m.Clicks,
			&m.Conversions, &m.Revenue, &m.CTR, &m.CPC, &m.CPM, &m.ROAS, &m.DataQuality); err != nil {
			return nil, fmt.Errorf("scan normalized metric: %w", err)
		}
		m.Platform = domain.Platform(platform)
		m.Window = domain.Window{Start: m.Window.Start.UTC(), End: m.Window.End.UTC()}
		m.FetchedAt = m.FetchedAt.UTC()
		result = append(result, m)
	}
	return result, rows.Err()
}

// Aggregate sums the newest record of every campaign and window inside w.
func (s *MetricsStore) Aggregate(ctx context.Context, scope domain.MetricScope, w domain.Window) (domain.Aggregate, error) {
	column, value := scopeFilter(scope)
	var (
		a      domain.Aggregate
		points uint64
	)
	err := s.conn.QueryRow(ctx, `
		SELECT sum(spend), sum(revenue), sum(impressions), sum(clicks), sum(conversions), count()
		FROM (
			SELECT argMax(spend, fetched_at)       AS spend,
			       argMax(revenue, fetched_at)     AS revenue,
			       argMax(impressions, fetched_at) AS impressions,
			       argMax(clicks, fetched_at)      AS clicks,
			       argMax(conversions, fetched_at) AS conversions
			FROM normalized_metrics
			WHERE `+column+` = ? AND window_start >= ? AND window_end <= ?
			GROUP BY campaign_id, window_start, window_end
		)`,
		value, w.Start, w.End,
	).Scan(&a.Spend, &a.Revenue, &a.Impressions, &a.Clicks, &a.Conversions, &points)
	if err != nil {
		return domain.Aggregate{}, fmt.Errorf("aggregate normalized metrics: %w", err)
	}
	a.DataPoints = int(points)
	a.Derive()
	return a, nil
}

func scopeFilter(scope domain.MetricScope) (column, value string) {
	if scope.CampaignID != "" {
		return "campaign_id", scope.CampaignID
	}
	return "sku_id", scope.SKUID
}
