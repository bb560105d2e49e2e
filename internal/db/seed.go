package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

const seedSource = "seed"

// Seed inserts a demo client with three SKUs, their campaigns and two days
// of hourly metrics. Rows are keyed deterministically so seeding twice is a
// no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC().Truncate(time.Hour)

	if _, err := pool.Exec(ctx, `INSERT INTO clients (id, name, active) VALUES ('demo', 'Demo client', TRUE)
ON CONFLICT DO NOTHING`); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	platforms := []domain.Platform{domain.PlatformMetaAds, domain.PlatformGoogleAds, domain.PlatformTikTokAds}
	batch := &pgx.Batch{}
	for i := 1; i <= 3; i++ {
		skuID := fmt.Sprintf("demo-sku-%d", i)
		created := now.AddDate(0, 0, -i*3)
		total := int64(i) * 500000 // 5000.00 units per step

		batch.Queue(`INSERT INTO skus (id, client_id, name, total_budget, mode_entered_at, created_at, updated_at)
VALUES ($1, 'demo', $2, $3, $4, $4, $4) ON CONFLICT DO NOTHING`,
			skuID, fmt.Sprintf("Demo SKU %d", i), total, created)

		for j, p := range platforms {
			campaignID := fmt.Sprintf("%s-c%d", skuID, j+1)
			budget := total / int64(len(platforms)) / 30
			batch.Queue(`INSERT INTO campaigns
    (id, sku_id, platform, account_id, external_id, name, budget, status, source, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10) ON CONFLICT DO NOTHING`,
				campaignID, skuID, string(p), "demo-account", "ext-"+campaignID,
				fmt.Sprintf("Demo %s %d", p, j+1), budget, string(domain.CampaignActive), seedSource, created)

			// Performance improves with the platform index so the engine has
			// a clear winner to shift budget to.
			for h := 48; h >= 1; h-- {
				m := domain.NormalizedMetric{
					ID:          fmt.Sprintf("%s-h%d", campaignID, h),
					Source:      seedSource,
					SKUID:       skuID,
					CampaignID:  campaignID,
					Platform:    p,
					AccountID:   "demo-account",
					Window:      domain.Window{Start: now.Add(-time.Duration(h) * time.Hour), End: now.Add(-time.Duration(h-1) * time.Hour)},
					FetchedAt:   now,
					Impressions: int64(200 + r.Intn(400)),
					DataQuality: 1,
				}
				m.Clicks = m.Impressions / int64(20+r.Intn(30))
				m.Conversions = m.Clicks / int64(5+r.Intn(5))
				m.Spend = float64(100+r.Intn(200)) / 10
				m.Revenue = m.Spend * (1 + float64(j) + r.Float64())
				m.Derive()

				batch.Queue(`INSERT INTO normalized_metrics
    (id, source, sku_id, campaign_id, platform, account_id, window_start, window_end, fetched_at,
     spend, impressions, clicks, conversions, revenue, ctr, cpc, cpm, roas, data_quality)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19) ON CONFLICT DO NOTHING`,
					m.ID, m.Source, m.SKUID, m.CampaignID, string(m.Platform), m.AccountID, m.Window.Start, m.Window.End, m.FetchedAt,
					m.Spend, m.Impressions, m.Clicks, m.Conversions, m.Revenue, m.CTR, m.CPC, m.CPM, m.ROAS, m.DataQuality)
			}
		}
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	return nil
}
