package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

const campaignColumns = `id, sku_id, platform, account_id, external_id, name, budget, status,
       auto_paused, source, created_at, updated_at`

func (r *CampaignRepository) ListBySKU(ctx context.Context, skuID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE sku_id = $1 ORDER BY id`, skuID)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// Create inserts a campaign. The same external campaign can only be
// recorded once per platform account.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, sku_id, platform, account_id, external_id, name, budget, status,
                               auto_paused, source, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.SKUID, string(c.Platform), c.AccountID, c.ExternalID, c.Name, c.Budget, string(c.Status),
		c.AutoPaused, c.Source, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrDuplicate
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) UpdateBudget(ctx context.Context, id string, budget int64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET budget = $2, updated_at = $3 WHERE id = $1`, id, budget, at)
	if err != nil {
		return fmt.Errorf("update campaign budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus, autoPaused bool, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $2, auto_paused = $3, updated_at = $4 WHERE id = $1`,
		id, string(status), autoPaused, at)
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		platform string
		status   string
	)
	err := row.Scan(
		&c.ID,
		&c.SKUID,
		&platform,
		&c.AccountID,
		&c.ExternalID,
		&c.Name,
		&c.Budget,
		&status,
		&c.AutoPaused,
		&c.Source,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Platform = domain.Platform(platform)
	c.Status = domain.CampaignStatus(status)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
