package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// SKURepository implements port.SKURepository.
type SKURepository struct {
	pool *pgxpool.Pool
}

func NewSKURepository(pool *pgxpool.Pool) *SKURepository {
	return &SKURepository{pool: pool}
}

var _ port.SKURepository = (*SKURepository)(nil)

const skuColumns = `s.id, s.client_id, s.name, s.total_budget, s.status, s.mode,
       s.mode_entered_at, s.regression_streak, s.overrides, s.created_at, s.updated_at`

// CreateClient inserts a client. Existing clients are left untouched.
func (r *SKURepository) CreateClient(ctx context.Context, id, name string, active bool) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO clients (id, name, active) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, id, name, active)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Create inserts a SKU. It returns port.ErrDuplicate when the id exists.
func (r *SKURepository) Create(ctx context.Context, sku domain.SKU) error {
	overrides, err := json.Marshal(sku.Overrides)
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}
	mode := sku.Mode
	if mode == "" {
		mode = domain.ModeExplore
	}
	var enteredAt *time.Time
	if !sku.EnteredAt.IsZero() {
		enteredAt = &sku.EnteredAt
	}
	createdAt := sku.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO skus (id, client_id, name, total_budget, status, mode, mode_entered_at,
                          regression_streak, overrides, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		sku.ID, sku.ClientID, sku.Name, sku.TotalBudget, string(sku.Status), string(mode), enteredAt,
		sku.RegressionStreak, overrides, createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// ListActive returns active SKUs of active clients ordered by id.
func (r *SKURepository) ListActive(ctx context.Context) ([]domain.SKU, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+skuColumns+`
        FROM skus s
        JOIN clients c ON c.id = s.client_id
        WHERE s.status = 'active' AND c.active
        ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("query active skus: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SKU, error) {
		return scanSKU(row)
	})
}

func (r *SKURepository) Get(ctx context.Context, id string) (*domain.SKU, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus s WHERE s.id = $1`, id)
	sku, err := scanSKU(row)
	if err != nil {
		if isNoRows(err) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &sku, nil
}

func (r *SKURepository) UpdateMode(ctx context.Context, id string, state domain.ModeState) error {
	var enteredAt *time.Time
	if !state.EnteredAt.IsZero() {
		enteredAt = &state.EnteredAt
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE skus SET mode = $2, mode_entered_at = $3, regression_streak = $4, updated_at = now()
        WHERE id = $1`,
		id, string(state.Mode), enteredAt, state.RegressionStreak,
	)
	if err != nil {
		return fmt.Errorf("update sku mode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func scanSKU(row pgx.Row) (domain.SKU, error) {
	var (
		sku       domain.SKU
		status    string
		mode      string
		enteredAt *time.Time
		overrides []byte
	)
	err := row.Scan(
		&sku.ID,
		&sku.ClientID,
		&sku.Name,
		&sku.TotalBudget,
		&status,
		&mode,
		&enteredAt,
		&sku.RegressionStreak,
		&overrides,
		&sku.CreatedAt,
		&sku.UpdatedAt,
	)
	if err != nil {
		return domain.SKU{}, err
	}
	sku.Status = domain.SKUStatus(status)
	sku.Mode = domain.Mode(mode)
	if enteredAt != nil {
		sku.EnteredAt = enteredAt.UTC()
	}
	sku.CreatedAt = sku.CreatedAt.UTC()
	sku.UpdatedAt = sku.UpdatedAt.UTC()
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &sku.Overrides); err != nil {
			return domain.SKU{}, fmt.Errorf("decode overrides of sku %s: %w", sku.ID, err)
		}
	}
	return sku, nil
}
