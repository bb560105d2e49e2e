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

// DecisionRepository implements port.DecisionRepository. The unique
// (sku_id, cycle_hour) constraint is the last guard against running a
// cycle twice.
type DecisionRepository struct {
	pool *pgxpool.Pool
}

func NewDecisionRepository(pool *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{pool: pool}
}

var _ port.DecisionRepository = (*DecisionRepository)(nil)

func (r *DecisionRepository) Append(ctx context.Context, d domain.IntelligenceDecision) error {
	deltas, err := json.Marshal(d.Deltas)
	if err != nil {
		return fmt.Errorf("encode deltas: %w", err)
	}
	rationale, err := json.Marshal(d.Rationale)
	if err != nil {
		return fmt.Errorf("encode rationale: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO intelligence_decisions (id, sku_id, client_id, cycle_hour, decided_at, mode,
                                            previous_mode, action, deltas, rationale)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.SKUID, d.ClientID, d.CycleHour, d.Timestamp, string(d.Mode),
		string(d.PreviousMode), string(d.Action), deltas, rationale,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrDuplicate
		}
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (r *DecisionRepository) Exists(ctx context.Context, skuID string, cycleHour time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM intelligence_decisions WHERE sku_id = $1 AND cycle_hour = $2)`,
		skuID, cycleHour,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check decision: %w", err)
	}
	return exists, nil
}

// ListBySKU returns the newest decisions first. A non-positive limit
// returns every decision.
func (r *DecisionRepository) ListBySKU(ctx context.Context, skuID string, limit int) ([]domain.IntelligenceDecision, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, sku_id, client_id, cycle_hour, decided_at, mode, previous_mode, action, deltas, rationale
        FROM intelligence_decisions
        WHERE sku_id = $1
        ORDER BY cycle_hour DESC
        LIMIT NULLIF($2, 0)`,
		skuID, max(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IntelligenceDecision, error) {
		var (
			d                     domain.IntelligenceDecision
			mode, previous, action string
			deltas, rationale     []byte
		)
		if err := row.Scan(&d.ID, &d.SKUID, &d.ClientID, &d.CycleHour, &d.Timestamp,
			&mode, &previous, &action, &deltas, &rationale); err != nil {
			return d, err
		}
		d.Mode = domain.Mode(mode)
		d.PreviousMode = domain.Mode(previous)
		d.Action = domain.Action(action)
		d.CycleHour = d.CycleHour.UTC()
		d.Timestamp = d.Timestamp.UTC()
		if err := json.Unmarshal(deltas, &d.Deltas); err != nil {
			return d, fmt.Errorf("decode deltas of decision %s: %w", d.ID, err)
		}
		if err := json.Unmarshal(rationale, &d.Rationale); err != nil {
			return d, fmt.Errorf("decode rationale of decision %s: %w", d.ID, err)
		}
		return d, nil
	})
}
