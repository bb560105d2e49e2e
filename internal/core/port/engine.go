package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// Engine runs the hourly intelligence cycle.
type Engine interface {
	// RunCycle evaluates every active SKU for the hour containing asOf.
	// Running it again for the same hour performs no new actions.
	RunCycle(ctx context.Context, asOf time.Time) (CycleReport, error)
}

// SKUOutcomeStatus summarises how one SKU's cycle ended.
type SKUOutcomeStatus string

const (
	SKUDecided   SKUOutcomeStatus = "decided"
	SKUDuplicate SKUOutcomeStatus = "duplicate"
	SKUSkipped   SKUOutcomeStatus = "skipped"
	SKUFailed    SKUOutcomeStatus = "failed"
	SKUAbandoned SKUOutcomeStatus = "abandoned"
)

type SKUOutcome struct {
	SKUID    string
	Status   SKUOutcomeStatus
	Reason   string
	Decision *domain.IntelligenceDecision
}

// CycleReport summarises one RunCycle call.
type CycleReport struct {
	AsOf      time.Time
	CycleHour time.Time
	Outcomes  []SKUOutcome
}

// Count returns the number of SKUs that ended with status s.
func (r CycleReport) Count(s SKUOutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}
