package intelligence

import (
	"math"
	"time"
)

// PacingStatus compares the observed burn rate with the pace that would
// exactly spend the remaining budget over the rest of the flight.
type PacingStatus string

const (
	PacingOptimal           PacingStatus = "optimal"
	PacingUnder             PacingStatus = "under_pace"
	PacingOver              PacingStatus = "over_pace"
	PacingCriticalOverspend PacingStatus = "critical_overspend"
	PacingBudgetExhausted   PacingStatus = "budget_exhausted"
)

// RunwayInput feeds Forecast.
type RunwayInput struct {
	// Spend is the amount spent during Elapsed, in integer units.
	Spend     int64
	Elapsed   time.Duration
	Remaining int64
	// DaysLeft is the number of days left in the flight.
	DaysLeft float64
}

// Runway is the budget depletion forecast of a SKU.
type Runway struct {
	BurnPerDay int64
	Remaining  int64
	// DaysRemaining is +Inf when nothing is being spent.
	DaysRemaining float64
	// Breach is set when the runway fell below the minimum; every active
	// campaign of the SKU must be paused.
	Breach  bool
	Warning bool
	Pacing  PacingStatus
}

// Finite reports whether the forecast has a finite number of days.
func (r Runway) Finite() bool { return !math.IsInf(r.DaysRemaining, 1) }

// Forecast projects when the remaining budget runs out at the observed burn
// rate.
func Forecast(in RunwayInput, s Settings) Runway {
	r := Runway{Remaining: in.Remaining, DaysRemaining: math.Inf(1), Pacing: PacingOptimal}

	days := in.Elapsed.Hours() / 24
	if days > 0 && in.Spend > 0 {
		r.BurnPerDay = int64(math.Round(float64(in.Spend) / days))
	}

	if in.Remaining <= 0 {
		r.DaysRemaining = 0
		r.Breach = true
		r.Pacing = PacingBudgetExhausted
		return r
	}
	if r.BurnPerDay > 0 {
		r.DaysRemaining = float64(in.Remaining) / float64(r.BurnPerDay)
	}
	r.Breach = r.DaysRemaining < s.MinRunwayDays
	r.Warning = r.DaysRemaining < s.DepletionWarningDays
	r.Pacing = pacing(r.BurnPerDay, in.Remaining, in.DaysLeft)
	return r
}

func pacing(burn, remaining int64, daysLeft float64) PacingStatus {
	if daysLeft <= 0 {
		return PacingOptimal
	}
	target := float64(remaining) / daysLeft
	if target <= 0 {
		return PacingBudgetExhausted
	}
	variance := (float64(burn) - target) / target * 100
	switch {
	case math.Abs(variance) <= 5:
		return PacingOptimal
	case variance < 0:
		return PacingUnder
	case variance <= 20:
		return PacingOver
	default:
		return PacingCriticalOverspend
	}
}
