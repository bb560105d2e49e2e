// Package intelligence holds the pure decision logic of the budget engine:
// the EXPLORE/EXPLOIT mode machine, confidence scoring, budget allocation
// and runway forecasting. Nothing here performs I/O.
package intelligence

import (
	"fmt"
	"time"

	"adpilot/internal/core/domain"
)

// Settings tunes the decision logic. Percentages are expressed in percent
// (10 means 10%) and money in integer units.
type Settings struct {
	// ImpressionThreshold is the SKU impression volume required before
	// EXPLOIT, at ReferenceBudget. Larger budgets scale it up.
	ImpressionThreshold int64
	ReferenceBudget     int64
	// UnderTestedImpressions marks a campaign as under-tested in EXPLORE.
	UnderTestedImpressions int64
	MinExploreDuration     time.Duration
	ExploitConfidence      float64
	MinROASForExploit      float64
	RegressionROAS         float64
	RegressionCycles       int
	MinDataPoints          int

	FloorPercent         float64
	CapPercent           float64
	ExplorePercent       float64
	MinCampaignBudget    int64
	ExploitStepPercent   float64
	NoOpTolerancePercent float64

	MinRunwayDays        float64
	DepletionWarningDays float64
	FlightDays           int

	ObservationWindow time.Duration
	BurnWindow        time.Duration
	StaleAfter        time.Duration
}

// DefaultSettings returns the production defaults.
func DefaultSettings() Settings {
	return Settings{
		ImpressionThreshold:    1000,
		ReferenceBudget:        500000,
		UnderTestedImpressions: 1000,
		MinExploreDuration:     7 * 24 * time.Hour,
		ExploitConfidence:      0.8,
		MinROASForExploit:      2.0,
		RegressionROAS:         2.0,
		RegressionCycles:       3,
		MinDataPoints:          50,
		FloorPercent:           10,
		CapPercent:             50,
		ExplorePercent:         20,
		MinCampaignBudget:      10000,
		ExploitStepPercent:     10,
		NoOpTolerancePercent:   1,
		MinRunwayDays:          1,
		DepletionWarningDays:   3,
		FlightDays:             30,
		ObservationWindow:      7 * 24 * time.Hour,
		BurnWindow:             24 * time.Hour,
		StaleAfter:             2 * time.Hour,
	}
}

// WithOverrides returns a copy of s with the non-nil overrides applied.
func (s Settings) WithOverrides(o domain.IntelligenceOverrides) Settings {
	if o.ImpressionThreshold != nil {
		s.ImpressionThreshold = *o.ImpressionThreshold
		s.UnderTestedImpressions = *o.ImpressionThreshold
	}
	if o.MinExploreDays != nil {
		s.MinExploreDuration = time.Duration(*o.MinExploreDays * float64(24*time.Hour))
	}
	if o.ExploitConfidence != nil {
		s.ExploitConfidence = *o.ExploitConfidence
	}
	if o.MinROASForExploit != nil {
		s.MinROASForExploit = *o.MinROASForExploit
	}
	if o.RegressionROAS != nil {
		s.RegressionROAS = *o.RegressionROAS
	}
	if o.RegressionCycles != nil {
		s.RegressionCycles = *o.RegressionCycles
	}
	if o.FloorPercent != nil {
		s.FloorPercent = *o.FloorPercent
	}
	if o.CapPercent != nil {
		s.CapPercent = *o.CapPercent
	}
	if o.ExplorePercent != nil {
		s.ExplorePercent = *o.ExplorePercent
	}
	if o.MinCampaignBudget != nil {
		s.MinCampaignBudget = *o.MinCampaignBudget
	}
	if o.ExploitStepPercent != nil {
		s.ExploitStepPercent = *o.ExploitStepPercent
	}
	if o.MinRunwayDays != nil {
		s.MinRunwayDays = *o.MinRunwayDays
	}
	if o.DepletionWarningDays != nil {
		s.DepletionWarningDays = *o.DepletionWarningDays
	}
	return s
}

// Validate checks that the settings are internally consistent.
func (s Settings) Validate() error {
	switch {
	case s.ImpressionThreshold <= 0:
		return fmt.Errorf("%w: impression threshold must be positive", domain.ErrValidation)
	case s.FloorPercent < 0 || s.CapPercent <= 0 || s.CapPercent > 100:
		return fmt.Errorf("%w: floor/cap percent out of range", domain.ErrValidation)
	case s.FloorPercent > s.CapPercent:
		return fmt.Errorf("%w: floor %.1f%% above cap %.1f%%", domain.ErrValidation, s.FloorPercent, s.CapPercent)
	case s.ExplorePercent < 0 || s.ExplorePercent > 100:
		return fmt.Errorf("%w: explore percent out of range", domain.ErrValidation)
	case s.RegressionCycles <= 0:
		return fmt.Errorf("%w: regression cycles must be positive", domain.ErrValidation)
	case s.RegressionROAS > s.MinROASForExploit:
		return fmt.Errorf("%w: regression roas %.2f above exploit roas %.2f", domain.ErrValidation, s.RegressionROAS, s.MinROASForExploit)
	case s.MinCampaignBudget < 0:
		return fmt.Errorf("%w: negative minimum campaign budget", domain.ErrValidation)
	case s.ObservationWindow <= 0 || s.BurnWindow <= 0 || s.StaleAfter <= 0:
		return fmt.Errorf("%w: windows must be positive", domain.ErrValidation)
	case s.BurnWindow > s.ObservationWindow:
		return fmt.Errorf("%w: burn window %s longer than observation window %s", domain.ErrValidation, s.BurnWindow, s.ObservationWindow)
	}
	return nil
}

// ImpressionThresholdFor scales the EXPLOIT impression threshold with the
// SKU budget. Budgets at or below the reference keep the base threshold.
func (s Settings) ImpressionThresholdFor(totalBudget int64) int64 {
	if s.ReferenceBudget <= 0 || totalBudget <= s.ReferenceBudget {
		return s.ImpressionThreshold
	}
	return int64(float64(s.ImpressionThreshold) * float64(totalBudget) / float64(s.ReferenceBudget))
}
