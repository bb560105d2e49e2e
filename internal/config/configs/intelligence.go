package configs

import (
	"time"

	"adpilot/internal/core/intelligence"
)

// Intelligence tunes the decision engine. Zero values keep the engine
// defaults, so only the knobs an operator cares about need to be set.
type Intelligence struct {
	ImpressionThreshold  int64         `env:"IMPRESSION_THRESHOLD"`
	MinExploreDuration   time.Duration `env:"MIN_EXPLORE_DURATION"`
	ExploitConfidence    float64       `env:"EXPLOIT_CONFIDENCE"`
	MinROASForExploit    float64       `env:"MIN_ROAS"`
	RegressionCycles     int           `env:"REGRESSION_CYCLES"`
	FloorPercent         float64       `env:"FLOOR_PERCENT"`
	CapPercent           float64       `env:"CAP_PERCENT"`
	ExplorePercent       float64       `env:"EXPLORE_PERCENT"`
	MinCampaignBudget    int64         `env:"MIN_CAMPAIGN_BUDGET"`
	MinRunwayDays        float64       `env:"MIN_RUNWAY_DAYS"`
	DepletionWarningDays float64       `env:"DEPLETION_WARNING_DAYS"`
	FlightDays           int           `env:"FLIGHT_DAYS"`
	StaleAfter           time.Duration `env:"STALE_AFTER"`

	Workers       int           `env:"WORKERS" envDefault:"4"`
	CycleDeadline time.Duration `env:"CYCLE_DEADLINE" envDefault:"50m"`
}

// Settings applies the configured values on top of the engine defaults.
func (c Intelligence) Settings() intelligence.Settings {
	s := intelligence.DefaultSettings()
	if c.ImpressionThreshold > 0 {
		s.ImpressionThreshold = c.ImpressionThreshold
		s.UnderTestedImpressions = c.ImpressionThreshold
	}
	if c.MinExploreDuration > 0 {
		s.MinExploreDuration = c.MinExploreDuration
	}
	if c.ExploitConfidence > 0 {
		s.ExploitConfidence = c.ExploitConfidence
	}
	if c.MinROASForExploit > 0 {
		s.MinROASForExploit = c.MinROASForExploit
		s.RegressionROAS = c.MinROASForExploit
	}
	if c.RegressionCycles > 0 {
		s.RegressionCycles = c.RegressionCycles
	}
	if c.FloorPercent > 0 {
		s.FloorPercent = c.FloorPercent
	}
	if c.CapPercent > 0 {
		s.CapPercent = c.CapPercent
	}
	if c.ExplorePercent > 0 {
		s.ExplorePercent = c.ExplorePercent
	}
	if c.MinCampaignBudget > 0 {
		s.MinCampaignBudget = c.MinCampaignBudget
	}
	if c.MinRunwayDays > 0 {
		s.MinRunwayDays = c.MinRunwayDays
	}
	if c.DepletionWarningDays > 0 {
		s.DepletionWarningDays = c.DepletionWarningDays
	}
	if c.FlightDays > 0 {
		s.FlightDays = c.FlightDays
	}
	if c.StaleAfter > 0 {
		s.StaleAfter = c.StaleAfter
	}
	return s
}
