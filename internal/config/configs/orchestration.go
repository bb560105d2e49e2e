package configs

import "time"

// Orchestration configures the vendor fallback chain.
type Orchestration struct {
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Scheduler drives RunCycle on a fixed interval.
type Scheduler struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
}
