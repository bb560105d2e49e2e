package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adpilot/internal/config/configs"
)

const (
	DriverPostgres   = "postgres"
	DriverMemory     = "memory"
	DriverClickHouse = "clickhouse"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	// StorageDriver selects where SKUs, campaigns and decisions live:
	// postgres or memory.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	// MetricsDriver selects the metrics store: postgres, clickhouse or
	// memory.
	MetricsDriver string `env:"METRICS_DRIVER" envDefault:"postgres"`
	// VendorsFile is the YAML list of integrators and connectors.
	VendorsFile string `env:"VENDORS_FILE" envDefault:"vendors.yaml"`

	HTTP          configs.HTTP          `envPrefix:"HTTP_"`
	Log           configs.Logger        `envPrefix:"LOG_"`
	Psql          configs.Postgres      `envPrefix:"PSQL_"`
	Intelligence  configs.Intelligence  `envPrefix:"INTEL_"`
	Orchestration configs.Orchestration `envPrefix:"ORCH_"`
	Scheduler     configs.Scheduler     `envPrefix:"SCHED_"`
	Kafka         configs.Kafka         `envPrefix:"KAFKA_"`
	Redis         configs.Redis         `envPrefix:"REDIS_"`
	ClickHouse    configs.ClickHouse    `envPrefix:"CLICKHOUSE_"`
	S3            configs.S3            `envPrefix:"S3_"`
}

// Load reads a .env file when one exists and then parses environment
// variables into a Config. Variables already set in the environment win
// over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.MetricsDriver {
	case DriverPostgres, DriverClickHouse, DriverMemory:
	default:
		return fmt.Errorf("unknown METRICS_DRIVER %q", c.MetricsDriver)
	}
	if c.MetricsDriver == DriverPostgres && c.StorageDriver == DriverMemory {
		return errors.New("METRICS_DRIVER=postgres requires STORAGE_DRIVER=postgres")
	}
	if c.Scheduler.Interval <= 0 {
		return errors.New("SCHED_INTERVAL must be positive")
	}
	return nil
}
