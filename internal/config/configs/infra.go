package configs

import "time"

// Kafka configures decision event publishing. Publishing is off when no
// brokers are set.
type Kafka struct {
	Brokers        []string      `env:"BROKERS" envSeparator:","`
	DecisionsTopic string        `env:"DECISIONS_TOPIC" envDefault:"intelligence.decisions"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether any broker is configured.
func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }

// Redis configures the distributed cycle lock. When Addr is empty an
// in-process lock is used instead.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"2h"`
}

// ClickHouse holds the DSN of the metrics store used when METRICS_DRIVER is
// clickhouse.
type ClickHouse struct {
	DSN string `env:"DSN" envDefault:"clickhouse://default:@localhost:9000/default"`
}

// S3 configures archiving of raw vendor payloads. Archiving is off when
// Bucket is empty.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Prefix    string `env:"PREFIX" envDefault:"adpilot"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"ENDPOINT"`
	PathStyle bool   `env:"PATH_STYLE" envDefault:"false"`
}
