package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Scheduler.Interval)
	assert.False(t, cfg.Kafka.Enabled())

	s := cfg.Intelligence.Settings()
	assert.Equal(t, int64(1000), s.ImpressionThreshold)
	assert.Equal(t, 50.0, s.CapPercent)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("METRICS_DRIVER", "clickhouse")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("INTEL_CAP_PERCENT", "40")
	t.Setenv("INTEL_MIN_ROAS", "3")
	t.Setenv("SCHED_INTERVAL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.Interval)

	s := cfg.Intelligence.Settings()
	assert.Equal(t, 40.0, s.CapPercent)
	assert.Equal(t, 3.0, s.MinROASForExploit)
	assert.Equal(t, 3.0, s.RegressionROAS)
	require.NoError(t, s.Validate())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PostgresMetricsNeedPostgresStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	_, err := Load()
	assert.Error(t, err)
}
