package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"adpilot/internal/adapter/clickhouse"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/kafka"
	"adpilot/internal/adapter/memory"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/redislock"
	"adpilot/internal/adapter/s3archive"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/adapter/vendor"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/observability"
)

type stores struct {
	skus      port.SKURepository
	campaigns port.CampaignRepository
	decisions port.DecisionRepository
	metrics   port.MetricsStore
}

// main is the entry point of adpilot. It loads configuration, wires the
// storage, vendor and messaging adapters, then serves the admin API and
// runs the hourly decision cycle until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics("adpilot", reg)

	st, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage setup error", slog.Any("error", err))
		return
	}
	defer closeStores()

	if cfg.S3.Bucket != "" {
		client, err := s3archive.NewClient(ctx, cfg.S3.Region, cfg.S3.Endpoint, cfg.S3.PathStyle)
		if err != nil {
			logger.Error("s3 client error", slog.Any("error", err))
			return
		}
		st.metrics = s3archive.New(st.metrics, client, cfg.S3.Bucket, cfg.S3.Prefix, metrics, logger)
		logger.Info("raw payload archive enabled", slog.String("bucket", cfg.S3.Bucket))
	}

	specs, err := vendor.LoadFile(cfg.VendorsFile)
	if err != nil {
		logger.Error("vendor config error", slog.Any("error", err))
		return
	}
	registry, err := vendor.Build(specs, &http.Client{Timeout: cfg.Orchestration.HTTPTimeout}, metrics, logger)
	if err != nil {
		logger.Error("vendor registry error", slog.Any("error", err))
		return
	}
	orch := usecase.NewOrchestrator(registry, st.metrics, st.campaigns, logger, usecase.WithOrchestratorMetrics(metrics))

	var lock port.CycleLock = memory.NewCycleLock()
	if cfg.Redis.Addr != "" {
		rdb, err := redislock.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		host, _ := os.Hostname()
		lock = redislock.New(rdb, "", fmt.Sprintf("%s-%d", host, os.Getpid()), cfg.Redis.LockTTL)
	}

	var publisher port.DecisionPublisher
	if cfg.Kafka.Enabled() {
		writer := kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.DecisionsTopic)
		p := kafka.NewPublisher(writer, cfg.Kafka.WriteTimeout)
		defer func() {
			if err := p.Close(); err != nil {
				logger.Error("kafka writer close error", slog.Any("error", err))
			}
		}()
		publisher = p
	}

	engine, err := usecase.NewEngine(usecase.EngineDeps{
		SKUs:         st.skus,
		Campaigns:    st.campaigns,
		Decisions:    st.decisions,
		Metrics:      st.metrics,
		Orchestrator: orch,
		Lock:         lock,
		Publisher:    publisher,
	}, cfg.Intelligence.Settings(), logger,
		usecase.WithWorkers(cfg.Intelligence.Workers),
		usecase.WithCycleDeadline(cfg.Intelligence.CycleDeadline),
		usecase.WithEngineMetrics(metrics),
	)
	if err != nil {
		logger.Error("engine setup error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Engine:       engine,
		Orchestrator: orch,
		SKUs:         st.skus,
		Campaigns:    st.campaigns,
		Decisions:    st.decisions,
	}, logger, metrics.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		if cfg.Scheduler.Enabled {
			runScheduler(ctx, engine, cfg.Scheduler.Interval, logger)
		}
	}()

	<-ctx.Done()
	exitCode = 0
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
	<-schedDone
}

// openStores connects the configured storage and metrics drivers. The
// returned func releases every connection it opened.
func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, func(), error) {
	var (
		st      stores
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return st, closeAll, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return st, closeAll, fmt.Errorf("postgres: %w", err)
		}
		closers = append(closers, pool.Close)
		if cfg.Psql.Seed {
			if err := db.Seed(ctx, pool); err != nil {
				return st, closeAll, err
			}
			logger.Info("demo data seeded")
		}
		st.skus = postgres.NewSKURepository(pool)
		st.campaigns = postgres.NewCampaignRepository(pool)
		st.decisions = postgres.NewDecisionRepository(pool)
		if cfg.MetricsDriver == config.DriverPostgres {
			st.metrics = postgres.NewMetricsStore(pool)
		}
	default:
		logger.Warn("using in-memory storage, state is lost on exit")
		st.skus = memory.NewSKUStore()
		st.campaigns = memory.NewCampaignStore()
		st.decisions = memory.NewDecisionStore()
	}

	switch cfg.MetricsDriver {
	case config.DriverClickHouse:
		conn, err := clickhouse.NewConn(ctx, cfg.ClickHouse.DSN)
		if err != nil {
			return st, closeAll, fmt.Errorf("clickhouse: %w", err)
		}
		closers = append(closers, func() { _ = conn.Close() })
		if err := clickhouse.EnsureSchema(ctx, conn); err != nil {
			return st, closeAll, err
		}
		st.metrics = clickhouse.NewMetricsStore(conn)
	case config.DriverMemory:
		st.metrics = memory.NewMetricsStore()
	}
	return st, closeAll, nil
}
