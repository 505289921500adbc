package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/api"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/repository/clickhouse"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/repository/postgres"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/service/ingester"
	"github.com/goodnatureofminers/chainweb-ingester/internal/config"
	"github.com/goodnatureofminers/chainweb-ingester/internal/metrics"
	"github.com/goodnatureofminers/chainweb-ingester/internal/transport"
)

type cliConfig struct {
	Environment string `long:"environment" env:"APP_ENVIRONMENT" description:"settings overlay (local or production)" default:"local"`
	ConfigDir   string `long:"config-dir" env:"APP_CONFIG_DIR" description:"directory with base.yaml and the overlays" default:"configuration"`
	DatabaseDSN string `long:"database-dsn" env:"APP_DATABASE_DSN" description:"overrides database.dsn from the settings"`
	MetricsAddr string `long:"metrics-addr" env:"METRICS_ADDR" description:"address for metrics and status server" default:":9090"`
}

type store interface {
	ingester.Repository
	ingester.HeadRepository
	Close() error
}

func main() {
	cfg := cliConfig{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	env, err := config.ParseEnvironment(cfg.Environment)
	if err != nil {
		panic(err.Error())
	}

	logger, err := newLogger(env)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := config.Load(cfg.ConfigDir, env)
	if err != nil {
		logger.Fatal("failed to load settings", zap.Error(err))
	}
	if cfg.DatabaseDSN != "" {
		settings.Database.DSN = cfg.DatabaseDSN
	}
	if settings.Database.DSN == "" {
		logger.Fatal("database DSN is required")
	}

	if err := run(ctx, cfg, settings, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("chainweb ingester failed", zap.Error(err))
	}
	logger.Info("chainweb ingester stopped")
}

func newLogger(env config.Environment) (*zap.Logger, error) {
	if env == config.Production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg cliConfig, settings config.Settings, logger *zap.Logger) error {
	status := ingester.NewStatusRegistry()
	startMetricsServer(ctx, cfg.MetricsAddr, status, logger)

	repo, err := newStore(ctx, settings.Database)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	policy := api.RetryPolicy{
		InitialInterval:     settings.Retry.InitialInterval,
		MaxInterval:         settings.Retry.MaxInterval,
		MaxElapsedTime:      settings.Retry.MaxElapsedTime,
		Multiplier:          settings.Retry.Multiplier,
		RandomizationFactor: settings.Retry.RandomizationFactor,
		MaxRetries:          settings.Retry.MaxRetries,
	}
	client, err := api.NewClient(api.Config{
		BaseURL:           settings.Application.Host,
		Retry:             policy,
		RequestsPerSecond: settings.Application.RequestsPerSecond,
		RequestTimeout:    settings.Application.RequestTimeout,
	}, metrics.NewAPIClient(), logger)
	if err != nil {
		return fmt.Errorf("init chainweb client: %w", err)
	}

	app := settings.Application
	orchestrator, err := ingester.Build(ctx, ingester.Config{
		NumberOfChains:   app.NumberOfChains,
		ChainForkHeight:  app.ChainForkHeight,
		Limit:            app.Limit,
		MinHeight:        app.MinHeight,
		MaxHeight:        app.MaxHeight,
		Rounds:           app.Rounds,
		FallbackWorkers:  app.FallbackWorkers,
		IdleDelay:        app.IdleDelay,
		FailureDelay:     app.FailureDelay,
		PayloadBatchSize: app.PayloadBatchSize,
		PayloadWorkers:   app.PayloadWorkers,
		PayloadCacheSize: app.PayloadCacheSize,
		FollowHeads:      app.FollowHeads,
		FrontierInterval: app.FrontierInterval,
	}, ingester.Dependencies{
		API:             client,
		Repository:      repo,
		Heads:           repo,
		Stream:          client,
		Frontier:        client,
		Metrics:         metrics.NewChainIngester(),
		HeadMetrics:     metrics.NewHeadFollower(),
		FrontierMetrics: metrics.NewFrontierMonitor(),
		Status:          status,
		BackOff:         policy.BackOff,
	}, logger)
	if err != nil {
		return fmt.Errorf("build orchestrator: %w", err)
	}

	logger.Info("starting chainweb ingester",
		zap.String("host", app.Host),
		zap.String("driver", settings.Database.Driver),
		zap.Uint64("chains", app.NumberOfChains),
		zap.Uint64("limit", app.Limit),
	)
	return orchestrator.Run(ctx)
}

func newStore(ctx context.Context, db config.DatabaseSettings) (store, error) {
	switch db.Driver {
	case config.DriverClickHouse:
		return clickhouse.NewRepository(ctx, db.DSN, metrics.NewRepository(config.DriverClickHouse))
	case config.DriverPostgres:
		return postgres.NewRepository(ctx, db.DSN, metrics.NewRepository(config.DriverPostgres))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}

func startMetricsServer(ctx context.Context, addr string, status transport.StatusSource, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           transport.NewHandler(status, promhttp.Handler(), logger),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
