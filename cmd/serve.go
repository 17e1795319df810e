package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/groundtruth/internal/config"
	"github.com/UnknownOlympus/groundtruth/internal/elevation"
	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/UnknownOlympus/groundtruth/internal/metrics"
	"github.com/UnknownOlympus/groundtruth/internal/repository"
	"github.com/UnknownOlympus/groundtruth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "poll the fixes table and store NED offsets for new fixes",
		Action: serve,
	}
}

func serve(_ *cli.Context) error {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	converter, err := geodetic.NewConverter(cfg.Reference, geodetic.WGS84, cfg.ConverterOptions())
	if err != nil {
		return fmt.Errorf("failed to set up converter: %w", err)
	}

	dtb, err := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	if err = repository.EnsureSchema(ctx, dtb); err != nil {
		return err
	}

	repo := repository.NewRepository(dtb, logger)

	providerConfig := elevation.ProviderConfig{
		Type:          elevation.ProviderType(cfg.ProviderType),
		APIKey:        cfg.APIKey,
		RateLimit:     cfg.RateLimit,
		FixedAltitude: cfg.Reference.Altitude,
		Logger:        logger,
	}

	provider, err := elevation.NewProvider(providerConfig)
	if err != nil {
		return fmt.Errorf("failed to create elevation provider: %w", err)
	}

	logger.InfoContext(ctx, "Elevation provider initialized", "type", cfg.ProviderType)

	gtService := service.NewGroundTruthService(
		logger,
		repo,
		converter,
		provider,
		cfg.ProviderType, // Provider name for metrics
		appMetrics,
		cfg.Workers,
		cfg.Interval,
	)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.",
		"mode", cfg.Mode, "reference", cfg.Reference)

	go startMonitoringServer(ctx, logger, reg, dtb, cfg.Port)

	go gtService.Run(ctx)

	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")
	logger.InfoContext(ctx, "Application stopped gracefully.")

	return nil
}
