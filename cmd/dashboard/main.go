package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/quizwizard-backend/api/routes"
	"github.com/angelmondragon/quizwizard-backend/internal/dashboard"
	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	"github.com/angelmondragon/quizwizard-backend/internal/quizview"
	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	"github.com/angelmondragon/quizwizard-backend/pkg/instance"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "dashboard"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	cfg.Service.Kind = "dashboard"

	logg = logger.New(logger.Options{
		ServiceName: "dashboard",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	itemsClient, err := itemsclient.NewClient(
		cfg.Items.ResolveBaseURL(cfg.App),
		itemsclient.WithTimeout(cfg.Items.RequestTimeout),
		itemsclient.WithDemoModeOnFailure(cfg.Items.DemoModeOnFailure),
		itemsclient.WithLogger(logg),
		itemsclient.WithMetrics(metrics.NewItemsClientMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create items client", err)
		os.Exit(1)
	}

	decorator := quizview.NewDecorator(
		quizview.WithMetricsSource(quizview.NewMetricsSource(cfg.Dashboard.FabricateMetrics, quizview.NewRandomSampler())),
	)
	manager, err := dashboard.NewManager(itemsClient, decorator, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create quiz manager", err)
		os.Exit(1)
	}
	creator, err := dashboard.NewCreator(itemsClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create quiz creator", err)
		os.Exit(1)
	}

	addr := ":" + cfg.Dashboard.Port
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":               cfg.App.Env,
		"addr":              addr,
		"items_base_url":    itemsClient.BaseURL(),
		"demo_mode":         cfg.Items.DemoModeOnFailure,
		"fabricate_metrics": cfg.Dashboard.FabricateMetrics,
		"instance":          instance.GetID(),
	})
	logg.Info(ctx, "starting dashboard server")

	obs := routes.Observability{
		Gatherer:    prometheus.DefaultGatherer,
		HTTPMetrics: metrics.NewHTTPMetrics(prometheus.DefaultRegisterer, "dashboard"),
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewDashboardRouter(cfg, logg, manager, creator, obs),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "dashboard server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "dashboard shutdown failed", err)
		}
	}
	logg.Info(ctx, "dashboard server shut down gracefully")
}
