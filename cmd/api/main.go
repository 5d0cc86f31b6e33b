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

	"github.com/angelmondragon/quizwizard-backend/api/controllers"
	"github.com/angelmondragon/quizwizard-backend/api/routes"
	"github.com/angelmondragon/quizwizard-backend/internal/events"
	"github.com/angelmondragon/quizwizard-backend/internal/items"
	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	"github.com/angelmondragon/quizwizard-backend/pkg/instance"
	"github.com/angelmondragon/quizwizard-backend/pkg/db"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
	"github.com/angelmondragon/quizwizard-backend/pkg/migrate"
	"github.com/angelmondragon/quizwizard-backend/pkg/pubsub"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.LoadWithDB()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	readiness := []controllers.ReadinessCheck{{Name: "db", Pinger: dbClient}}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.PubSub.Enabled(cfg.GCP) {
		psClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := psClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()

		itemsTopic := psClient.ItemsPublisher()
		defer itemsTopic.Stop()

		publisher, err = events.NewPubSubPublisher(itemsTopic, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create item event publisher", err)
			os.Exit(1)
		}
		readiness = append(readiness, controllers.ReadinessCheck{Name: "pubsub", Pinger: psClient})
	}

	itemsService, err := items.NewService(items.NewRepository(dbClient.DB()), publisher, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create items service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"driver":   cfg.DB.Driver,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	obs := routes.Observability{
		Gatherer:    prometheus.DefaultGatherer,
		HTTPMetrics: metrics.NewHTTPMetrics(prometheus.DefaultRegisterer, "api"),
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewAPIRouter(cfg, logg, itemsService, obs, readiness...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := serve(ctx, server); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server shut down gracefully")
}

func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
