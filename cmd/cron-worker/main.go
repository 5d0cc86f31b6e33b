package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/quizwizard-backend/internal/cron"
	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	"github.com/angelmondragon/quizwizard-backend/pkg/instance"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
	"github.com/angelmondragon/quizwizard-backend/pkg/redis"
)

const sweeperLockName = "expiry-sweeper"

func main() {
	once := flag.Bool("once", false, "run a single sweep cycle and exit")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "cron-worker"

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	lock, closeLock, err := newLock(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cron lock", err)
		os.Exit(1)
	}
	defer closeLock()

	// deletes must fail loudly here; a masked failure would count as swept
	itemsClient, err := itemsclient.NewClient(
		cfg.Items.ResolveBaseURL(cfg.App),
		itemsclient.WithTimeout(cfg.Items.RequestTimeout),
		itemsclient.WithDemoModeOnFailure(false),
		itemsclient.WithLogger(logg),
		itemsclient.WithMetrics(metrics.NewItemsClientMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create items client", err)
		os.Exit(1)
	}

	sweeper, err := cron.NewExpirySweeperJob(cron.ExpirySweeperJobParams{
		Logger:    logg,
		Items:     itemsClient,
		GraceDays: &cfg.Sweeper.GraceDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create expiry sweeper", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(sweeper),
		Lock:     lock,
		Metrics:  metrics.NewCronJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Sweeper.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":            cfg.App.Env,
		"serviceKind":    cfg.Service.Kind,
		"items_base_url": itemsClient.BaseURL(),
		"interval":       service.Interval().String(),
		"grace_days":     cfg.Sweeper.GraceDays,
		"instance":       instance.GetID(),
	})

	if *once {
		logg.Info(ctx, "running single sweep cycle")
		if err := service.RunOnce(ctx); err != nil {
			logg.Error(ctx, "sweep cycle failed", err)
			os.Exit(1)
		}
		return
	}

	logg.Info(ctx, "starting cron worker")
	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "cron worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "cron worker shutting down gracefully")
}

// newLock prefers a Redis lock shared across replicas and falls back to an in-process lock.
func newLock(cfg *config.Config, logg *logger.Logger) (cron.Lock, func(), error) {
	if !cfg.Redis.Enabled() {
		logg.Warn(context.Background(), "redis not configured; using in-process cron lock")
		return cron.NewLocalLock(), func() {}, nil
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}

	env := cfg.App.Env
	if env == "" {
		env = "local"
	}
	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey(sweeperLockName, env), cfg.Sweeper.LockTTL)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return lock, closeFn, nil
}
