package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/angelmondragon/quizwizard-backend/api/responses"
	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
)

const (
	envHeader        = "X-QuizWizard-Env"
	readinessTimeout = 2 * time.Second
)

// Pinger is any dependency that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names a dependency probed by /health/ready. A nil Pinger is skipped.
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var combined error
		failures := map[string]string{}
		for _, check := range checks {
			if check.Pinger == nil {
				continue
			}
			if err := check.Pinger.Ping(ctx); err != nil {
				failures[check.Name] = err.Error()
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", check.Name, err))
			}
		}

		if combined != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependencies not ready").WithDetails(failures))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
