package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
)

func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logg.Info(ctx, "request.start")
			}

			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r.WithContext(ctx))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"status":      rec.Status(),
					"duration_ms": time.Since(start).Milliseconds(),
				})
				logg.Info(ctx, "request.complete")
			}
		})
	}
}
