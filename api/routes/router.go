package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/quizwizard-backend/api/controllers"
	"github.com/angelmondragon/quizwizard-backend/api/middleware"
	"github.com/angelmondragon/quizwizard-backend/internal/dashboard"
	"github.com/angelmondragon/quizwizard-backend/internal/items"
	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
)

// Observability bundles the Prometheus registry served on /metrics and the request metrics recorded into it.
type Observability struct {
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func (o Observability) metricsHandler() http.Handler {
	if o.Gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{})
}

func baseRouter(logg *logger.Logger, obs Observability, extra ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(obs.HTTPMetrics),
	)
	r.Use(extra...)
	r.Handle("/metrics", obs.metricsHandler())
	return r
}

// NewAPIRouter serves the item backend.
func NewAPIRouter(
	cfg *config.Config,
	logg *logger.Logger,
	itemsService items.Service,
	obs Observability,
	readiness ...controllers.ReadinessCheck,
) http.Handler {
	r := baseRouter(logg, obs)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness...))
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", controllers.ListItems(itemsService, logg))
		r.Post("/", controllers.CreateItem(itemsService, logg))
		r.Delete("/", controllers.DeleteItem(itemsService, logg))
	})

	return r
}

// NewDashboardRouter serves the headless dashboard.
func NewDashboardRouter(
	cfg *config.Config,
	logg *logger.Logger,
	manager *dashboard.Manager,
	creator *dashboard.Creator,
	obs Observability,
) http.Handler {
	r := baseRouter(logg, obs, middleware.CORS(cfg.Dashboard.CORSOrigins))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg))
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/quizzes", controllers.DashboardQuizzes(manager))
		r.Post("/quizzes", controllers.DashboardCreateQuiz(creator, logg))
		r.Delete("/quizzes/{id}", controllers.DashboardDeleteQuiz(manager, logg))
		r.Get("/pricing/preview", controllers.DashboardPricingPreview())
		r.Post("/state", controllers.DashboardState(creator, logg))
	})

	return r
}
