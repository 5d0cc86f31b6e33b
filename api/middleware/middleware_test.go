package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
)

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	h := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected propagated id, got %q", got)
	}
}

func TestRequestIDRejectsMalformedInbound(t *testing.T) {
	var seen string
	h := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestIDFromContext(r.Context())
	}))

	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", maxRequestIDBytes+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, bad)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		got := w.Header().Get(requestIDHeader)
		if got == bad || got == "" {
			t.Fatalf("expected a minted id for %q, got %q", bad, got)
		}
		if seen != got {
			t.Fatalf("expected context id %q, got %q", got, seen)
		}
	}
}

func TestRecovererWritesInternalError(t *testing.T) {
	h := Recoverer(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := newStatusRecorder(httptest.NewRecorder())
	if rec.Status() != http.StatusOK {
		t.Fatalf("expected default 200, got %d", rec.Status())
	}
	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusTeapot)
	if rec.Status() != http.StatusCreated {
		t.Fatalf("expected first status to win, got %d", rec.Status())
	}
	if newStatusRecorder(rec) != rec {
		t.Fatal("expected recorder reuse")
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg, "dashboard")

	r := chi.NewRouter()
	r.Use(Metrics(m), Logging(logger.Nop()))
	r.Delete("/dashboard/quizzes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/dashboard/quizzes/7", nil))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "quizwizard_http_requests_total" {
			continue
		}
		if len(mf.GetMetric()) != 1 {
			t.Fatalf("expected one request series, got %d", len(mf.GetMetric()))
		}
		for _, label := range mf.GetMetric()[0].GetLabel() {
			if label.GetName() == "route" && label.GetValue() != "/dashboard/quizzes/{id}" {
				t.Fatalf("unexpected route label %q", label.GetValue())
			}
		}
		return
	}
	t.Fatal("request counter not registered")
}
