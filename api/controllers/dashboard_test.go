package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/quizwizard-backend/internal/dashboard"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/enums"
)

type stubManager struct {
	overview dashboard.Overview
	outcome  dashboard.DeleteOutcome
	err      error
	deleted  int64
}

func (s *stubManager) Load(context.Context) dashboard.Overview { return s.overview }

func (s *stubManager) Delete(_ context.Context, id int64) (dashboard.DeleteOutcome, error) {
	s.deleted = id
	return s.outcome, s.err
}

type stubCreator struct {
	outcome   dashboard.SubmitOutcome
	next      dashboard.State
	err       error
	submitted *dashboard.State
}

func (s *stubCreator) Submit(context.Context, dashboard.FormState) (dashboard.SubmitOutcome, error) {
	return s.outcome, s.err
}

func (s *stubCreator) SubmitState(_ context.Context, st dashboard.State) (dashboard.State, error) {
	s.submitted = &st
	return s.next, s.err
}

func TestDashboardQuizzes(t *testing.T) {
	manager := &stubManager{overview: dashboard.Overview{Fallback: true, Banner: dashboard.FallbackBanner}}
	rec := httptest.NewRecorder()

	DashboardQuizzes(manager).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/quizzes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data dashboard.Overview `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Fallback || envelope.Data.Banner != dashboard.FallbackBanner {
		t.Fatalf("unexpected overview %+v", envelope.Data)
	}
}

func TestDashboardDeleteQuiz(t *testing.T) {
	manager := &stubManager{outcome: dashboard.DeleteOutcome{Existed: true}}
	r := chi.NewRouter()
	r.Delete("/dashboard/quizzes/{id}", DashboardDeleteQuiz(manager, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/dashboard/quizzes/12", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if manager.deleted != 12 {
		t.Fatalf("expected delete of 12 got %d", manager.deleted)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/dashboard/quizzes/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDashboardCreateQuizErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: pkgerrors.New(pkgerrors.CodeValidation, "quiz form is invalid"), status: http.StatusBadRequest},
		{name: "backend", err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("503"), "create request failed"), status: http.StatusServiceUnavailable},
		{name: "ok", status: http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := &stubCreator{err: tc.err}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/dashboard/quizzes", strings.NewReader(`{"product":"Cat Tree","price":"10","min_discount":"5","max_discount":"10"}`))

			DashboardCreateQuiz(creator, nil).ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected %d got %d", tc.status, rec.Code)
			}
		})
	}
}

func TestDashboardPricingPreview(t *testing.T) {
	cases := []struct {
		query     string
		available bool
		low       float64
		high      float64
	}{
		{query: "price=100&min_discount=10&max_discount=25", available: true, low: 75, high: 90},
		{query: "price=abc&min_discount=10&max_discount=25", available: false},
		{query: "price=100&min_discount=30&max_discount=10", available: false},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		DashboardPricingPreview().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/pricing/preview?"+tc.query, nil))

		var envelope struct {
			Data PricePreview `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("%s: decode response: %v", tc.query, err)
		}
		if envelope.Data.Available != tc.available {
			t.Fatalf("%s: expected available=%v", tc.query, tc.available)
		}
		if !tc.available {
			if envelope.Data.Low != nil || envelope.Data.High != nil {
				t.Fatalf("%s: expected no prices", tc.query)
			}
			continue
		}
		if *envelope.Data.Low != tc.low || *envelope.Data.High != tc.high {
			t.Fatalf("%s: unexpected range %v-%v", tc.query, *envelope.Data.Low, *envelope.Data.High)
		}
	}
}

func TestDashboardPricingPreviewSingleDiscount(t *testing.T) {
	rec := httptest.NewRecorder()
	DashboardPricingPreview().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/pricing/preview?price=89.99&discount=15", nil))

	var envelope struct {
		Data PricePreview `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Discounted == nil || *envelope.Data.Discounted != 76.49 {
		t.Fatalf("unexpected discounted price %+v", envelope.Data)
	}
}

func TestDashboardStateReduces(t *testing.T) {
	body := `{"state":{"tab":"posts","form":{"product":"","category":"","price":"","min_discount":"","max_discount":"","coupon":"","duration":"","product_url":""},"submitting":false},"action":{"type":"select_tab","tab":"manage"}}`
	rec := httptest.NewRecorder()

	DashboardState(&stubCreator{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard/state", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data dashboard.State `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Tab != enums.DashboardTabManage {
		t.Fatalf("expected manage tab got %s", envelope.Data.Tab)
	}
}

func TestDashboardStateUnknownAction(t *testing.T) {
	rec := httptest.NewRecorder()
	DashboardState(&stubCreator{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard/state", strings.NewReader(`{"state":{"tab":"posts"},"action":{"type":"explode"}}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDashboardStateSubmit(t *testing.T) {
	notice := dashboard.Notice{Kind: dashboard.NoticeDemo, Title: "Quiz Created (Demo Mode)"}
	creator := &stubCreator{next: dashboard.State{Tab: enums.DashboardTabCreate, Notice: &notice}}
	rec := httptest.NewRecorder()

	DashboardState(creator, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard/state", strings.NewReader(`{"state":{"tab":"create","form":{"product":"Cat Tree"}},"action":{"type":"submit"}}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if creator.submitted == nil || creator.submitted.Form.Product != "Cat Tree" {
		t.Fatalf("expected submitted state, got %+v", creator.submitted)
	}
}
