package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/quizwizard-backend/api/responses"
	"github.com/angelmondragon/quizwizard-backend/api/validators"
	"github.com/angelmondragon/quizwizard-backend/internal/dashboard"
	"github.com/angelmondragon/quizwizard-backend/internal/pricing"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
)

// submitActionType runs the create flow instead of a plain reducer step.
const submitActionType = "submit"

type quizManager interface {
	Load(ctx context.Context) dashboard.Overview
	Delete(ctx context.Context, id int64) (dashboard.DeleteOutcome, error)
}

type quizCreator interface {
	Submit(ctx context.Context, form dashboard.FormState) (dashboard.SubmitOutcome, error)
	SubmitState(ctx context.Context, s dashboard.State) (dashboard.State, error)
}

// DashboardQuizzes returns the decorated quiz list with summary stats.
func DashboardQuizzes(manager quizManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, manager.Load(r.Context()))
	}
}

// DashboardCreateQuiz submits the create-quiz form.
func DashboardCreateQuiz(creator quizCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form dashboard.FormState
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := creator.Submit(r.Context(), form)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, outcome)
	}
}

// DashboardDeleteQuiz deletes the quiz named by the {id} path parameter.
func DashboardDeleteQuiz(manager quizManager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := manager.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, outcome)
	}
}

// PricePreview is the live pricing shown beside the create form.
type PricePreview struct {
	Available  bool     `json:"available"`
	Low        *float64 `json:"low,omitempty"`
	High       *float64 `json:"high,omitempty"`
	Discounted *float64 `json:"discounted,omitempty"`
}

// DashboardPricingPreview prices raw form text. Unparseable input yields available=false, never an error.
func DashboardPricingPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		price := q.Get("price")

		var preview PricePreview
		if rng, ok := pricing.RangeFromText(price, q.Get("min_discount"), q.Get("max_discount")); ok {
			low, high := rng.Low.InexactFloat64(), rng.High.InexactFloat64()
			preview.Low, preview.High = &low, &high
			preview.Available = true
		}
		if discount := q.Get("discount"); discount != "" {
			if value, ok := pricing.PreviewFromText(price, discount); ok {
				discounted := value.InexactFloat64()
				preview.Discounted = &discounted
				preview.Available = true
			}
		}
		responses.WriteSuccess(w, preview)
	}
}

type stateRequest struct {
	State  dashboard.State     `json:"state"`
	Action dashboard.RawAction `json:"action"`
}

// DashboardState applies one action to the posted view state and returns the next state.
// The "submit" action runs the create flow against the item backend.
func DashboardState(creator quizCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if req.Action.Type == submitActionType {
			next, err := creator.SubmitState(r.Context(), req.State)
			if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			// other failures are already reflected in the state's notice
			responses.WriteSuccess(w, next)
			return
		}

		action, err := dashboard.ParseAction(req.Action)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		responses.WriteSuccess(w, dashboard.Reduce(req.State, action))
	}
}
