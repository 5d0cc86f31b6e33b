package controllers

import (
	"net/http"

	"github.com/angelmondragon/quizwizard-backend/api/responses"
	"github.com/angelmondragon/quizwizard-backend/api/validators"
	"github.com/angelmondragon/quizwizard-backend/internal/items"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

const itemDeletedMessage = "Item deleted successfully"

// ListItems returns every item as a bare JSON array.
func ListItems(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, list)
	}
}

// CreateItem accepts an item object, or an array holding one, and echoes the stored item.
func CreateItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		var req types.CreateItemRequest
		if err := validators.DecodeJSONObjectOrSingleton(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusCreated, item)
	}
}

// DeleteItem removes the item whose id is given in the JSON body.
func DeleteItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		var req types.DeleteItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := svc.Delete(r.Context(), req.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, types.DeleteResponse{Message: itemDeletedMessage, Deleted: deleted})
	}
}
