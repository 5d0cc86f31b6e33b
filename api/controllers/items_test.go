package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

type stubItemsService struct {
	list      []types.Item
	created   types.Item
	deleted   types.Item
	err       error
	lastReq   types.CreateItemRequest
	deletedID int64
}

func (s *stubItemsService) List(context.Context) ([]types.Item, error) {
	return s.list, s.err
}

func (s *stubItemsService) Create(_ context.Context, req types.CreateItemRequest) (types.Item, error) {
	s.lastReq = req
	return s.created, s.err
}

func (s *stubItemsService) Delete(_ context.Context, id int64) (types.Item, error) {
	s.deletedID = id
	return s.deleted, s.err
}

func TestListItemsReturnsBareArray(t *testing.T) {
	svc := &stubItemsService{list: []types.Item{{ID: 1, Product: "Cat Tree"}}}
	rec := httptest.NewRecorder()

	ListItems(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var items []types.Item
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Product != "Cat Tree" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestCreateItemAcceptsSingletonArray(t *testing.T) {
	svc := &stubItemsService{created: types.Item{ID: 9, Product: "Cat Tree"}}
	body := `[{"product":"Cat Tree","price":89.99,"min_discount":10,"max_discount":25,"coupon":"tree","duration":7}]`
	rec := httptest.NewRecorder()

	CreateItem(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items/", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastReq.Product != "Cat Tree" || svc.lastReq.MaxDiscount != 25 {
		t.Fatalf("unexpected request %+v", svc.lastReq)
	}
	var item types.Item
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.ID != 9 {
		t.Fatalf("expected id 9 got %d", item.ID)
	}
}

func TestCreateItemRejectsInvertedDiscounts(t *testing.T) {
	svc := &stubItemsService{}
	body := `{"product":"Cat Tree","price":10,"min_discount":40,"max_discount":20,"duration":7}`
	rec := httptest.NewRecorder()

	CreateItem(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/items/", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastReq.Product != "" {
		t.Fatal("service should not be called for invalid input")
	}
}

func TestDeleteItem(t *testing.T) {
	svc := &stubItemsService{deleted: types.Item{ID: 4, Product: "Dog Bed"}}
	rec := httptest.NewRecorder()

	DeleteItem(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/items/", strings.NewReader(`{"id":4}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.deletedID != 4 {
		t.Fatalf("expected delete of 4 got %d", svc.deletedID)
	}
	var body struct {
		Message string     `json:"message"`
		Deleted types.Item `json:"deleted"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Item deleted successfully" || body.Deleted.ID != 4 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc := &stubItemsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")}
	rec := httptest.NewRecorder()

	DeleteItem(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/items/", strings.NewReader(`{"id":77}`)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) || envelope.Error.Message != "Item not found" {
		t.Fatalf("unexpected error %+v", envelope.Error)
	}
}
