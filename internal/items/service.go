// Package items implements the discount item backend behind /api/items/.
package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/quizwizard-backend/internal/events"
	"github.com/angelmondragon/quizwizard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/go-playground/validator/v10"
)

type itemsRepository interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id int64) (*models.Item, error)
}

// Service exposes item listing, creation, and deletion.
type Service interface {
	List(ctx context.Context) ([]types.Item, error)
	Create(ctx context.Context, req types.CreateItemRequest) (types.Item, error)
	Delete(ctx context.Context, id int64) (types.Item, error)
}

type service struct {
	repo      itemsRepository
	publisher events.Publisher
	logg      *logger.Logger
	validate  *validator.Validate
}

// NewService builds the item service. A nil publisher disables events.
func NewService(repo itemsRepository, publisher events.Publisher, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logg: logg, validate: newValidator()}, nil
}

func (s *service) List(ctx context.Context) ([]types.Item, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list items")
	}
	return toWireList(rows), nil
}

func (s *service) Create(ctx context.Context, req types.CreateItemRequest) (types.Item, error) {
	req = normalizeRequest(req)
	if err := s.validate.Struct(req); err != nil {
		return types.Item{}, validationError(err)
	}

	created, err := s.repo.Create(ctx, fromRequest(req))
	if err != nil {
		return types.Item{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
	}
	item := toWire(*created)

	ctx = s.logg.WithItemID(ctx, item.ID)
	s.logg.Info(ctx, "item created")
	if err := s.publisher.PublishItemCreated(ctx, item); err != nil {
		s.logg.Error(ctx, "publish item created failed", err)
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, id int64) (types.Item, error) {
	if id <= 0 {
		return types.Item{}, pkgerrors.New(pkgerrors.CodeValidation, "id must be positive")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.Item{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Item not found")
		}
		return types.Item{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item")
	}
	s.logg.Info(s.logg.WithItemID(ctx, id), "item deleted")
	return toWire(*deleted), nil
}
