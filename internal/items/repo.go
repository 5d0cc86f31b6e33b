package items

import (
	"context"
	"errors"

	"github.com/angelmondragon/quizwizard-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no item matches the requested id.
var ErrNotFound = errors.New("item not found")

// Repository encapsulates discount item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an item repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every stored item in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.Item, error) {
	var rows []models.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts the item and returns it with its generated id and timestamp.
func (r *Repository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item == nil {
		return nil, gorm.ErrInvalidValue
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item and returns the row as it was before deletion.
func (r *Repository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	var deleted models.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
