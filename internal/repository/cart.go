package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro-boss-api/internal/model"
)

type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

// DeleteMany removes every cart item whose id is in ids in a single
// statement and reports how many rows matched.
func (r *cartRepoImpl) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
