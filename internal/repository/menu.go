package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
)

type MenuRepository interface {
	List(ctx context.Context) ([]*model.MenuItem, error)
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, id string, fields *dto.MenuItemUpdate) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepoImpl struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepoImpl{
		db: db,
	}
}

func (r *menuRepoImpl) List(ctx context.Context) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	err := r.db.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *menuRepoImpl) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *menuRepoImpl) Create(ctx context.Context, item *model.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepoImpl) Update(ctx context.Context, id string, fields *dto.MenuItemUpdate) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     fields.Name,
			"category": fields.Category,
			"price":    fields.Price,
			"recipe":   fields.Recipe,
			"image":    fields.Image,
		})

	return result.RowsAffected, result.Error
}

func (r *menuRepoImpl) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItem{})

	return result.RowsAffected, result.Error
}

func (r *menuRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&count).Error
	return count, err
}
