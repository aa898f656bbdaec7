package repository

import (
	"context"

	"gorm.io/gorm"

	"bistro-boss-api/internal/model"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]*model.Review, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) List(ctx context.Context) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
