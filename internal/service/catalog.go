package service

import (
	"context"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
)

type CatalogService interface {
	ListMenu(ctx context.Context) ([]*model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	AddMenuItem(ctx context.Context, item *model.MenuItem) error
	UpdateMenuItem(ctx context.Context, id string, fields *dto.MenuItemUpdate) (int64, error)
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
}

type catalogServiceImpl struct {
	menuRepo   repository.MenuRepository
	reviewRepo repository.ReviewRepository
}

func NewCatalogService(menuRepo repository.MenuRepository, reviewRepo repository.ReviewRepository) CatalogService {
	return &catalogServiceImpl{
		menuRepo:   menuRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *catalogServiceImpl) ListMenu(ctx context.Context) ([]*model.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

func (s *catalogServiceImpl) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	return s.menuRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) AddMenuItem(ctx context.Context, item *model.MenuItem) error {
	return s.menuRepo.Create(ctx, item)
}

func (s *catalogServiceImpl) UpdateMenuItem(ctx context.Context, id string, fields *dto.MenuItemUpdate) (int64, error) {
	return s.menuRepo.Update(ctx, id, fields)
}

func (s *catalogServiceImpl) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	return s.menuRepo.Delete(ctx, id)
}

func (s *catalogServiceImpl) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.List(ctx)
}
