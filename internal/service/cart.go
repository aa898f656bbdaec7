package service

import (
	"context"

	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
)

type CartService interface {
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) error
	Remove(ctx context.Context, id string) (int64, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return s.cartRepo.ListByEmail(ctx, email)
}

func (s *cartServiceImpl) Add(ctx context.Context, item *model.CartItem) error {
	return s.cartRepo.Create(ctx, item)
}

func (s *cartServiceImpl) Remove(ctx context.Context, id string) (int64, error) {
	return s.cartRepo.Delete(ctx, id)
}
