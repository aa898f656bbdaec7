package service

import (
	"context"
	"fmt"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/repository"
)

type AnalyticsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
	OrderStats(ctx context.Context) ([]*dto.CategoryStat, error)
}

type analyticsServiceImpl struct {
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	paymentRepo repository.PaymentRepository
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	paymentRepo repository.PaymentRepository,
) AnalyticsService {
	return &analyticsServiceImpl{
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *analyticsServiceImpl) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	menuItems, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}

	orders, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum payment revenue: %w", err)
	}

	return &dto.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

func (s *analyticsServiceImpl) OrderStats(ctx context.Context) ([]*dto.CategoryStat, error) {
	stats, err := s.paymentRepo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}

	return stats, nil
}
