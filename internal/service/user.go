package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
)

type UserService interface {
	// Register inserts the user unless the email is already taken. The
	// returned id is empty when the user already existed.
	Register(ctx context.Context, user *model.User) (string, error)
	// IsAdmin resolves the role for an email. An unknown email is not an
	// error: it resolves to false.
	IsAdmin(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id string) (int64, error)
	PromoteToAdmin(ctx context.Context, id string) (int64, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, user *model.User) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return "", nil
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	return user.ID, nil
}

func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user by email: %w", err)
	}

	return user.Role == model.RoleAdmin, nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) Delete(ctx context.Context, id string) (int64, error) {
	return s.userRepo.Delete(ctx, id)
}

func (s *userServiceImpl) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	return s.userRepo.SetRole(ctx, id, model.RoleAdmin)
}
