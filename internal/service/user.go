package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/internal/repo"
	"github.com/mkravets/ecommerce_api/internal/transport"
	"github.com/mkravets/ecommerce_api/internal/validation"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user", id)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := s.checkEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser overwrites all mutable fields together, no partial update.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req transport.CreateUserRequest) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user", id)
	}

	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := s.checkEmailFree(ctx, req.Email, id); err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Address = req.Address
	user.Email = req.Email

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return asNotFound(err, "user", id)
	}
	return nil
}

func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("user with email %q %w", email, ErrConflict)
	}
	return nil
}
