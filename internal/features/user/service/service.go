package service

import (
	"context"

	"supermercado-backend/internal/common/validation"
	"supermercado-backend/internal/features/user/models"
	"supermercado-backend/internal/features/user/repository"
)

// Service validates input before it reaches the repository. Validation
// short-circuits on the first failed rule.
type Service interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, name string) ([]*models.User, error)
}

type userService struct {
	repo repository.Repository
}

func New(repo repository.Repository) Service {
	return &userService{repo: repo}
}

func validateUser(u *models.User) error {
	if err := validation.UserName(u.Name); err != nil {
		return err
	}
	if err := validation.Email("email", u.Email); err != nil {
		return err
	}
	if err := validation.Phone("phone", u.Phone); err != nil {
		return err
	}
	return validation.Address(u.Address)
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := req.ToUser()
	if err := validateUser(user); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	user := req.ToUser(id)
	if err := validateUser(user); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) SearchByName(ctx context.Context, name string) ([]*models.User, error) {
	return s.repo.SearchByName(ctx, name)
}
