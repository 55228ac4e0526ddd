package repository

import (
	"context"

	"supermercado-backend/internal/features/user/models"
)

// Repository is the CRUD boundary over the user collection. Implementations
// assign ids on create and must never hand out direct references to stored
// records.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, name string) ([]*models.User, error)
}
