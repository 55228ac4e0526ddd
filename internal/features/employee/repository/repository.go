package repository

import (
	"context"

	"supermercado-backend/internal/features/employee/models"
)

// Repository is the CRUD boundary over the employee collection. Every read
// path filters to active records; Delete deactivates instead of removing,
// and there is no way to reactivate through this interface.
type Repository interface {
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id int) error
	FindByCargo(ctx context.Context, cargo string) ([]*models.Employee, error)
	FindByDepartamento(ctx context.Context, departamento string) ([]*models.Employee, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Employee, error)
	DistinctCargos(ctx context.Context) ([]string, error)
	DistinctDepartamentos(ctx context.Context) ([]string, error)
	CountByCargo(ctx context.Context) (map[string]int, error)
}
