package service

import (
	"context"

	"supermercado-backend/internal/common/cache"
	"supermercado-backend/internal/common/validation"
	"supermercado-backend/internal/features/employee/models"
	"supermercado-backend/internal/features/employee/repository"
)

const (
	cacheKeyCargos        = "empleados:cargos"
	cacheKeyDepartamentos = "empleados:departamentos"
)

type Service interface {
	Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, id int, req models.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]*models.Employee, error)
	FindByCargo(ctx context.Context, cargo string) ([]*models.Employee, error)
	FindByDepartamento(ctx context.Context, departamento string) ([]*models.Employee, error)
	Cargos(ctx context.Context) ([]string, error)
	Departamentos(ctx context.Context) ([]string, error)
	Estadisticas(ctx context.Context) (map[string]int, error)
}

type employeeService struct {
	repo  repository.Repository
	cache cache.Cache
}

func New(repo repository.Repository, c cache.Cache) Service {
	return &employeeService{repo: repo, cache: c}
}

func validateEmployee(e *models.Employee) error {
	if err := validation.EmployeeName(e.Nombre); err != nil {
		return err
	}
	if err := validation.Cargo(e.Cargo); err != nil {
		return err
	}
	return validation.Salario(e.Salario)
}

func (s *employeeService) Create(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	employee := req.ToEmployee()
	if err := validateEmployee(employee); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return created, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *employeeService) GetAll(ctx context.Context) ([]*models.Employee, error) {
	return s.repo.GetAll(ctx)
}

// Update replaces the record; the stored hire date and active flag survive
// unless the request supplies a new hire date.
func (s *employeeService) Update(ctx context.Context, id int, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		ID:           id,
		Nombre:       req.Nombre,
		Cargo:        req.Cargo,
		Salario:      req.Salario,
		FechaIngreso: existing.FechaIngreso,
		Departamento: req.Departamento,
		Telefono:     req.Telefono,
		Email:        req.Email,
		Activo:       true,
	}
	if req.FechaIngreso != nil {
		employee.FechaIngreso = *req.FechaIngreso
	}
	if employee.Departamento == "" {
		employee.Departamento = existing.Departamento
	}

	if err := validateEmployee(employee); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return updated, nil
}

func (s *employeeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// Search treats the term as a cargo filter first and retries it as a name
// filter only when no cargo matches, so a term like "Cajero" never mixes
// role and name hits.
func (s *employeeService) Search(ctx context.Context, term string) ([]*models.Employee, error) {
	byCargo, err := s.repo.FindByCargo(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(byCargo) > 0 {
		return byCargo, nil
	}
	return s.repo.FindByNombre(ctx, term)
}

func (s *employeeService) FindByCargo(ctx context.Context, cargo string) ([]*models.Employee, error) {
	return s.repo.FindByCargo(ctx, cargo)
}

func (s *employeeService) FindByDepartamento(ctx context.Context, departamento string) ([]*models.Employee, error) {
	return s.repo.FindByDepartamento(ctx, departamento)
}

func (s *employeeService) Cargos(ctx context.Context) ([]string, error) {
	var cargos []string
	err := cache.GetOrSet(ctx, s.cache, cacheKeyCargos, &cargos, func() ([]string, error) {
		return s.repo.DistinctCargos(ctx)
	})
	return cargos, err
}

func (s *employeeService) Departamentos(ctx context.Context) ([]string, error) {
	var departamentos []string
	err := cache.GetOrSet(ctx, s.cache, cacheKeyDepartamentos, &departamentos, func() ([]string, error) {
		return s.repo.DistinctDepartamentos(ctx)
	})
	return departamentos, err
}

func (s *employeeService) Estadisticas(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByCargo(ctx)
}

func (s *employeeService) invalidateListings(ctx context.Context) {
	_ = s.cache.Delete(ctx, cacheKeyCargos, cacheKeyDepartamentos)
}
