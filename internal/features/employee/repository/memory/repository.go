package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	apperrors "supermercado-backend/internal/common/errors"
	"supermercado-backend/internal/features/employee/models"
	"supermercado-backend/internal/features/employee/repository"
)

// Repository is the in-memory employee store. Records are copied in and out;
// soft-deleted employees stay in the backing slice with Activo=false but are
// invisible to every exported read path.
type Repository struct {
	mu        sync.RWMutex
	employees []*models.Employee
	nextID    int
}

func New() *Repository {
	r := &Repository{nextID: 1}
	r.seed()
	return r
}

type seedEmployee struct {
	nombre       string
	cargo        string
	salario      float64
	telefono     string
	email        string
	departamento string
}

// seed loads the sample staff roster the system ships with: two cashiers,
// two supervisors, a manager, warehouse, cleaning, security and sales staff.
func (r *Repository) seed() {
	samples := []seedEmployee{
		{"Ana María López", "Cajero", 1200000, "+57 300 123 4567", "ana.lopez@supermercado.com", "Ventas"},
		{"Carlos Mendoza", "Cajero", 1250000, "+57 301 234 5678", "carlos.mendoza@supermercado.com", "Ventas"},
		{"María Fernanda García", "Supervisor", 1800000, "+57 302 345 6789", "maria.garcia@supermercado.com", "Ventas"},
		{"Jorge Luis Ramírez", "Supervisor", 1750000, "+57 303 456 7890", "jorge.ramirez@supermercado.com", "Logística"},
		{"Roberto Martínez", "Gerente", 3500000, "+57 304 567 8901", "roberto.martinez@supermercado.com", "Administración"},
		{"Pedro Sánchez", "Almacenista", 1100000, "+57 305 678 9012", "pedro.sanchez@supermercado.com", "Logística"},
		{"Carmen Torres", "Almacenista", 1150000, "+57 306 789 0123", "carmen.torres@supermercado.com", "Logística"},
		{"Luis Morales", "Limpieza", 950000, "+57 307 890 1234", "luis.morales@supermercado.com", "Mantenimiento"},
		{"Andrea Díaz", "Seguridad", 1300000, "+57 308 901 2345", "andrea.diaz@supermercado.com", "Seguridad"},
		{"Miguel Hernández", "Vendedor", 1400000, "+57 309 012 3456", "miguel.hernandez@supermercado.com", "Ventas"},
	}

	for _, s := range samples {
		r.employees = append(r.employees, &models.Employee{
			ID:           r.nextID,
			Nombre:       s.nombre,
			Cargo:        s.cargo,
			Salario:      s.salario,
			FechaIngreso: models.Today(),
			Departamento: s.departamento,
			Telefono:     s.telefono,
			Email:        s.email,
			Activo:       true,
		})
		r.nextID++
	}
}

func (r *Repository) Create(_ context.Context, employee *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee.ID != 0 {
		if r.findActive(employee.ID) != nil {
			return nil, apperrors.Conflict("employee", employee.ID)
		}
	}

	stored := *employee
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	stored.Activo = true

	r.employees = append(r.employees, &stored)

	result := stored
	return &result, nil
}

// findActive must be called with the lock held.
func (r *Repository) findActive(id int) *models.Employee {
	for _, e := range r.employees {
		if e.ID == id && e.Activo {
			return e
		}
	}
	return nil
}

func (r *Repository) GetByID(_ context.Context, id int) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e := r.findActive(id); e != nil {
		result := *e
		return &result, nil
	}
	return nil, apperrors.NotFound("employee", id)
}

// GetAll returns active employees in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if e.Activo {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result, nil
}

// Update replaces the record matching the id. Inactive records cannot be
// updated, so a soft-deleted employee can never be resurrected this way.
func (r *Repository) Update(_ context.Context, employee *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.employees {
		if existing.ID == employee.ID && existing.Activo {
			stored := *employee
			stored.Activo = true
			r.employees[i] = &stored
			result := stored
			return &result, nil
		}
	}
	return nil, apperrors.NotFound("employee", employee.ID)
}

// Delete marks the employee inactive. The record stays in storage but drops
// out of all reads.
func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e := r.findActive(id); e != nil {
		e.Activo = false
		return nil
	}
	return apperrors.NotFound("employee", id)
}

func (r *Repository) filter(keep func(*models.Employee) bool) []*models.Employee {
	var result []*models.Employee
	for _, e := range r.employees {
		if e.Activo && keep(e) {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result
}

// FindByCargo matches active employees whose cargo contains the term,
// case-insensitively.
func (r *Repository) FindByCargo(_ context.Context, cargo string) ([]*models.Employee, error) {
	if strings.TrimSpace(cargo) == "" {
		return []*models.Employee{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(cargo)
	return r.filter(func(e *models.Employee) bool {
		return strings.Contains(strings.ToLower(e.Cargo), term)
	}), nil
}

func (r *Repository) FindByDepartamento(_ context.Context, departamento string) ([]*models.Employee, error) {
	if strings.TrimSpace(departamento) == "" {
		return []*models.Employee{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(departamento)
	return r.filter(func(e *models.Employee) bool {
		return strings.Contains(strings.ToLower(e.Departamento), term)
	}), nil
}

func (r *Repository) FindByNombre(_ context.Context, nombre string) ([]*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(nombre)
	return r.filter(func(e *models.Employee) bool {
		return strings.Contains(strings.ToLower(e.Nombre), term)
	}), nil
}

func (r *Repository) distinct(field func(*models.Employee) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, e := range r.employees {
		if !e.Activo {
			continue
		}
		v := field(e)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// DistinctCargos returns the sorted, deduplicated cargos of active employees.
func (r *Repository) DistinctCargos(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.distinct(func(e *models.Employee) string { return e.Cargo }), nil
}

func (r *Repository) DistinctDepartamentos(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.distinct(func(e *models.Employee) string { return e.Departamento }), nil
}

// CountByCargo returns active headcount per cargo.
func (r *Repository) CountByCargo(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range r.employees {
		if e.Activo {
			counts[e.Cargo]++
		}
	}
	return counts, nil
}

// getAnyByID looks up a record regardless of Activo. Tests use it to verify
// that soft-deleted employees remain in storage.
func (r *Repository) getAnyByID(id int) *models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			copied := *e
			return &copied
		}
	}
	return nil
}

var _ repository.Repository = (*Repository)(nil)
