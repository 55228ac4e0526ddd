package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	apperrors "supermercado-backend/internal/common/errors"
	"supermercado-backend/internal/features/employee/models"
	"supermercado-backend/internal/features/employee/repository"
)

const employeeColumns = "id, nombre, cargo, salario, fecha_ingreso, departamento, telefono, email, activo"

type mysqlRepository struct {
	db *sql.DB
}

// New returns the MySQL-backed employee repository. The activo filter is
// part of every read query so soft-deleted rows never leave the database.
func New(db *sql.DB) repository.Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee.ID != 0 {
		if _, err := r.GetByID(ctx, employee.ID); err == nil {
			return nil, apperrors.Conflict("employee", employee.ID)
		}
	}

	query := `
		INSERT INTO empleados (nombre, cargo, salario, fecha_ingreso, departamento, telefono, email, activo)
		VALUES (?, ?, ?, ?, ?, ?, ?, TRUE)
	`

	res, err := r.db.ExecContext(ctx, query,
		employee.Nombre, employee.Cargo, employee.Salario, employee.FechaIngreso.Time,
		employee.Departamento, employee.Telefono, employee.Email)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	result := *employee
	result.ID = int(id)
	result.Activo = true
	return &result, nil
}

func (r *mysqlRepository) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM empleados WHERE id = ? AND activo = TRUE"

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("employee", id)
		}
		return nil, apperrors.Storage(err)
	}
	return employee, nil
}

func (r *mysqlRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM empleados WHERE activo = TRUE ORDER BY id"
	return r.queryEmployees(ctx, query)
}

func (r *mysqlRepository) Update(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	query := `
		UPDATE empleados
		SET nombre = ?, cargo = ?, salario = ?, fecha_ingreso = ?, departamento = ?, telefono = ?, email = ?
		WHERE id = ? AND activo = TRUE
	`

	res, err := r.db.ExecContext(ctx, query,
		employee.Nombre, employee.Cargo, employee.Salario, employee.FechaIngreso.Time,
		employee.Departamento, employee.Telefono, employee.Email, employee.ID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, employee.ID); err != nil {
			return nil, err
		}
	}

	result := *employee
	result.Activo = true
	return &result, nil
}

// Delete soft-deletes: the row stays but drops out of every read query.
func (r *mysqlRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE empleados SET activo = FALSE WHERE id = ? AND activo = TRUE", id)
	if err != nil {
		return apperrors.Storage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if affected == 0 {
		return apperrors.NotFound("employee", id)
	}

	return nil
}

func (r *mysqlRepository) FindByCargo(ctx context.Context, cargo string) ([]*models.Employee, error) {
	if strings.TrimSpace(cargo) == "" {
		return []*models.Employee{}, nil
	}
	query := "SELECT " + employeeColumns + " FROM empleados WHERE activo = TRUE AND LOWER(cargo) LIKE ? ORDER BY id"
	return r.queryEmployees(ctx, query, "%"+strings.ToLower(cargo)+"%")
}

func (r *mysqlRepository) FindByDepartamento(ctx context.Context, departamento string) ([]*models.Employee, error) {
	if strings.TrimSpace(departamento) == "" {
		return []*models.Employee{}, nil
	}
	query := "SELECT " + employeeColumns + " FROM empleados WHERE activo = TRUE AND LOWER(departamento) LIKE ? ORDER BY id"
	return r.queryEmployees(ctx, query, "%"+strings.ToLower(departamento)+"%")
}

func (r *mysqlRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM empleados WHERE activo = TRUE AND LOWER(nombre) LIKE ? ORDER BY id"
	return r.queryEmployees(ctx, query, "%"+strings.ToLower(nombre)+"%")
}

func (r *mysqlRepository) DistinctCargos(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "SELECT DISTINCT cargo FROM empleados WHERE activo = TRUE ORDER BY cargo")
}

func (r *mysqlRepository) DistinctDepartamentos(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, "SELECT DISTINCT departamento FROM empleados WHERE activo = TRUE ORDER BY departamento")
}

func (r *mysqlRepository) CountByCargo(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT cargo, COUNT(*) FROM empleados WHERE activo = TRUE GROUP BY cargo")
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cargo string
		var count int
		if err := rows.Scan(&cargo, &count); err != nil {
			return nil, apperrors.Storage(err)
		}
		counts[cargo] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return counts, nil
}

func (r *mysqlRepository) queryEmployees(ctx context.Context, query string, args ...interface{}) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return employees, nil
}

func (r *mysqlRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.Storage(err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return values, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row scanner) (*models.Employee, error) {
	var e models.Employee
	var fechaIngreso time.Time
	err := row.Scan(&e.ID, &e.Nombre, &e.Cargo, &e.Salario, &fechaIngreso,
		&e.Departamento, &e.Telefono, &e.Email, &e.Activo)
	if err != nil {
		return nil, err
	}
	e.FechaIngreso = models.Date{Time: fechaIngreso}
	return &e, nil
}
