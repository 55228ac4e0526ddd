package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date serializes as "YYYY-MM-DD", matching the fechaIngreso wire format.
type Date struct {
	time.Time
}

func Today() Date {
	return Date{time.Now().Truncate(24 * time.Hour)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Employee is a staff record. Field names on the wire use the Spanish naming
// the frontend expects. Deletion is soft: Activo flips to false and the
// record drops out of every read path.
// @Description Supermarket employee record
type Employee struct {
	ID           int     `json:"id" example:"1"`
	Nombre       string  `json:"nombre" example:"Ana María López"`
	Cargo        string  `json:"cargo" example:"Cajero"`
	Salario      float64 `json:"salario" example:"1200000"`
	FechaIngreso Date    `json:"fechaIngreso"`
	Departamento string  `json:"departamento" example:"Ventas"`
	Telefono     string  `json:"telefono" example:"+57 300 123 4567"`
	Email        string  `json:"email" example:"ana.lopez@supermercado.com"`
	Activo       bool    `json:"activo" example:"true"`
}

// CreateEmployeeRequest is the POST /api/empleados body.
type CreateEmployeeRequest struct {
	Nombre       string  `json:"nombre" binding:"required"`
	Cargo        string  `json:"cargo" binding:"required"`
	Salario      float64 `json:"salario" binding:"required"`
	Departamento string  `json:"departamento"`
	Telefono     string  `json:"telefono"`
	Email        string  `json:"email"`
}

// UpdateEmployeeRequest is the PUT /api/empleados/{id} body. An omitted
// fechaIngreso keeps the stored hire date.
type UpdateEmployeeRequest struct {
	Nombre       string  `json:"nombre" binding:"required"`
	Cargo        string  `json:"cargo" binding:"required"`
	Salario      float64 `json:"salario" binding:"required"`
	Departamento string  `json:"departamento"`
	Telefono     string  `json:"telefono"`
	Email        string  `json:"email"`
	FechaIngreso *Date   `json:"fechaIngreso,omitempty"`
}

// ToEmployee builds a new active record with defaults applied: hire date is
// today, blank department falls back to General.
func (r CreateEmployeeRequest) ToEmployee() *Employee {
	departamento := r.Departamento
	if strings.TrimSpace(departamento) == "" {
		departamento = "General"
	}
	return &Employee{
		Nombre:       r.Nombre,
		Cargo:        r.Cargo,
		Salario:      r.Salario,
		FechaIngreso: Today(),
		Departamento: departamento,
		Telefono:     r.Telefono,
		Email:        r.Email,
		Activo:       true,
	}
}
