package dto

import (
	"time"

	"github.com/orgdesk/org-service/internal/domain"
)

// DepartamentoRequest is the body of create and update calls.
type DepartamentoRequest struct {
	Nombre    string `json:"nombre" validate:"required,notblank,max=200"`
	EmpresaID int64  `json:"empresa_id" validate:"required,gt=0"`
}

// UpsertDepartamentoRequest carries an optional id; zero means insert.
type UpsertDepartamentoRequest struct {
	ID        int64  `json:"id" validate:"gte=0"`
	Nombre    string `json:"nombre" validate:"required,notblank,max=200"`
	EmpresaID int64  `json:"empresa_id" validate:"required,gt=0"`
}

// ToDomain builds the domain value.
func (r DepartamentoRequest) ToDomain() *domain.Departamento {
	return &domain.Departamento{Nombre: r.Nombre, EmpresaID: r.EmpresaID}
}

// ToDomain builds the domain value.
func (r UpsertDepartamentoRequest) ToDomain() *domain.Departamento {
	return &domain.Departamento{ID: r.ID, Nombre: r.Nombre, EmpresaID: r.EmpresaID}
}

// DepartamentoResponse is the API view of a department.
type DepartamentoResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	EmpresaID int64     `json:"empresa_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDepartamentoResponse converts a domain value.
func NewDepartamentoResponse(d *domain.Departamento) DepartamentoResponse {
	return DepartamentoResponse{
		ID:        d.ID,
		Nombre:    d.Nombre,
		EmpresaID: d.EmpresaID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// NewDepartamentoList converts a slice, keeping order. Never returns nil.
func NewDepartamentoList(list []domain.Departamento) []DepartamentoResponse {
	out := make([]DepartamentoResponse, 0, len(list))
	for i := range list {
		out = append(out, NewDepartamentoResponse(&list[i]))
	}
	return out
}

// EmpleadoRequest adds an employee to a department.
type EmpleadoRequest struct {
	Nombre   string `json:"nombre" validate:"required,notblank,max=200"`
	Apellido string `json:"apellido" validate:"max=200"`
	Puesto   string `json:"puesto" validate:"max=200"`
}

// ToDomain builds the domain value.
func (r EmpleadoRequest) ToDomain() *domain.Empleado {
	return &domain.Empleado{Nombre: r.Nombre, Apellido: r.Apellido, Puesto: r.Puesto}
}

// EmpleadoResponse is the API view of an employee.
type EmpleadoResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Puesto         string `json:"puesto"`
	DepartamentoID int64  `json:"departamento_id"`
}

// NewEmpleadoResponse converts a domain value.
func NewEmpleadoResponse(e *domain.Empleado) EmpleadoResponse {
	return EmpleadoResponse{
		ID:             e.ID,
		Nombre:         e.Nombre,
		Apellido:       e.Apellido,
		Puesto:         e.Puesto,
		DepartamentoID: e.DepartamentoID,
	}
}

// DepartamentoEmpleadosResponse lists a department with its employees.
type DepartamentoEmpleadosResponse struct {
	Departamento DepartamentoResponse `json:"departamento"`
	Empleados    []EmpleadoResponse   `json:"empleados"`
}
