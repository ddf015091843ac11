package domain

import "time"

// Empleado belongs to exactly one Departamento.
type Empleado struct {
	ID             int64
	Nombre         string
	Apellido       string
	Puesto         string
	DepartamentoID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NombreCompleto joins first and last name.
func (e Empleado) NombreCompleto() string {
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}
