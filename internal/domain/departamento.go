package domain

import "time"

// Departamento is an organizational unit owned by an Empresa.
type Departamento struct {
	ID        int64
	Nombre    string
	EmpresaID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
