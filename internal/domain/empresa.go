package domain

import "time"

// Empresa is a company, the parent of departments.
type Empresa struct {
	ID        int64
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
