package dto

import (
	"time"

	"github.com/orgdesk/org-service/internal/domain"
)

// EmpresaRequest payload.
type EmpresaRequest struct {
	Nombre string `json:"nombre" validate:"required,notblank,max=200"`
}

// EmpresaResponse payload.
type EmpresaResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEmpresaResponse(e *domain.Empresa) EmpresaResponse {
	return EmpresaResponse{ID: e.ID, Nombre: e.Nombre, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}
