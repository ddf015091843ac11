package repository

import (
	"context"

	"github.com/orgdesk/org-service/internal/domain"
)

// EmpleadoRepository manages employee persistence.
type EmpleadoRepository interface {
	Create(ctx context.Context, empleado *domain.Empleado) error
	ListByDepartamento(ctx context.Context, departamentoID int64) ([]domain.Empleado, error)
}

type empleadoRepository struct {
	db Querier
}

// NewEmpleadoRepository builds the repository.
func NewEmpleadoRepository(db Querier) EmpleadoRepository {
	return &empleadoRepository{db: db}
}

func (r *empleadoRepository) Create(ctx context.Context, empleado *domain.Empleado) error {
	const query = `
        INSERT INTO empleados (nombre, apellido, puesto, departamento_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		empleado.Nombre,
		empleado.Apellido,
		empleado.Puesto,
		empleado.DepartamentoID,
	).Scan(&empleado.ID, &empleado.CreatedAt, &empleado.UpdatedAt)
}

// ListByDepartamento returns employees in insertion order.
func (r *empleadoRepository) ListByDepartamento(ctx context.Context, departamentoID int64) ([]domain.Empleado, error) {
	const query = `
        SELECT id, nombre, apellido, puesto, departamento_id, created_at, updated_at
        FROM empleados WHERE departamento_id=$1
        ORDER BY id`
	rows, err := r.db.Query(ctx, query, departamentoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Empleado{}
	for rows.Next() {
		var e domain.Empleado
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Puesto, &e.DepartamentoID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
