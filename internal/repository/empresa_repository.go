package repository

import (
	"context"

	"github.com/orgdesk/org-service/internal/domain"
)

// EmpresaRepository manages company persistence.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *domain.Empresa) error
	GetByID(ctx context.Context, id int64) (*domain.Empresa, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.Empresa, error)
}

type empresaRepository struct {
	db Querier
}

// NewEmpresaRepository builds the repository.
func NewEmpresaRepository(db Querier) EmpresaRepository {
	return &empresaRepository{db: db}
}

func (r *empresaRepository) Create(ctx context.Context, empresa *domain.Empresa) error {
	const query = `
        INSERT INTO empresas (nombre)
        VALUES ($1)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, empresa.Nombre).
		Scan(&empresa.ID, &empresa.CreatedAt, &empresa.UpdatedAt)
}

func (r *empresaRepository) GetByID(ctx context.Context, id int64) (*domain.Empresa, error) {
	const query = `
        SELECT id, nombre, created_at, updated_at
        FROM empresas WHERE id=$1`
	var empresa domain.Empresa
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&empresa.ID,
		&empresa.Nombre,
		&empresa.CreatedAt,
		&empresa.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &empresa, nil
}

func (r *empresaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM empresas WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

func (r *empresaRepository) List(ctx context.Context) ([]domain.Empresa, error) {
	const query = `
        SELECT id, nombre, created_at, updated_at
        FROM empresas ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Empresa{}
	for rows.Next() {
		var empresa domain.Empresa
		if err := rows.Scan(&empresa.ID, &empresa.Nombre, &empresa.CreatedAt, &empresa.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, empresa)
	}
	return result, rows.Err()
}
