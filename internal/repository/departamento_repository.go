package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/orgdesk/org-service/internal/domain"
)

const departamentoColumns = "id, nombre, empresa_id, created_at, updated_at"

// DepartamentoRepository manages department persistence.
type DepartamentoRepository interface {
	Insert(ctx context.Context, dept *domain.Departamento) error
	InsertWithID(ctx context.Context, dept *domain.Departamento) error
	Update(ctx context.Context, dept *domain.Departamento) error
	GetByID(ctx context.Context, id int64) (*domain.Departamento, error)
	List(ctx context.Context, filter DepartamentoFilter) ([]domain.Departamento, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// DepartamentoFilter narrows department listings. Zero value lists everything.
type DepartamentoFilter struct {
	EmpresaID *int64
}

type departamentoRepository struct {
	db Querier
}

// NewDepartamentoRepository builds the repository.
func NewDepartamentoRepository(db Querier) DepartamentoRepository {
	return &departamentoRepository{db: db}
}

// Insert lets the backend assign the id.
func (r *departamentoRepository) Insert(ctx context.Context, dept *domain.Departamento) error {
	const query = `
        INSERT INTO departamentos (nombre, empresa_id)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		dept.Nombre,
		dept.EmpresaID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

// InsertWithID inserts using the caller's id and moves the identity sequence past it
// so later backend-assigned ids do not collide. The sequence only ever moves forward;
// ids issued before and later deleted are never handed out again.
func (r *departamentoRepository) InsertWithID(ctx context.Context, dept *domain.Departamento) error {
	const query = `
        INSERT INTO departamentos (id, nombre, empresa_id)
        VALUES ($1,$2,$3)
        RETURNING created_at, updated_at`
	if err := r.db.QueryRow(ctx, query,
		dept.ID,
		dept.Nombre,
		dept.EmpresaID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt); err != nil {
		return err
	}

	const bump = `
        WITH seq AS (SELECT pg_get_serial_sequence('departamentos', 'id')::regclass AS name)
        SELECT setval(seq.name, GREATEST($1::bigint, COALESCE(pg_sequence_last_value(seq.name), 1)))
        FROM seq`
	if _, err := r.db.Exec(ctx, bump, dept.ID); err != nil {
		return fmt.Errorf("advance departamentos id sequence: %w", err)
	}
	return nil
}

// Update returns pgx.ErrNoRows when no row has dept.ID.
func (r *departamentoRepository) Update(ctx context.Context, dept *domain.Departamento) error {
	const query = `
        UPDATE departamentos SET nombre=$1, empresa_id=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		dept.Nombre,
		dept.EmpresaID,
		dept.ID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departamentoRepository) GetByID(ctx context.Context, id int64) (*domain.Departamento, error) {
	query := `SELECT ` + departamentoColumns + ` FROM departamentos WHERE id=$1`
	var dept domain.Departamento
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&dept.ID,
		&dept.Nombre,
		&dept.EmpresaID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departamentoRepository) List(ctx context.Context, filter DepartamentoFilter) ([]domain.Departamento, error) {
	query, args, err := buildDepartamentoListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build departamentos query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Departamento{}
	for rows.Next() {
		var dept domain.Departamento
		if err := rows.Scan(&dept.ID, &dept.Nombre, &dept.EmpresaID, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

// Delete reports whether a row was removed.
func (r *departamentoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted int64
	err := r.db.QueryRow(ctx, `DELETE FROM departamentos WHERE id=$1 RETURNING id`, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func buildDepartamentoListQuery(filter DepartamentoFilter) (string, []any, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Select(departamentoColumns).From("departamentos")
	if filter.EmpresaID != nil {
		builder = builder.Where(sq.Eq{"empresa_id": *filter.EmpresaID})
	}
	return builder.OrderBy("id").ToSql()
}
