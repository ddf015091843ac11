package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDatabase is returned by a UnitOfWork built without a pool.
var ErrNoDatabase = errors.New("database not configured")

// Repositories groups the repositories bound to one transaction.
type Repositories struct {
	Empresas      EmpresaRepository
	Departamentos DepartamentoRepository
	Empleados     EmpleadoRepository
}

// NewRepositories binds every repository to q.
func NewRepositories(q Querier) Repositories {
	return Repositories{
		Empresas:      NewEmpresaRepository(q),
		Departamentos: NewDepartamentoRepository(q),
		Empleados:     NewEmpleadoRepository(q),
	}
}

// UnitOfWork runs fn inside a single transaction: commit on nil, rollback otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(Repositories) error) error
}

type pgxUnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork builds a UnitOfWork on top of the pool.
func NewUnitOfWork(pool *pgxpool.Pool) UnitOfWork {
	return &pgxUnitOfWork{pool: pool}
}

func (u *pgxUnitOfWork) Do(ctx context.Context, fn func(Repositories) error) error {
	if u.pool == nil {
		return ErrNoDatabase
	}
	return pgx.BeginFunc(ctx, u.pool, func(tx pgx.Tx) error {
		return fn(NewRepositories(tx))
	})
}
