package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/domain"
	"github.com/orgdesk/org-service/internal/persistence"
)

// openTestPool connects to TEST_POSTGRES_DSN, applies the schema and truncates
// the org tables. Tests are skipped when the variable is unset.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, persistence.RunMigrations(ctx, pool, zap.NewNop()))
	_, err = pool.Exec(ctx, `TRUNCATE TABLE empleados, departamentos, empresas RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func seedEmpresa(t *testing.T, repos Repositories, nombre string) *domain.Empresa {
	t.Helper()
	empresa := &domain.Empresa{Nombre: nombre}
	require.NoError(t, repos.Empresas.Create(context.Background(), empresa))
	return empresa
}

func TestDepartamentoRepository_Integration(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repos := NewRepositories(pool)

	acme := seedEmpresa(t, repos, "Acme")
	globex := seedEmpresa(t, repos, "Globex")

	ventas := &domain.Departamento{Nombre: "Ventas", EmpresaID: acme.ID}
	require.NoError(t, repos.Departamentos.Insert(ctx, ventas))
	assert.NotZero(t, ventas.ID)

	compras := &domain.Departamento{Nombre: "Compras", EmpresaID: globex.ID}
	require.NoError(t, repos.Departamentos.Insert(ctx, compras))

	t.Run("get by id", func(t *testing.T) {
		got, err := repos.Departamentos.GetByID(ctx, ventas.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ventas", got.Nombre)
		assert.Equal(t, acme.ID, got.EmpresaID)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repos.Departamentos.GetByID(ctx, 999)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("list by empresa", func(t *testing.T) {
		list, err := repos.Departamentos.List(ctx, DepartamentoFilter{EmpresaID: &globex.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, compras.ID, list[0].ID)
	})

	t.Run("insert with id advances sequence", func(t *testing.T) {
		explicit := &domain.Departamento{ID: 50, Nombre: "Legal", EmpresaID: acme.ID}
		require.NoError(t, repos.Departamentos.InsertWithID(ctx, explicit))

		next := &domain.Departamento{Nombre: "Soporte", EmpresaID: acme.ID}
		require.NoError(t, repos.Departamentos.Insert(ctx, next))
		assert.Greater(t, next.ID, int64(50))
	})

	t.Run("insert with freed id never rewinds sequence", func(t *testing.T) {
		issued := make([]*domain.Departamento, 3)
		for i := range issued {
			issued[i] = &domain.Departamento{Nombre: "Temporal", EmpresaID: acme.ID}
			require.NoError(t, repos.Departamentos.Insert(ctx, issued[i]))
		}
		for _, d := range issued[1:] {
			deleted, err := repos.Departamentos.Delete(ctx, d.ID)
			require.NoError(t, err)
			require.True(t, deleted)
		}

		reused := &domain.Departamento{ID: issued[1].ID, Nombre: "Recuperado", EmpresaID: acme.ID}
		require.NoError(t, repos.Departamentos.InsertWithID(ctx, reused))

		next := &domain.Departamento{Nombre: "Nuevo", EmpresaID: acme.ID}
		require.NoError(t, repos.Departamentos.Insert(ctx, next))
		assert.Greater(t, next.ID, issued[2].ID)
	})

	t.Run("update missing row", func(t *testing.T) {
		err := repos.Departamentos.Update(ctx, &domain.Departamento{ID: 12345, Nombre: "X", EmpresaID: acme.ID})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repos.Departamentos.Delete(ctx, 999)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = repos.Departamentos.Delete(ctx, compras.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}

func TestUnitOfWork_Integration_RollsBack(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	uow := NewUnitOfWork(pool)

	var empresaID int64
	err := uow.Do(ctx, func(repos Repositories) error {
		empresa := &domain.Empresa{Nombre: "Initech"}
		if err := repos.Empresas.Create(ctx, empresa); err != nil {
			return err
		}
		empresaID = empresa.ID
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	exists, err := NewEmpresaRepository(pool).Exists(ctx, empresaID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmpleadoRepository_Integration_Order(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repos := NewRepositories(pool)

	empresa := seedEmpresa(t, repos, "Acme")
	dept := &domain.Departamento{Nombre: "IT", EmpresaID: empresa.ID}
	require.NoError(t, repos.Departamentos.Insert(ctx, dept))

	for _, nombre := range []string{"Ana", "Luis", "Marta"} {
		require.NoError(t, repos.Empleados.Create(ctx, &domain.Empleado{Nombre: nombre, Apellido: "Ruiz", Puesto: "Dev", DepartamentoID: dept.ID}))
	}

	list, err := repos.Empleados.ListByDepartamento(ctx, dept.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Nombre)
	assert.Equal(t, "Marta", list[2].Nombre)
}

func TestUnitOfWork_NoPool(t *testing.T) {
	err := NewUnitOfWork(nil).Do(context.Background(), func(Repositories) error { return nil })
	assert.ErrorIs(t, err, ErrNoDatabase)
}
