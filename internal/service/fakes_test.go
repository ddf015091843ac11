package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/orgdesk/org-service/internal/domain"
	"github.com/orgdesk/org-service/internal/repository"
)

// memDB is an in-memory stand-in for the org schema.
type memDB struct {
	empresas      map[int64]domain.Empresa
	departamentos map[int64]domain.Departamento
	empleados     []domain.Empleado

	nextEmpresaID      int64
	nextDepartamentoID int64
	nextEmpleadoID     int64
}

func newMemDB() *memDB {
	return &memDB{
		empresas:      map[int64]domain.Empresa{},
		departamentos: map[int64]domain.Departamento{},
	}
}

func (db *memDB) clone() *memDB {
	cp := &memDB{
		empresas:           make(map[int64]domain.Empresa, len(db.empresas)),
		departamentos:      make(map[int64]domain.Departamento, len(db.departamentos)),
		empleados:          append([]domain.Empleado(nil), db.empleados...),
		nextEmpresaID:      db.nextEmpresaID,
		nextDepartamentoID: db.nextDepartamentoID,
		nextEmpleadoID:     db.nextEmpleadoID,
	}
	for k, v := range db.empresas {
		cp.empresas[k] = v
	}
	for k, v := range db.departamentos {
		cp.departamentos[k] = v
	}
	return cp
}

func (db *memDB) seedEmpresa(id int64, nombre string) {
	db.empresas[id] = domain.Empresa{ID: id, Nombre: nombre}
	if id > db.nextEmpresaID {
		db.nextEmpresaID = id
	}
}

func (db *memDB) seedDepartamento(id int64, nombre string, empresaID int64) {
	db.departamentos[id] = domain.Departamento{ID: id, Nombre: nombre, EmpresaID: empresaID}
	if id > db.nextDepartamentoID {
		db.nextDepartamentoID = id
	}
}

// fakeUnitOfWork snapshots memDB before fn and restores it when fn fails.
type fakeUnitOfWork struct {
	db    *memDB
	err   error
	calls int
}

func (u *fakeUnitOfWork) Do(_ context.Context, fn func(repository.Repositories) error) error {
	u.calls++
	if u.err != nil {
		return u.err
	}
	snapshot := u.db.clone()
	err := fn(repository.Repositories{
		Empresas:      &fakeEmpresaRepo{db: u.db},
		Departamentos: &fakeDepartamentoRepo{db: u.db},
		Empleados:     &fakeEmpleadoRepo{db: u.db},
	})
	if err != nil {
		*u.db = *snapshot
	}
	return err
}

type fakeEmpresaRepo struct{ db *memDB }

func (r *fakeEmpresaRepo) Create(_ context.Context, e *domain.Empresa) error {
	r.db.nextEmpresaID++
	e.ID = r.db.nextEmpresaID
	r.db.empresas[e.ID] = *e
	return nil
}

func (r *fakeEmpresaRepo) GetByID(_ context.Context, id int64) (*domain.Empresa, error) {
	e, ok := r.db.empresas[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (r *fakeEmpresaRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.db.empresas[id]
	return ok, nil
}

func (r *fakeEmpresaRepo) List(context.Context) ([]domain.Empresa, error) {
	out := []domain.Empresa{}
	for _, e := range r.db.empresas {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeDepartamentoRepo struct{ db *memDB }

func (r *fakeDepartamentoRepo) Insert(_ context.Context, d *domain.Departamento) error {
	r.db.nextDepartamentoID++
	d.ID = r.db.nextDepartamentoID
	r.db.departamentos[d.ID] = *d
	return nil
}

func (r *fakeDepartamentoRepo) InsertWithID(_ context.Context, d *domain.Departamento) error {
	r.db.departamentos[d.ID] = *d
	if d.ID > r.db.nextDepartamentoID {
		r.db.nextDepartamentoID = d.ID
	}
	return nil
}

func (r *fakeDepartamentoRepo) Update(_ context.Context, d *domain.Departamento) error {
	if _, ok := r.db.departamentos[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.db.departamentos[d.ID] = *d
	return nil
}

func (r *fakeDepartamentoRepo) GetByID(_ context.Context, id int64) (*domain.Departamento, error) {
	d, ok := r.db.departamentos[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (r *fakeDepartamentoRepo) List(_ context.Context, filter repository.DepartamentoFilter) ([]domain.Departamento, error) {
	out := []domain.Departamento{}
	for _, d := range r.db.departamentos {
		if filter.EmpresaID != nil && d.EmpresaID != *filter.EmpresaID {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDepartamentoRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.db.departamentos[id]; !ok {
		return false, nil
	}
	delete(r.db.departamentos, id)
	kept := r.db.empleados[:0]
	for _, e := range r.db.empleados {
		if e.DepartamentoID != id {
			kept = append(kept, e)
		}
	}
	r.db.empleados = kept
	return true, nil
}

type fakeEmpleadoRepo struct{ db *memDB }

func (r *fakeEmpleadoRepo) Create(_ context.Context, e *domain.Empleado) error {
	r.db.nextEmpleadoID++
	e.ID = r.db.nextEmpleadoID
	r.db.empleados = append(r.db.empleados, *e)
	return nil
}

func (r *fakeEmpleadoRepo) ListByDepartamento(_ context.Context, departamentoID int64) ([]domain.Empleado, error) {
	out := []domain.Empleado{}
	for _, e := range r.db.empleados {
		if e.DepartamentoID == departamentoID {
			out = append(out, e)
		}
	}
	return out, nil
}
