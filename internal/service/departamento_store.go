package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/domain"
	"github.com/orgdesk/org-service/internal/events"
	"github.com/orgdesk/org-service/internal/repository"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

// DepartamentoStore mediates reads and writes of departments and reports on
// their employees. Every call runs in its own unit of work.
type DepartamentoStore struct {
	uow        repository.UnitOfWork
	cache      *departamentoCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DepartamentoDependencies bundles what the store needs. Redis and Dispatcher are optional.
type DepartamentoDependencies struct {
	UnitOfWork repository.UnitOfWork
	Redis      *redis.Client
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewDepartamentoStore constructs the store.
func NewDepartamentoStore(deps DepartamentoDependencies) *DepartamentoStore {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartamentoStore{
		uow:        deps.UnitOfWork,
		cache:      newDepartamentoCache(deps.Redis, deps.CacheTTL, logger),
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Create inserts a new department; the backend assigns its id.
func (s *DepartamentoStore) Create(ctx context.Context, dept *domain.Departamento) error {
	if err := validateDepartamento(dept); err != nil {
		return err
	}
	if dept.ID != 0 {
		return apperrors.NewValidationError("id is assigned on insert; use upsert to write a known id",
			map[string]any{"id": dept.ID})
	}

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		if err := requireEmpresa(ctx, repos, dept.EmpresaID); err != nil {
			return err
		}
		return repos.Departamentos.Insert(ctx, dept)
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	s.cache.invalidate(ctx)
	s.publish(ctx, events.NewEvent(events.EventDepartamentoCreated, dept.ID, departamentoPayload(dept, false)))
	return nil
}

// Save inserts when dept has no id or its id is not stored yet, and overwrites
// the stored row otherwise.
func (s *DepartamentoStore) Save(ctx context.Context, dept *domain.Departamento) error {
	if err := validateDepartamento(dept); err != nil {
		return err
	}
	if dept.ID < 0 {
		return apperrors.NewValidationError("id must be positive", map[string]any{"id": dept.ID})
	}

	var created bool
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		if err := requireEmpresa(ctx, repos, dept.EmpresaID); err != nil {
			return err
		}
		if dept.ID == 0 {
			created = true
			return repos.Departamentos.Insert(ctx, dept)
		}

		_, err := repos.Departamentos.GetByID(ctx, dept.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			created = true
			return repos.Departamentos.InsertWithID(ctx, dept)
		}
		if err != nil {
			return err
		}
		return repos.Departamentos.Update(ctx, dept)
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	s.cache.invalidate(ctx)
	eventType := events.EventDepartamentoUpdated
	if created {
		eventType = events.EventDepartamentoCreated
	}
	s.publish(ctx, events.NewEvent(eventType, dept.ID, departamentoPayload(dept, true)))
	return nil
}

// GetByID looks a department up. found is false, with a nil error, when no row matches.
func (s *DepartamentoStore) GetByID(ctx context.Context, id int64) (dept *domain.Departamento, found bool, err error) {
	if id <= 0 {
		return nil, false, nil
	}
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		d, err := repos.Departamentos.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		dept, found = d, true
		return nil
	})
	if err != nil {
		return nil, false, apperrors.MapError(err)
	}
	return dept, found, nil
}

// List returns every department ordered by id.
func (s *DepartamentoStore) List(ctx context.Context) ([]domain.Departamento, error) {
	return s.listCached(ctx, scopeAllDepartamentos, repository.DepartamentoFilter{})
}

// ListByEmpresa returns the departments of one company ordered by id.
func (s *DepartamentoStore) ListByEmpresa(ctx context.Context, empresaID int64) ([]domain.Departamento, error) {
	return s.listCached(ctx, empresaScope(empresaID), repository.DepartamentoFilter{EmpresaID: &empresaID})
}

// listCached reads the generation before the database so that a write
// committed in between retires whatever this call stores.
func (s *DepartamentoStore) listCached(ctx context.Context, scope listScope, filter repository.DepartamentoFilter) ([]domain.Departamento, error) {
	gen, cacheable := s.cache.generation(ctx)
	if cacheable {
		if cached, ok := s.cache.get(ctx, gen, scope); ok {
			return cached, nil
		}
	}

	var list []domain.Departamento
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		var err error
		list, err = repos.Departamentos.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if list == nil {
		list = []domain.Departamento{}
	}

	if cacheable {
		s.cache.set(ctx, gen, scope, list)
	}
	return list, nil
}

// UpdateByID overwrites the department stored under id. dept.ID is forced to id
// whatever it held before. A missing row is a NOT_FOUND error; nothing is created.
func (s *DepartamentoStore) UpdateByID(ctx context.Context, id int64, dept *domain.Departamento) error {
	if dept == nil {
		return apperrors.NewValidationError("departamento required", nil)
	}
	dept.ID = id
	if err := validateDepartamento(dept); err != nil {
		return err
	}

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		_, err := repos.Departamentos.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("departamento", map[string]any{"id": id})
		}
		if err != nil {
			return err
		}
		if err := requireEmpresa(ctx, repos, dept.EmpresaID); err != nil {
			return err
		}
		return repos.Departamentos.Update(ctx, dept)
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	s.cache.invalidate(ctx)
	s.publish(ctx, events.NewEvent(events.EventDepartamentoUpdated, id, departamentoPayload(dept, false)))
	return nil
}

// DeleteByID removes the department if it exists. A missing id is not an error;
// deleted reports whether a row was removed.
func (s *DepartamentoStore) DeleteByID(ctx context.Context, id int64) (deleted bool, err error) {
	var existing *domain.Departamento
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		d, err := repos.Departamentos.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		existing = d
		deleted, err = repos.Departamentos.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, apperrors.MapError(err)
	}
	if !deleted {
		return false, nil
	}

	s.cache.invalidate(ctx)
	s.publish(ctx, events.NewEvent(events.EventDepartamentoDeleted, id, departamentoPayload(existing, false)))
	return true, nil
}

// ListEmpleados returns a department with its employees in stored order.
// found is false when the department does not exist.
func (s *DepartamentoStore) ListEmpleados(ctx context.Context, id int64) (*domain.Departamento, []domain.Empleado, bool, error) {
	var (
		dept      *domain.Departamento
		empleados []domain.Empleado
	)
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		d, err := repos.Departamentos.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		dept = d
		empleados, err = repos.Empleados.ListByDepartamento(ctx, id)
		return err
	})
	if err != nil {
		return nil, nil, false, apperrors.MapError(err)
	}
	if dept == nil {
		return nil, nil, false, nil
	}
	if empleados == nil {
		empleados = []domain.Empleado{}
	}
	return dept, empleados, true, nil
}

// WriteEmpleadosReport writes the human-readable employee listing of a department to w.
func (s *DepartamentoStore) WriteEmpleadosReport(ctx context.Context, w io.Writer, id int64) error {
	dept, empleados, found, err := s.ListEmpleados(ctx, id)
	if err != nil {
		return err
	}
	return writeEmpleadosReport(w, id, dept, empleados, found)
}

func writeEmpleadosReport(w io.Writer, id int64, dept *domain.Departamento, empleados []domain.Empleado, found bool) error {
	var b strings.Builder
	switch {
	case !found:
		fmt.Fprintf(&b, "No se encontró el departamento con ID: %d\n", id)
	case len(empleados) == 0:
		fmt.Fprintf(&b, "El departamento '%s' no tiene empleados registrados.\n", dept.Nombre)
	default:
		fmt.Fprintf(&b, "Empleados en el departamento: %s\n", dept.Nombre)
		for _, emp := range empleados {
			fmt.Fprintf(&b, "- %s %s [Puesto: %s]\n", emp.Nombre, emp.Apellido, emp.Puesto)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// AddEmpleado stores a new employee under an existing department.
func (s *DepartamentoStore) AddEmpleado(ctx context.Context, departamentoID int64, empleado *domain.Empleado) error {
	if empleado == nil || strings.TrimSpace(empleado.Nombre) == "" {
		return apperrors.NewValidationError("nombre required", nil)
	}
	empleado.DepartamentoID = departamentoID

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Departamentos.GetByID(ctx, departamentoID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("departamento", map[string]any{"id": departamentoID})
			}
			return err
		}
		return repos.Empleados.Create(ctx, empleado)
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventEmpleadoAdded, departamentoID, events.EmpleadoAddedPayload{
		EmpleadoID: empleado.ID,
		Nombre:     empleado.NombreCompleto(),
		Puesto:     empleado.Puesto,
	}))
	return nil
}

func (s *DepartamentoStore) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("departamento_id", event.DepartamentoID),
			zap.Error(err))
	}
}

func validateDepartamento(dept *domain.Departamento) error {
	if dept == nil {
		return apperrors.NewValidationError("departamento required", nil)
	}
	details := map[string]any{}
	if strings.TrimSpace(dept.Nombre) == "" {
		details["nombre"] = "required"
	}
	if dept.EmpresaID <= 0 {
		details["empresa_id"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid departamento", details)
	}
	return nil
}

func requireEmpresa(ctx context.Context, repos repository.Repositories, empresaID int64) error {
	exists, err := repos.Empresas.Exists(ctx, empresaID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidationError("empresa does not exist", map[string]any{"empresa_id": empresaID})
	}
	return nil
}

func departamentoPayload(dept *domain.Departamento, upsert bool) events.DepartamentoPayload {
	return events.DepartamentoPayload{Nombre: dept.Nombre, EmpresaID: dept.EmpresaID, Upsert: upsert}
}
