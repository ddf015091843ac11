package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/api/dto"
	"github.com/orgdesk/org-service/internal/domain"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

// DepartamentoService is the store surface the handler needs.
type DepartamentoService interface {
	Create(ctx context.Context, dept *domain.Departamento) error
	Save(ctx context.Context, dept *domain.Departamento) error
	GetByID(ctx context.Context, id int64) (*domain.Departamento, bool, error)
	List(ctx context.Context) ([]domain.Departamento, error)
	ListByEmpresa(ctx context.Context, empresaID int64) ([]domain.Departamento, error)
	UpdateByID(ctx context.Context, id int64, dept *domain.Departamento) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	ListEmpleados(ctx context.Context, id int64) (*domain.Departamento, []domain.Empleado, bool, error)
	WriteEmpleadosReport(ctx context.Context, w io.Writer, id int64) error
	AddEmpleado(ctx context.Context, departamentoID int64, empleado *domain.Empleado) error
}

// DepartamentosHandler serves department endpoints.
type DepartamentosHandler struct {
	store DepartamentoService
}

// NewDepartamentosHandler constructs handler.
func NewDepartamentosHandler(store DepartamentoService) *DepartamentosHandler {
	return &DepartamentosHandler{store: store}
}

// List GET /departamentos.
func (h *DepartamentosHandler) List(c *fiber.Ctx) error {
	list, err := h.store.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartamentoList(list)})
}

// ListByEmpresa GET /empresas/:id/departamentos.
func (h *DepartamentosHandler) ListByEmpresa(c *fiber.Ctx) error {
	empresaID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	list, err := h.store.ListByEmpresa(c.UserContext(), empresaID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartamentoList(list)})
}

// Get GET /departamentos/:id.
func (h *DepartamentosHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	dept, found, err := h.store.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("departamento", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartamentoResponse(dept)})
}

// Create POST /departamentos.
func (h *DepartamentosHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartamentoRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	dept := req.ToDomain()
	if err := h.store.Create(c.UserContext(), dept); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDepartamentoResponse(dept)})
}

// Upsert PUT /departamentos.
func (h *DepartamentosHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertDepartamentoRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	dept := req.ToDomain()
	if err := h.store.Save(c.UserContext(), dept); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartamentoResponse(dept)})
}

// Update PUT /departamentos/:id.
func (h *DepartamentosHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.DepartamentoRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	dept := req.ToDomain()
	if err := h.store.UpdateByID(c.UserContext(), id, dept); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartamentoResponse(dept)})
}

// Delete DELETE /departamentos/:id. Deleting a missing department is not an error.
func (h *DepartamentosHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.store.DeleteByID(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListEmpleados GET /departamentos/:id/empleados. ?format=text returns the console report.
func (h *DepartamentosHandler) ListEmpleados(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if c.Query("format") == "text" {
		var buf bytes.Buffer
		if err := h.store.WriteEmpleadosReport(c.UserContext(), &buf, id); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Send(buf.Bytes())
	}

	dept, empleados, found, err := h.store.ListEmpleados(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("departamento", map[string]any{"id": id})
	}
	items := make([]dto.EmpleadoResponse, 0, len(empleados))
	for i := range empleados {
		items = append(items, dto.NewEmpleadoResponse(&empleados[i]))
	}
	return c.JSON(fiber.Map{"data": dto.DepartamentoEmpleadosResponse{
		Departamento: dto.NewDepartamentoResponse(dept),
		Empleados:    items,
	}})
}

// AddEmpleado POST /departamentos/:id/empleados.
func (h *DepartamentosHandler) AddEmpleado(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.EmpleadoRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	empleado := req.ToDomain()
	if err := h.store.AddEmpleado(c.UserContext(), id, empleado); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEmpleadoResponse(empleado)})
}
