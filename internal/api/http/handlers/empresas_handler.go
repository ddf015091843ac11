package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/api/dto"
	"github.com/orgdesk/org-service/internal/domain"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

// EmpresaService is the company surface the handler needs.
type EmpresaService interface {
	Create(ctx context.Context, empresa *domain.Empresa) error
	GetByID(ctx context.Context, id int64) (*domain.Empresa, bool, error)
	List(ctx context.Context) ([]domain.Empresa, error)
}

// EmpresasHandler serves company endpoints.
type EmpresasHandler struct {
	service EmpresaService
}

// NewEmpresasHandler constructs handler.
func NewEmpresasHandler(svc EmpresaService) *EmpresasHandler {
	return &EmpresasHandler{service: svc}
}

// List GET /empresas.
func (h *EmpresasHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewEmpresaResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /empresas/:id.
func (h *EmpresasHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	empresa, found, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("empresa", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": dto.NewEmpresaResponse(empresa)})
}

// Create POST /empresas.
func (h *EmpresasHandler) Create(c *fiber.Ctx) error {
	var req dto.EmpresaRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	empresa := &domain.Empresa{Nombre: req.Nombre}
	if err := h.service.Create(c.UserContext(), empresa); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEmpresaResponse(empresa)})
}
