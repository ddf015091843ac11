package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/api/http/handlers"
	"github.com/orgdesk/org-service/internal/auth"
	"github.com/orgdesk/org-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Empresas       *handlers.EmpresasHandler
	Departamentos  *handlers.DepartamentosHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are public; writes require an admin token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/token", cfg.Auth.Token)

	admin := []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin)}

	empresas := app.Group("/empresas")
	empresas.Get("/", cfg.Empresas.List)
	empresas.Get("/:id", cfg.Empresas.Get)
	empresas.Get("/:id/departamentos", cfg.Departamentos.ListByEmpresa)
	empresas.Post("/", withAdmin(admin, cfg.Empresas.Create)...)

	departamentos := app.Group("/departamentos")
	departamentos.Get("/", cfg.Departamentos.List)
	departamentos.Get("/:id", cfg.Departamentos.Get)
	departamentos.Get("/:id/empleados", cfg.Departamentos.ListEmpleados)
	departamentos.Post("/", withAdmin(admin, cfg.Departamentos.Create)...)
	departamentos.Put("/", withAdmin(admin, cfg.Departamentos.Upsert)...)
	departamentos.Put("/:id", withAdmin(admin, cfg.Departamentos.Update)...)
	departamentos.Delete("/:id", withAdmin(admin, cfg.Departamentos.Delete)...)
	departamentos.Post("/:id/empleados", withAdmin(admin, cfg.Departamentos.AddEmpleado)...)

	if cfg.Metrics != nil {
		app.Get("/internal/metrics", withAdmin(admin, cfg.Metrics.Snapshot)...)
	}
}

func withAdmin(admin []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(admin)+1)
	out = append(out, admin...)
	return append(out, h)
}
