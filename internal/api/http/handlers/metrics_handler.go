package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/observability"
)

// MetricsSource exposes the in-process request and error counters.
type MetricsSource interface {
	Snapshot() observability.Snapshot
}

// MetricsHandler serves the counter snapshot to operators.
type MetricsHandler struct {
	source MetricsSource
}

// NewMetricsHandler returns a new handler instance.
func NewMetricsHandler(source MetricsSource) *MetricsHandler {
	return &MetricsHandler{source: source}
}

// Snapshot returns the counters keyed by route pattern, method and status or error code.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.source.Snapshot()})
}
