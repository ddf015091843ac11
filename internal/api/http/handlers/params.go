package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/api/dto"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

func idParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{name: raw})
	}
	return id, nil
}

func bindJSON(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return dto.Validate(req)
}
