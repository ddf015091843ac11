package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/orgdesk/org-service/internal/api/dto"
)

// TokenIssuer exchanges credentials for a bearer token.
type TokenIssuer interface {
	IssueToken(ctx context.Context, username, password string) (string, time.Time, error)
}

// AuthHandler exposes the token endpoint.
type AuthHandler struct {
	issuer TokenIssuer
}

// NewAuthHandler constructs handler.
func NewAuthHandler(issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	token, exp, err := h.issuer.IssueToken(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TokenResponse{Token: token, ExpiresAt: exp}})
}
