package service

import (
	"context"
	"time"

	"github.com/orgdesk/org-service/internal/auth"
	"github.com/orgdesk/org-service/internal/config"
	"github.com/orgdesk/org-service/internal/domain"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

// AuthService exchanges the configured admin credentials for access tokens.
type AuthService struct {
	tokenMgr *auth.TokenManager
	admin    auth.AdminCredentials
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		admin:    auth.AdminCredentials{User: cfg.AdminUser, PasswordHash: cfg.AdminPasswordHash},
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// IssueToken validates credentials and returns a signed admin token.
func (s *AuthService) IssueToken(_ context.Context, username, password string) (string, time.Time, error) {
	if !s.admin.Enabled() {
		return "", time.Time{}, apperrors.NewUnauthorized("admin login disabled")
	}
	if !s.admin.Verify(username, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(username, domain.RoleAdmin)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}
