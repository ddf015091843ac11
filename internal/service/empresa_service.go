package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/orgdesk/org-service/internal/domain"
	"github.com/orgdesk/org-service/internal/repository"
	apperrors "github.com/orgdesk/org-service/pkg/util/errorutil"
)

// EmpresaService manages the companies departments belong to.
type EmpresaService struct {
	uow repository.UnitOfWork
}

// NewEmpresaService constructs the service.
func NewEmpresaService(uow repository.UnitOfWork) *EmpresaService {
	return &EmpresaService{uow: uow}
}

// Create inserts a company.
func (s *EmpresaService) Create(ctx context.Context, empresa *domain.Empresa) error {
	if empresa == nil || strings.TrimSpace(empresa.Nombre) == "" {
		return apperrors.NewValidationError("nombre required", nil)
	}
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Empresas.Create(ctx, empresa)
	})
	return apperrors.MapError(err)
}

// GetByID returns found=false when the company does not exist.
func (s *EmpresaService) GetByID(ctx context.Context, id int64) (*domain.Empresa, bool, error) {
	var empresa *domain.Empresa
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		e, err := repos.Empresas.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		empresa = e
		return err
	})
	if err != nil {
		return nil, false, apperrors.MapError(err)
	}
	return empresa, empresa != nil, nil
}

// List returns every company ordered by id.
func (s *EmpresaService) List(ctx context.Context) ([]domain.Empresa, error) {
	var list []domain.Empresa
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		var err error
		list, err = repos.Empresas.List(ctx)
		return err
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if list == nil {
		list = []domain.Empresa{}
	}
	return list, nil
}
