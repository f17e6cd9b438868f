package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	"github.com/invoxa/invoxa/internal/dto"
)

// CompanyService manages the per-user company profile.
type CompanyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// GetCompanyByUser retrieves the user's company profile.
func (s *CompanyService) GetCompanyByUser(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company in service: %w", err)
	}
	return company, nil
}

// UpsertCompany creates or replaces the user's company profile. Each user has
// at most one profile; an existing one keeps its id and creation timestamp.
func (s *CompanyService) UpsertCompany(ctx context.Context, userID string, req dto.UpsertCompanyRequest) (*domain.Company, error) {
	now := time.Now()

	company := domain.Company{
		UserID:          userID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Website:         req.Website,
		DefaultCurrency: req.DefaultCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if company.DefaultCurrency == "" {
		company.DefaultCurrency = domain.DefaultCurrencyCode
	}

	existing, err := s.companyRepo.FindCompanyByUser(ctx, userID)
	switch {
	case err == nil:
		company.CompanyID = existing.CompanyID
		company.CreatedAt = existing.CreatedAt
	case errors.Is(err, apperrors.ErrNotFound):
		company.CompanyID = uuid.NewString()
	default:
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}

	if err := s.companyRepo.UpsertCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to upsert company in service: %w", err)
	}
	return &company, nil
}
