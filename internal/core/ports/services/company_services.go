package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/dto"
)

// CompanySvcFacade manages the per-user company profile.
type CompanySvcFacade interface {
	// GetCompanyByUser retrieves the user's company profile.
	GetCompanyByUser(ctx context.Context, userID string) (*domain.Company, error)

	// UpsertCompany creates or replaces the user's company profile.
	UpsertCompany(ctx context.Context, userID string, req dto.UpsertCompanyRequest) (*domain.Company, error)
}
