package repositories

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// CompanyReader defines read operations for company profile data
type CompanyReader interface {
	// FindCompanyByUser retrieves the company profile owned by the given user.
	FindCompanyByUser(ctx context.Context, userID string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company profile data
type CompanyWriter interface {
	// UpsertCompany creates or replaces the user's company profile.
	UpsertCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
