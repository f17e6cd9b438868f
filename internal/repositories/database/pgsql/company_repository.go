package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company profile data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByUser retrieves the company profile owned by the given user.
func (r *PgxCompanyRepository) FindCompanyByUser(ctx context.Context, userID string) (*domain.Company, error) {
	query := `
		SELECT company_id, user_id, name, email, phone, address, website, default_currency, created_at, last_updated_at
		FROM companies
		WHERE user_id = $1;
	`
	var company domain.Company
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&company.CompanyID,
		&company.UserID,
		&company.Name,
		&company.Email,
		&company.Phone,
		&company.Address,
		&company.Website,
		&company.DefaultCurrency,
		&company.CreatedAt,
		&company.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company for user %s: %w", userID, err)
	}
	return &company, nil
}

// UpsertCompany creates or replaces the user's company profile. user_id
// carries a unique constraint, so the conflict target keeps one profile per
// user.
func (r *PgxCompanyRepository) UpsertCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, user_id, name, email, phone, address, website, default_currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			website = EXCLUDED.website,
			default_currency = EXCLUDED.default_currency,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.UserID,
		company.Name,
		company.Email,
		company.Phone,
		company.Address,
		company.Website,
		company.DefaultCurrency,
		company.CreatedAt,
		company.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company: %w", err)
	}
	return nil
}
