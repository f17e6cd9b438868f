package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		DashboardRepo: newPgxDashboardRepository(dbPool),
	}
}
