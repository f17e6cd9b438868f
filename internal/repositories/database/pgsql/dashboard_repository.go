package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
)

type PgxDashboardRepository struct {
	BaseRepository
}

// newPgxDashboardRepository creates the repository behind the dashboard's
// aggregate queries.
func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

// PaidInvoiceTotals returns the totals of PAID invoices created in [from, to),
// each paired with the invoice currency. Currency normalization happens in the
// service, not here.
func (r *PgxDashboardRepository) PaidInvoiceTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.MonetaryAmount, error) {
	query := `
		SELECT total, currency
		FROM invoices
		WHERE user_id = $1 AND status = $2 AND created_at >= $3 AND created_at < $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, domain.InvoiceStatusPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid invoice totals: %w", err)
	}
	defer rows.Close()

	var amounts []domain.MonetaryAmount
	for rows.Next() {
		var amount domain.MonetaryAmount
		if err := rows.Scan(&amount.Amount, &amount.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan invoice total row: %w", err)
		}
		amounts = append(amounts, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice total rows: %w", err)
	}
	return amounts, nil
}

// CountInvoicesCreated counts invoices created in [from, to).
func (r *PgxDashboardRepository) CountInvoicesCreated(ctx context.Context, userID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count created invoices: %w", err)
	}
	return count, nil
}

// CountInvoicesByStatus counts the user's invoices in any of the given states.
func (r *PgxDashboardRepository) CountInvoicesByStatus(ctx context.Context, userID string, statuses ...domain.InvoiceStatus) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices
		WHERE user_id = $1 AND status = ANY($2);
	`
	states := make([]string, len(statuses))
	for i, s := range statuses {
		states[i] = string(s)
	}

	var count int
	if err := r.Pool.QueryRow(ctx, query, userID, states).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices by status: %w", err)
	}
	return count, nil
}

// RecentInvoices returns the most recently created invoices with client
// summaries, newest first.
func (r *PgxDashboardRepository) RecentInvoices(ctx context.Context, userID string, limit int) ([]domain.RecentInvoice, error) {
	query := `
		SELECT i.invoice_id, i.number, c.name, c.email, i.status, i.total, i.currency, i.due_date, i.created_at
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}
	defer rows.Close()

	var recent []domain.RecentInvoice
	for rows.Next() {
		var inv domain.RecentInvoice
		if err := rows.Scan(
			&inv.InvoiceID,
			&inv.Number,
			&inv.ClientName,
			&inv.ClientEmail,
			&inv.Status,
			&inv.Total,
			&inv.Currency,
			&inv.DueDate,
			&inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recent invoice row: %w", err)
		}
		recent = append(recent, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent invoice rows: %w", err)
	}
	return recent, nil
}
