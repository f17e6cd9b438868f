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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice persists a new invoice and its items atomically.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	invoiceQuery := `
		INSERT INTO invoices (invoice_id, user_id, client_id, number, status, currency, template_id,
			issue_date, due_date, subtotal, tax_rate, tax_amount, total, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		invoice.InvoiceID,
		invoice.UserID,
		invoice.ClientID,
		invoice.Number,
		invoice.Status,
		invoice.Currency,
		invoice.TemplateID,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Subtotal,
		invoice.TaxRate,
		invoice.TaxAmount,
		invoice.Total,
		invoice.Notes,
		invoice.CreatedAt,
		invoice.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range invoice.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ItemID,
			item.InvoiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.Amount,
			item.Position,
		); err != nil {
			return fmt.Errorf("failed to save invoice item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice with its items, scoped to the user.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, user_id, client_id, number, status, currency, template_id,
			issue_date, due_date, subtotal, tax_rate, tax_amount, total, notes, created_at, last_updated_at
		FROM invoices
		WHERE invoice_id = $1 AND user_id = $2;
	`
	var inv domain.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID, userID).Scan(
		&inv.InvoiceID,
		&inv.UserID,
		&inv.ClientID,
		&inv.Number,
		&inv.Status,
		&inv.Currency,
		&inv.TemplateID,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.TaxRate,
		&inv.TaxAmount,
		&inv.Total,
		&inv.Notes,
		&inv.CreatedAt,
		&inv.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by id %s: %w", invoiceID, err)
	}

	items, err := r.findItems(ctx, inv.InvoiceID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, description, quantity, unit_price, amount, position
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice items: %w", err)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(
			&item.ItemID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.Amount,
			&item.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice item rows: %w", err)
	}
	return items, nil
}

// ListInvoices retrieves a page of invoices matching the filter, newest
// first, along with the total match count. Search matches invoice number,
// client name or client email, case-insensitively.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter, page portsrepo.Pagination) ([]portsrepo.InvoiceListRow, int, error) {
	where := `WHERE i.user_id = $1`
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (i.number ILIKE $%d OR c.name ILIKE $%d OR c.email ILIKE $%d)", n, n, n)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
	` + where
	var total int
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT i.invoice_id, i.user_id, i.client_id, i.number, i.status, i.currency, i.template_id,
			i.issue_date, i.due_date, i.subtotal, i.tax_rate, i.tax_amount, i.total, i.notes,
			i.created_at, i.last_updated_at, c.name, c.email
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		%s
		ORDER BY i.created_at DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var out []portsrepo.InvoiceListRow
	for rows.Next() {
		var row portsrepo.InvoiceListRow
		inv := &row.Invoice
		if err := rows.Scan(
			&inv.InvoiceID,
			&inv.UserID,
			&inv.ClientID,
			&inv.Number,
			&inv.Status,
			&inv.Currency,
			&inv.TemplateID,
			&inv.IssueDate,
			&inv.DueDate,
			&inv.Subtotal,
			&inv.TaxRate,
			&inv.TaxAmount,
			&inv.Total,
			&inv.Notes,
			&inv.CreatedAt,
			&inv.LastUpdatedAt,
			&row.ClientName,
			&row.ClientEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice list row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate invoice list rows: %w", err)
	}
	return out, total, nil
}

// NextInvoiceNumber returns the next sequential invoice ordinal for the user,
// derived from the highest number issued so far. Deleting an invoice never
// causes a number to be reissued unless it held the maximum.
func (r *PgxInvoiceRepository) NextInvoiceNumber(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(number FROM 5) AS INTEGER)), 0) + 1
		FROM invoices
		WHERE user_id = $1;
	`
	var next int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next invoice number: %w", err)
	}
	return next, nil
}

// UpdateInvoiceStatus updates the lifecycle status of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) error {
	query := `
		UPDATE invoices
		SET status = $1, last_updated_at = NOW()
		WHERE invoice_id = $2 AND user_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, status, invoiceID, userID)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes an invoice; its items go with it via the cascading
// foreign key.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
