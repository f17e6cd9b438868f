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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient persists a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, user_id, name, email, phone, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.CreatedAt,
		client.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

// FindClientByID retrieves a client owned by the given user.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, user_id, name, email, phone, address, created_at, last_updated_at
		FROM clients
		WHERE client_id = $1 AND user_id = $2;
	`
	var client domain.Client
	err := r.Pool.QueryRow(ctx, query, clientID, userID).Scan(
		&client.ClientID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.CreatedAt,
		&client.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by id %s: %w", clientID, err)
	}
	return &client, nil
}

// ListClients retrieves all clients owned by the given user, newest first.
func (r *PgxClientRepository) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, user_id, name, email, phone, address, created_at, last_updated_at
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ClientID,
			&client.UserID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Address,
			&client.CreatedAt,
			&client.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return clients, nil
}

// CountInvoicesForClient reports how many invoices reference the client.
func (r *PgxClientRepository) CountInvoicesForClient(ctx context.Context, clientID string) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE client_id = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices for client: %w", err)
	}
	return count, nil
}

// UpdateClient updates an existing client owned by the given user.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, last_updated_at = $5
		WHERE client_id = $6 AND user_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.LastUpdatedAt,
		client.ClientID,
		client.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client owned by the given user.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, userID, clientID string) error {
	query := `DELETE FROM clients WHERE client_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
