package repositories

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client owned by the given user.
	FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients owned by the given user, newest first.
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)

	// CountInvoicesForClient reports how many invoices reference the client.
	CountInvoicesForClient(ctx context.Context, clientID string) (int, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client owned by the given user.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client owned by the given user.
	DeleteClient(ctx context.Context, userID, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
