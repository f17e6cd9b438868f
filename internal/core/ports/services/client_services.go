package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client owned by the user.
	GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients owned by the user.
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient persists a new client for the user.
	CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates a client owned by the user.
	UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client; fails with apperrors.ErrConflict while
	// invoices still reference it.
	DeleteClient(ctx context.Context, userID, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
