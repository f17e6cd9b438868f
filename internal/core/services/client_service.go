package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	"github.com/invoxa/invoxa/internal/dto"
)

// ClientService provides business logic for clients.
type ClientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClient persists a new client for the user.
func (s *ClientService) CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID: uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in service: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a client owned by the user.
func (s *ClientService) GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client in service: %w", err)
	}
	return client, nil
}

// ListClients retrieves all clients owned by the user.
func (s *ClientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients in service: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// UpdateClient updates a client owned by the user.
func (s *ClientService) UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client for update: %w", err)
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.LastUpdatedAt = time.Now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client in service: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client. A client that invoices still reference
// cannot be deleted; the caller gets apperrors.ErrConflict instead of a
// cascade.
func (s *ClientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, userID, clientID); err != nil {
		return fmt.Errorf("failed to get client for deletion: %w", err)
	}

	count, err := s.clientRepo.CountInvoicesForClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to count invoices for client: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: client has %d invoice(s)", apperrors.ErrConflict, count)
	}

	if err := s.clientRepo.DeleteClient(ctx, userID, clientID); err != nil {
		return fmt.Errorf("failed to delete client in service: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
