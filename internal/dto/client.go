package dto

import "github.com/invoxa/invoxa/internal/core/domain"

// CreateClientRequest is the payload for creating a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// UpdateClientRequest is the payload for updating a client.
type UpdateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// ClientResponse is the API representation of a client.
type ClientResponse struct {
	ClientID string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ToClientResponse converts a domain client to its API representation.
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: client.ClientID,
		Name:     client.Name,
		Email:    client.Email,
		Phone:    client.Phone,
		Address:  client.Address,
	}
}

// ToClientListResponse converts a slice of domain clients.
func ToClientListResponse(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
