package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc

	// AuthenticateUser verifies credentials and returns the matching user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// GenerateSessionToken creates a signed session token for the user.
	GenerateSessionToken(ctx context.Context, user *domain.User) (string, error)
}
