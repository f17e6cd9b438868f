package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/utils"
)

// UserService provides business logic for user accounts and credential
// authentication.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser creates a new user with a hashed password. Emails are unique,
// case-insensitively.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user in service: %w", err)
	}
	return user, nil
}

// AuthenticateUser verifies credentials and returns the matching user. Both a
// missing account and a wrong password come back as apperrors.ErrUnauthorized
// so the response never reveals which one it was.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}
