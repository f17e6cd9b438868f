package services

import (
	"context"
	"fmt"
	"time"

	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/utils"
)

// TokenService issues signed session tokens.
type TokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, expiry time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret: secret,
		expiry: expiry,
		issuer: issuer,
	}
}

// GenerateSessionToken creates a signed session token for the user.
func (s *TokenService) GenerateSessionToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}
