package dto

import "github.com/invoxa/invoxa/internal/core/domain"

// RegisterUserRequest is the payload for creating a new user account.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}
