// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email            string   `json:"email" binding:"required,email"`
	Name             string   `json:"name" binding:"required,min=1,max=100"`
	Password         string   `json:"password" binding:"required,min=8"`
	Location         string   `json:"location" binding:"max=255"`
	StylePreferences []string `json:"style_preferences"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents the request body for PATCH /users/me.
type UpdateProfileRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Location         *string  `json:"location,omitempty" binding:"omitempty,max=255"`
	StylePreferences []string `json:"style_preferences,omitempty"`
}

// AuthResponse represents the response for register, login and token refresh.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	StylePreferences []string  `json:"style_preferences"`
	CreatedAt        time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	preferences := user.StylePreferences
	if preferences == nil {
		preferences = []string{}
	}
	return UserResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Name:             user.Name,
		Location:         user.Location,
		StylePreferences: preferences,
		CreatedAt:        user.CreatedAt,
	}
}
