package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// CreateAccessoryRequest represents the request body for accessory creation.
type CreateAccessoryRequest struct {
	Name           string   `json:"name" binding:"required,max=255"`
	Color          string   `json:"color" binding:"required,max=50"`
	Type           string   `json:"type" binding:"max=50"`
	CompatibleWith []string `json:"compatible_with"`
}

// UpdateAccessoryRequest represents the request body for accessory update.
type UpdateAccessoryRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Color          *string  `json:"color,omitempty" binding:"omitempty,max=50"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,max=50"`
	CompatibleWith []string `json:"compatible_with,omitempty"`
	Status         *string  `json:"status,omitempty" binding:"omitempty,oneof=active donated"`
}

// AccessoryResponse represents a single accessory in API responses.
type AccessoryResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Color          string         `json:"color"`
	Type           string         `json:"type"`
	CompatibleWith []string       `json:"compatible_with"`
	Status         string         `json:"status"`
	WearCount      int            `json:"wear_count"`
	LastWorn       *time.Time     `json:"last_worn"`
	Image          *ImageResponse `json:"image"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AccessoryListResponse represents the response for listing accessories.
type AccessoryListResponse struct {
	Accessories []AccessoryResponse `json:"accessories"`
}

// ToAccessoryResponse converts a domain Accessory to an AccessoryResponse DTO.
func ToAccessoryResponse(a *entity.Accessory) AccessoryResponse {
	response := AccessoryResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Color:          a.Color,
		Type:           a.Type,
		CompatibleWith: a.CompatibleWith,
		Status:         string(a.Status),
		WearCount:      a.WearCount,
		LastWorn:       a.LastWorn,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if response.CompatibleWith == nil {
		response.CompatibleWith = []string{}
	}
	if a.Image != nil {
		response.Image = &ImageResponse{URL: a.Image.URL, PublicID: a.Image.PublicID}
	}
	return response
}

// ToAccessoryResponses converts a list of accessories.
func ToAccessoryResponses(accessories []*entity.Accessory) []AccessoryResponse {
	result := make([]AccessoryResponse, len(accessories))
	for i, a := range accessories {
		result[i] = ToAccessoryResponse(a)
	}
	return result
}

// ToAccessoryListResponse wraps a list of accessories.
func ToAccessoryListResponse(accessories []*entity.Accessory) AccessoryListResponse {
	return AccessoryListResponse{Accessories: ToAccessoryResponses(accessories)}
}
