package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// CreateClothingRequest represents the request body for clothing item creation.
type CreateClothingRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"required"`
	Color    string `json:"color" binding:"max=50"`
	Season   string `json:"season"`
	Occasion string `json:"occasion" binding:"max=100"`
}

// UpdateClothingRequest represents the request body for clothing item update.
type UpdateClothingRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty" binding:"omitempty,max=50"`
	Season   *string `json:"season,omitempty"`
	Occasion *string `json:"occasion,omitempty" binding:"omitempty,max=100"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=active donated"`
}

// ClothingResponse represents a single clothing item in API responses.
type ClothingResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Color     string          `json:"color"`
	Season    string          `json:"season"`
	Occasion  string          `json:"occasion"`
	Status    string          `json:"status"`
	WearCount int             `json:"wear_count"`
	LastWorn  *time.Time      `json:"last_worn"`
	Images    []ImageResponse `json:"images"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ClothingListResponse represents the response for listing clothing items.
type ClothingListResponse struct {
	Clothes []ClothingResponse `json:"clothes"`
}

// ToClothingResponse converts a domain ClothingItem to a ClothingResponse DTO.
func ToClothingResponse(item *entity.ClothingItem) ClothingResponse {
	return ClothingResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  string(item.Category),
		Color:     item.Color,
		Season:    item.Season,
		Occasion:  item.Occasion,
		Status:    string(item.Status),
		WearCount: item.WearCount,
		LastWorn:  item.LastWorn,
		Images:    ToImageResponses(item.Images),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToClothingResponses converts a list of clothing items.
func ToClothingResponses(items []*entity.ClothingItem) []ClothingResponse {
	result := make([]ClothingResponse, len(items))
	for i, item := range items {
		result[i] = ToClothingResponse(item)
	}
	return result
}

// ToClothingListResponse wraps a list of clothing items.
func ToClothingListResponse(items []*entity.ClothingItem) ClothingListResponse {
	return ClothingListResponse{Clothes: ToClothingResponses(items)}
}
