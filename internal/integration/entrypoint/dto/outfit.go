package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/usecase/outfit"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// CreateOutfitRequest represents the request body for manual outfit creation.
type CreateOutfitRequest struct {
	Name             string   `json:"name" binding:"required,max=255"`
	ClothingItems    []string `json:"clothing_items" binding:"dive,uuid"`
	Accessories      []string `json:"accessories" binding:"dive,uuid"`
	WeatherCondition string   `json:"weather_condition" binding:"max=50"`
}

// UpdateOutfitRequest represents the request body for outfit update.
// Only provided fields are replaced.
type UpdateOutfitRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	ClothingItems    []string `json:"clothing_items,omitempty" binding:"omitempty,dive,uuid"`
	Accessories      []string `json:"accessories,omitempty" binding:"omitempty,dive,uuid"`
	WeatherCondition *string  `json:"weather_condition,omitempty" binding:"omitempty,max=50"`
}

// GenerateOutfitRequest represents the optional body of POST /outfits/generate.
type GenerateOutfitRequest struct {
	Location string `json:"location"`
}

// OutfitResponse represents an outfit in API responses.
type OutfitResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ClothingItemIDs  []string            `json:"clothing_item_ids"`
	AccessoryIDs     []string            `json:"accessory_ids"`
	ClothingItems    []ClothingResponse  `json:"clothing_items,omitempty"`
	Accessories      []AccessoryResponse `json:"accessories,omitempty"`
	WeatherCondition string              `json:"weather_condition"`
	WearCount        int                 `json:"wear_count"`
	Images           []ImageResponse     `json:"images"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OutfitListResponse represents the response for listing outfits.
type OutfitListResponse struct {
	Outfits []OutfitResponse `json:"outfits"`
}

// GenerateOutfitResponse represents the response of outfit generation.
type GenerateOutfitResponse struct {
	Outfit  OutfitResponse  `json:"outfit"`
	Weather WeatherResponse `json:"weather"`
	Season  string          `json:"season"`
}

// ToOutfitResponse converts a domain Outfit to an OutfitResponse DTO.
func ToOutfitResponse(o *entity.Outfit) OutfitResponse {
	return OutfitResponse{
		ID:               o.ID.String(),
		Name:             o.Name,
		ClothingItemIDs:  uuidStrings(o.ClothingItems),
		AccessoryIDs:     uuidStrings(o.Accessories),
		WeatherCondition: o.WeatherCondition,
		WearCount:        o.WearCount,
		Images:           ToImageResponses(o.Images),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToOutfitWithItemsResponse converts an outfit with its resolved items.
func ToOutfitWithItemsResponse(o *entity.OutfitWithItems) OutfitResponse {
	response := ToOutfitResponse(o.Outfit)
	response.ClothingItems = ToClothingResponses(o.ClothingItems)
	response.Accessories = ToAccessoryResponses(o.Accessories)
	return response
}

// ToOutfitListResponse converts a list of outfits with resolved items.
func ToOutfitListResponse(outfits []*entity.OutfitWithItems) OutfitListResponse {
	result := make([]OutfitResponse, len(outfits))
	for i, o := range outfits {
		result[i] = ToOutfitWithItemsResponse(o)
	}
	return OutfitListResponse{Outfits: result}
}

// ToGenerateOutfitResponse converts the output of outfit generation.
func ToGenerateOutfitResponse(output *outfit.GenerateOutfitOutput) GenerateOutfitResponse {
	return GenerateOutfitResponse{
		Outfit:  ToOutfitResponse(output.Outfit),
		Weather: ToWeatherResponse(output.Weather),
		Season:  string(output.Season),
	}
}

// ParseUUIDs parses a list of string IDs. A nil input yields nil.
func ParseUUIDs(values []string) ([]uuid.UUID, error) {
	if values == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}
