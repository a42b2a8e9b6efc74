package dto

import "github.com/wardrobe-manager/backend/internal/domain/entity"

// ImageResponse represents a stored picture.
type ImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ToImageResponses converts domain images, never returning nil.
func ToImageResponses(images []entity.Image) []ImageResponse {
	result := make([]ImageResponse, len(images))
	for i, img := range images {
		result[i] = ImageResponse{URL: img.URL, PublicID: img.PublicID}
	}
	return result
}
