package model

import "github.com/wardrobe-manager/backend/internal/domain/entity"

// ImageJSON is the stored form of an item picture.
type ImageJSON struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func imagesFromEntity(images []entity.Image) []ImageJSON {
	result := make([]ImageJSON, len(images))
	for i, img := range images {
		result[i] = ImageJSON{URL: img.URL, PublicID: img.PublicID}
	}
	return result
}

func imagesToEntity(images []ImageJSON) []entity.Image {
	result := make([]entity.Image, len(images))
	for i, img := range images {
		result[i] = entity.Image{URL: img.URL, PublicID: img.PublicID}
	}
	return result
}
