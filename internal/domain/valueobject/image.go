package valueobject

import (
	"strings"

	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// Image upload limits.
const (
	MaxImageSize         int64 = 5 * 1024 * 1024
	MaxImagesPerClothing       = 5
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ImageExtension returns the file extension for an accepted image content type.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := allowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ext, ok
}

// ValidateImage checks the type and size of an upload and returns the extension to store it with.
func ValidateImage(contentType string, size int64) (string, error) {
	ext, ok := ImageExtension(contentType)
	if !ok {
		return "", domainerror.NewWardrobeError(
			domainerror.ErrCodeUnsupportedImageType,
			"only image files are allowed (jpeg, jpg, png, gif)",
			domainerror.ErrUnsupportedImageType,
		)
	}

	if size > MaxImageSize {
		return "", domainerror.NewWardrobeError(
			domainerror.ErrCodeImageTooLarge,
			"image must not exceed 5MB",
			domainerror.ErrImageTooLarge,
		)
	}

	return ext, nil
}
