// Package error defines domain-specific errors for the Wardrobe Manager application.
package error

import "errors"

// Wardrobe domain errors.
var (
	// ErrClothingItemNotFound is returned when a clothing item is not found in the system.
	ErrClothingItemNotFound = errors.New("clothing item not found")

	// ErrAccessoryNotFound is returned when an accessory is not found in the system.
	ErrAccessoryNotFound = errors.New("accessory not found")

	// ErrInvalidClothingCategory is returned when the category is not in the closed set.
	ErrInvalidClothingCategory = errors.New("invalid clothing category")

	// ErrInvalidItemStatus is returned when the status is neither active nor donated.
	ErrInvalidItemStatus = errors.New("invalid item status")

	// ErrMissingItemFields is returned when required item fields are absent.
	ErrMissingItemFields = errors.New("missing required item fields")

	// ErrNotAuthorizedToAccessItem is returned when the item belongs to another user.
	ErrNotAuthorizedToAccessItem = errors.New("not authorized to access item")

	// ErrInvalidItemKind is returned when the item kind is neither clothing nor accessory.
	ErrInvalidItemKind = errors.New("invalid item kind")

	// ErrTooManyImages is returned when an upload would exceed the per-item image limit.
	ErrTooManyImages = errors.New("too many images")

	// ErrUnsupportedImageType is returned when an uploaded file is not an allowed image type.
	ErrUnsupportedImageType = errors.New("only image files are allowed")

	// ErrImageTooLarge is returned when an uploaded file exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")
)

// WardrobeErrorCode defines error codes for wardrobe item errors.
// Format: WRD-XXYYYY where XX is category and YYYY is specific error.
type WardrobeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingItemFields       WardrobeErrorCode = "WRD-010001"
	ErrCodeInvalidClothingCategory WardrobeErrorCode = "WRD-010002"
	ErrCodeInvalidItemStatus       WardrobeErrorCode = "WRD-010003"
	ErrCodeInvalidItemKind         WardrobeErrorCode = "WRD-010004"
	ErrCodeTooManyImages           WardrobeErrorCode = "WRD-010005"
	ErrCodeUnsupportedImageType    WardrobeErrorCode = "WRD-010006"
	ErrCodeImageTooLarge           WardrobeErrorCode = "WRD-010007"

	// Lookup errors (02XXXX)
	ErrCodeClothingItemNotFound WardrobeErrorCode = "WRD-020001"
	ErrCodeAccessoryNotFound    WardrobeErrorCode = "WRD-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotAuthorizedItem WardrobeErrorCode = "WRD-030001"

	// Internal errors (99XXXX)
	ErrCodeWardrobeStorageError WardrobeErrorCode = "WRD-990001"
)

// WardrobeError represents a wardrobe item error with code and message.
type WardrobeError struct {
	Code    WardrobeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WardrobeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WardrobeError) Unwrap() error {
	return e.Err
}

// NewWardrobeError creates a new WardrobeError with the given code and message.
func NewWardrobeError(code WardrobeErrorCode, message string, err error) *WardrobeError {
	return &WardrobeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
