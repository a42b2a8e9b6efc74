// Package error defines domain-specific errors for the Wardrobe Manager application.
package error

import "errors"

// Outfit domain errors.
var (
	// ErrOutfitNotFound is returned when an outfit is not found in the system.
	ErrOutfitNotFound = errors.New("outfit not found")

	// ErrInsufficientWardrobe is returned when no eligible top or bottom exists.
	ErrInsufficientWardrobe = errors.New("not enough clothes to generate an outfit")

	// ErrLocationRequired is returned when neither the request nor the user provide a location.
	ErrLocationRequired = errors.New("location is required")

	// ErrMissingOutfitFields is returned when required outfit fields are absent.
	ErrMissingOutfitFields = errors.New("missing required outfit fields")

	// ErrOutfitItemNotFound is returned when an outfit references an item the user does not own.
	ErrOutfitItemNotFound = errors.New("outfit references an unknown item")

	// ErrRepositoryUnavailable is returned when the backing store cannot serve a request.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// OutfitErrorCode defines error codes for outfit errors.
// Format: OUT-XXYYYY where XX is category and YYYY is specific error.
type OutfitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingOutfitFields OutfitErrorCode = "OUT-010001"
	ErrCodeLocationRequired    OutfitErrorCode = "OUT-010002"
	ErrCodeOutfitItemNotFound  OutfitErrorCode = "OUT-010003"

	// Generation errors (02XXXX)
	ErrCodeInsufficientWardrobe OutfitErrorCode = "OUT-020001"

	// Lookup errors (03XXXX)
	ErrCodeOutfitNotFound       OutfitErrorCode = "OUT-030001"
	ErrCodeOutfitUserNotFound   OutfitErrorCode = "OUT-030002"
	ErrCodeOutfitWeatherMissing OutfitErrorCode = "OUT-030003"

	// Internal errors (99XXXX)
	ErrCodeRepositoryUnavailable OutfitErrorCode = "OUT-990001"
)

// OutfitError represents an outfit error with code and message.
type OutfitError struct {
	Code    OutfitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OutfitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OutfitError) Unwrap() error {
	return e.Err
}

// NewOutfitError creates a new OutfitError with the given code and message.
func NewOutfitError(code OutfitErrorCode, message string, err error) *OutfitError {
	return &OutfitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
