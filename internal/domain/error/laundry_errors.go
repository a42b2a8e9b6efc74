// Package error defines domain-specific errors for the Wardrobe Manager application.
package error

import "errors"

// Laundry domain errors.
var (
	// ErrLaundryRecordNotFound is returned when a laundry record is not found in the system.
	ErrLaundryRecordNotFound = errors.New("laundry record not found")

	// ErrInvalidLaundryStatus is returned when the status is not a known laundry stage.
	ErrInvalidLaundryStatus = errors.New("invalid laundry status")

	// ErrEmptyLaundry is returned when a laundry record is created without items.
	ErrEmptyLaundry = errors.New("laundry record must reference at least one item")

	// ErrLaundryItemNotFound is returned when a laundry record references an unknown clothing item.
	ErrLaundryItemNotFound = errors.New("laundry record references an unknown clothing item")
)

// LaundryErrorCode defines error codes for laundry errors.
// Format: LDR-XXYYYY where XX is category and YYYY is specific error.
type LaundryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLaundryStatus LaundryErrorCode = "LDR-010001"
	ErrCodeEmptyLaundry         LaundryErrorCode = "LDR-010002"
	ErrCodeLaundryItemNotFound  LaundryErrorCode = "LDR-010003"
	ErrCodeMissingLaundryFields LaundryErrorCode = "LDR-010004"

	// Lookup errors (02XXXX)
	ErrCodeLaundryRecordNotFound LaundryErrorCode = "LDR-020001"
)

// LaundryError represents a laundry error with code and message.
type LaundryError struct {
	Code    LaundryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LaundryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LaundryError) Unwrap() error {
	return e.Err
}

// NewLaundryError creates a new LaundryError with the given code and message.
func NewLaundryError(code LaundryErrorCode, message string, err error) *LaundryError {
	return &LaundryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
