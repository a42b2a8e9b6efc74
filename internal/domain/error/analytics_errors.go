// Package error defines domain-specific errors for the Wardrobe Manager application.
package error

import "errors"

// ErrPartialAggregation marks a failed analytics sub-metric. It is recorded, never returned to callers.
var ErrPartialAggregation = errors.New("analytics sub-metric failed")
