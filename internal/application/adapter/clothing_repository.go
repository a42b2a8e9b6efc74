// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ClothingRepository defines the interface for clothing item persistence operations.
type ClothingRepository interface {
	// Create creates a new clothing item in the database.
	Create(ctx context.Context, item *entity.ClothingItem) error

	// FindByID retrieves a clothing item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClothingItem, error)

	// FindByIDs retrieves the clothing items with the given IDs, skipping unknown IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ClothingItem, error)

	// FindByUser retrieves all clothing items of a user, donated ones included.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClothingItem, error)

	// FindActiveByUser retrieves the non-donated clothing items of a user in insertion order.
	// A non-empty season restricts the result to items tagged with that season.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, season string) ([]*entity.ClothingItem, error)

	// CountActiveByUser counts the non-donated clothing items of a user.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing clothing item in the database.
	Update(ctx context.Context, item *entity.ClothingItem) error

	// Delete removes a clothing item from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementWear atomically adds one wear to every listed item and sets its last worn time.
	IncrementWear(ctx context.Context, ids []uuid.UUID, at time.Time) error
}
