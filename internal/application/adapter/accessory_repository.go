// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// AccessoryRepository defines the interface for accessory persistence operations.
type AccessoryRepository interface {
	// Create creates a new accessory in the database.
	Create(ctx context.Context, accessory *entity.Accessory) error

	// FindByID retrieves an accessory by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error)

	// FindByIDs retrieves the accessories with the given IDs, skipping unknown IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Accessory, error)

	// FindByUser retrieves all accessories of a user, donated ones included.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Accessory, error)

	// FindActiveByUser retrieves the non-donated accessories of a user in insertion order.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Accessory, error)

	// CountActiveByUser counts the non-donated accessories of a user.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing accessory in the database.
	Update(ctx context.Context, accessory *entity.Accessory) error

	// Delete removes an accessory from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementWear atomically adds one wear to every listed accessory and sets its last worn time.
	IncrementWear(ctx context.Context, ids []uuid.UUID, at time.Time) error
}
