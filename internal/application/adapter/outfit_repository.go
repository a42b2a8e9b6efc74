// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// OutfitRepository defines the interface for outfit persistence operations.
type OutfitRepository interface {
	// Create creates a new outfit in the database.
	Create(ctx context.Context, outfit *entity.Outfit) error

	// FindByID retrieves an outfit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Outfit, error)

	// FindByUser retrieves all outfits of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Outfit, error)

	// CountByUser counts the outfits of a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update updates an existing outfit in the database.
	Update(ctx context.Context, outfit *entity.Outfit) error
}
