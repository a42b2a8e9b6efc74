// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// LaundryRepository defines the interface for laundry record persistence operations.
type LaundryRepository interface {
	// Create creates a new laundry record in the database.
	Create(ctx context.Context, record *entity.LaundryRecord) error

	// FindByID retrieves a laundry record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LaundryRecord, error)

	// FindByUser retrieves all laundry records of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error)

	// FindOpenByUser retrieves the laundry records of a user whose status is not done.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error)

	// Update updates an existing laundry record in the database.
	Update(ctx context.Context, record *entity.LaundryRecord) error

	// Delete removes a laundry record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
