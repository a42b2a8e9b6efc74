// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LaundryStatus represents the stage of a laundry cycle.
type LaundryStatus string

const (
	LaundryStatusPending LaundryStatus = "pending"
	LaundryStatusWashing LaundryStatus = "washing"
	LaundryStatusDrying  LaundryStatus = "drying"
	LaundryStatusDone    LaundryStatus = "done"
)

// IsValid reports whether the status is a known laundry stage.
func (s LaundryStatus) IsValid() bool {
	switch s {
	case LaundryStatusPending, LaundryStatusWashing, LaundryStatusDrying, LaundryStatusDone:
		return true
	}
	return false
}

// LaundryRecord groups clothing items that go through one laundry cycle.
type LaundryRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Items         []uuid.UUID
	ScheduledDate *time.Time
	Status        LaundryStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLaundryRecord creates a new LaundryRecord.
func NewLaundryRecord(userID uuid.UUID, items []uuid.UUID, scheduledDate *time.Time, status LaundryStatus) *LaundryRecord {
	now := time.Now().UTC()

	return &LaundryRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Items:         items,
		ScheduledDate: scheduledDate,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsOpen reports whether the record still holds its items out of the wardrobe.
func (l *LaundryRecord) IsOpen() bool {
	return l.Status != LaundryStatusDone
}

// LaundryRecordWithItems represents a laundry record with its clothing items resolved.
type LaundryRecordWithItems struct {
	Record *LaundryRecord
	Items  []*ClothingItem
}
