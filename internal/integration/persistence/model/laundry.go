package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// LaundryRecordModel represents the laundry_records table in the database.
type LaundryRecordModel struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	Items         []uuid.UUID `gorm:"type:text;serializer:json"`
	ScheduledDate *time.Time
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the LaundryRecordModel.
func (LaundryRecordModel) TableName() string {
	return "laundry_records"
}

// ToEntity converts a LaundryRecordModel to a domain LaundryRecord entity.
func (m *LaundryRecordModel) ToEntity() *entity.LaundryRecord {
	items := m.Items
	if items == nil {
		items = []uuid.UUID{}
	}
	return &entity.LaundryRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		Items:         items,
		ScheduledDate: m.ScheduledDate,
		Status:        entity.LaundryStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// LaundryRecordFromEntity creates a LaundryRecordModel from a domain LaundryRecord entity.
func LaundryRecordFromEntity(record *entity.LaundryRecord) *LaundryRecordModel {
	return &LaundryRecordModel{
		ID:            record.ID,
		UserID:        record.UserID,
		Items:         record.Items,
		ScheduledDate: record.ScheduledDate,
		Status:        string(record.Status),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
