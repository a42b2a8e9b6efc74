package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// CreateLaundryRequest represents the request body for laundry record creation.
type CreateLaundryRequest struct {
	Items         []string   `json:"items" binding:"required,min=1,dive,uuid"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Status        string     `json:"status" binding:"omitempty,oneof=pending washing drying done"`
}

// UpdateLaundryRequest represents the request body for laundry record update.
type UpdateLaundryRequest struct {
	Items         []string   `json:"items,omitempty" binding:"omitempty,dive,uuid"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Status        *string    `json:"status,omitempty" binding:"omitempty,oneof=pending washing drying done"`
}

// LaundryResponse represents a laundry record in API responses.
type LaundryResponse struct {
	ID            string             `json:"id"`
	ItemIDs       []string           `json:"item_ids"`
	Items         []ClothingResponse `json:"items,omitempty"`
	ScheduledDate *time.Time         `json:"scheduled_date"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// LaundryListResponse represents the response for listing laundry records.
type LaundryListResponse struct {
	Laundry []LaundryResponse `json:"laundry"`
}

// ToLaundryResponse converts a domain LaundryRecord to a LaundryResponse DTO.
func ToLaundryResponse(record *entity.LaundryRecord) LaundryResponse {
	return LaundryResponse{
		ID:            record.ID.String(),
		ItemIDs:       uuidStrings(record.Items),
		ScheduledDate: record.ScheduledDate,
		Status:        string(record.Status),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// ToLaundryListResponse converts records with their resolved clothing items.
func ToLaundryListResponse(records []*entity.LaundryRecordWithItems) LaundryListResponse {
	result := make([]LaundryResponse, len(records))
	for i, r := range records {
		result[i] = ToLaundryResponse(r.Record)
		result[i].Items = ToClothingResponses(r.Items)
	}
	return LaundryListResponse{Laundry: result}
}
