package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/persistence/model"
)

// laundryRepository implements the adapter.LaundryRepository interface.
type laundryRepository struct {
	db *gorm.DB
}

// NewLaundryRepository creates a new laundry repository instance.
func NewLaundryRepository(db *gorm.DB) adapter.LaundryRepository {
	return &laundryRepository{db: db}
}

// Create inserts a new laundry record.
func (r *laundryRepository) Create(ctx context.Context, record *entity.LaundryRecord) error {
	return conn(ctx, r.db).Create(model.LaundryRecordFromEntity(record)).Error
}

// FindByID retrieves a laundry record by its ID.
func (r *laundryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LaundryRecord, error) {
	var recordModel model.LaundryRecordModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLaundryRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUser retrieves every laundry record of a user.
func (r *laundryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	return r.find(conn(ctx, r.db).Where("user_id = ?", userID))
}

// FindOpenByUser retrieves the records of a user whose cycle is not done yet.
func (r *laundryRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	return r.find(conn(ctx, r.db).
		Where("user_id = ? AND status <> ?", userID, string(entity.LaundryStatusDone)))
}

func (r *laundryRepository) find(query *gorm.DB) ([]*entity.LaundryRecord, error) {
	var models []model.LaundryRecordModel
	if err := query.Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.LaundryRecord, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// Update saves all fields of an existing laundry record.
func (r *laundryRepository) Update(ctx context.Context, record *entity.LaundryRecord) error {
	return conn(ctx, r.db).Save(model.LaundryRecordFromEntity(record)).Error
}

// Delete removes a laundry record.
func (r *laundryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.LaundryRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLaundryRecordNotFound
	}
	return nil
}
