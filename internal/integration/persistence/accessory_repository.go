package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/persistence/model"
)

// accessoryRepository implements the adapter.AccessoryRepository interface.
type accessoryRepository struct {
	db *gorm.DB
}

// NewAccessoryRepository creates a new accessory repository instance.
func NewAccessoryRepository(db *gorm.DB) adapter.AccessoryRepository {
	return &accessoryRepository{db: db}
}

// Create inserts a new accessory.
func (r *accessoryRepository) Create(ctx context.Context, accessory *entity.Accessory) error {
	return conn(ctx, r.db).Create(model.AccessoryFromEntity(accessory)).Error
}

// FindByID retrieves an accessory by its ID.
func (r *accessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	var accessoryModel model.AccessoryModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&accessoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccessoryNotFound
		}
		return nil, result.Error
	}
	return accessoryModel.ToEntity(), nil
}

// FindByIDs retrieves the accessories matching the given IDs.
func (r *accessoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Accessory, error) {
	if len(ids) == 0 {
		return []*entity.Accessory{}, nil
	}
	var models []model.AccessoryModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return accessoriesToEntities(models), nil
}

// FindByUser retrieves every accessory owned by a user.
func (r *accessoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Accessory, error) {
	var models []model.AccessoryModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return accessoriesToEntities(models), nil
}

// FindActiveByUser retrieves the active accessories of a user.
func (r *accessoryRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Accessory, error) {
	var models []model.AccessoryModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, string(entity.ItemStatusActive)).
		Order(insertionOrder).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return accessoriesToEntities(models), nil
}

// CountActiveByUser counts the active accessories of a user.
func (r *accessoryRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.AccessoryModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.ItemStatusActive)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// Update saves all fields of an existing accessory.
func (r *accessoryRepository) Update(ctx context.Context, accessory *entity.Accessory) error {
	return conn(ctx, r.db).Save(model.AccessoryFromEntity(accessory)).Error
}

// Delete removes an accessory.
func (r *accessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.AccessoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccessoryNotFound
	}
	return nil
}

// IncrementWear bumps the wear count and last worn time of the listed accessories.
func (r *accessoryRepository) IncrementWear(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&model.AccessoryModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"wear_count": gorm.Expr("wear_count + ?", 1),
			"last_worn":  at.UTC(),
			"updated_at": at.UTC(),
		}).Error
}

func accessoriesToEntities(models []model.AccessoryModel) []*entity.Accessory {
	accessories := make([]*entity.Accessory, len(models))
	for i := range models {
		accessories[i] = models[i].ToEntity()
	}
	return accessories
}
