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

// insertionOrder keeps listings stable across drivers.
const insertionOrder = "created_at ASC, id ASC"

// clothingRepository implements the adapter.ClothingRepository interface.
type clothingRepository struct {
	db *gorm.DB
}

// NewClothingRepository creates a new clothing repository instance.
func NewClothingRepository(db *gorm.DB) adapter.ClothingRepository {
	return &clothingRepository{db: db}
}

// Create inserts a new clothing item.
func (r *clothingRepository) Create(ctx context.Context, item *entity.ClothingItem) error {
	return conn(ctx, r.db).Create(model.ClothingItemFromEntity(item)).Error
}

// FindByID retrieves a clothing item by its ID.
func (r *clothingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClothingItem, error) {
	var itemModel model.ClothingItemModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClothingItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByIDs retrieves the clothing items matching the given IDs. Unknown IDs are skipped.
func (r *clothingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ClothingItem, error) {
	if len(ids) == 0 {
		return []*entity.ClothingItem{}, nil
	}
	var models []model.ClothingItemModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return clothingToEntities(models), nil
}

// FindByUser retrieves every clothing item owned by a user.
func (r *clothingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClothingItem, error) {
	var models []model.ClothingItemModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return clothingToEntities(models), nil
}

// FindActiveByUser retrieves the active items of a user. A non-empty season
// restricts the result to items tagged with exactly that season.
func (r *clothingRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, season string) ([]*entity.ClothingItem, error) {
	query := conn(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, string(entity.ItemStatusActive))
	if season != "" {
		query = query.Where("season = ?", season)
	}

	var models []model.ClothingItemModel
	if err := query.Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	return clothingToEntities(models), nil
}

// CountActiveByUser counts the active items of a user.
func (r *clothingRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.ClothingItemModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.ItemStatusActive)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// Update saves all fields of an existing clothing item.
func (r *clothingRepository) Update(ctx context.Context, item *entity.ClothingItem) error {
	return conn(ctx, r.db).Save(model.ClothingItemFromEntity(item)).Error
}

// Delete removes a clothing item.
func (r *clothingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.ClothingItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClothingItemNotFound
	}
	return nil
}

// IncrementWear bumps the wear count and sets the last worn time of every
// listed item in a single statement.
func (r *clothingRepository) IncrementWear(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&model.ClothingItemModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"wear_count": gorm.Expr("wear_count + ?", 1),
			"last_worn":  at.UTC(),
			"updated_at": at.UTC(),
		}).Error
}

func clothingToEntities(models []model.ClothingItemModel) []*entity.ClothingItem {
	items := make([]*entity.ClothingItem, len(models))
	for i := range models {
		items[i] = models[i].ToEntity()
	}
	return items
}
