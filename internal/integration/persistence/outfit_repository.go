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

// outfitRepository implements the adapter.OutfitRepository interface.
type outfitRepository struct {
	db *gorm.DB
}

// NewOutfitRepository creates a new outfit repository instance.
func NewOutfitRepository(db *gorm.DB) adapter.OutfitRepository {
	return &outfitRepository{db: db}
}

// Create inserts a new outfit.
func (r *outfitRepository) Create(ctx context.Context, outfit *entity.Outfit) error {
	return conn(ctx, r.db).Create(model.OutfitFromEntity(outfit)).Error
}

// FindByID retrieves an outfit by its ID.
func (r *outfitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Outfit, error) {
	var outfitModel model.OutfitModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&outfitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOutfitNotFound
		}
		return nil, result.Error
	}
	return outfitModel.ToEntity(), nil
}

// FindByUser retrieves every outfit of a user.
func (r *outfitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Outfit, error) {
	var models []model.OutfitModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order(insertionOrder).Find(&models).Error; err != nil {
		return nil, err
	}
	outfits := make([]*entity.Outfit, len(models))
	for i := range models {
		outfits[i] = models[i].ToEntity()
	}
	return outfits, nil
}

// CountByUser counts the outfits of a user.
func (r *outfitRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.OutfitModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// Update saves all fields of an existing outfit.
func (r *outfitRepository) Update(ctx context.Context, outfit *entity.Outfit) error {
	return conn(ctx, r.db).Save(model.OutfitFromEntity(outfit)).Error
}
