package accessory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

type memoryAccessoryRepo struct {
	adapter.AccessoryRepository
	accessories map[uuid.UUID]*entity.Accessory
}

func newMemoryAccessoryRepo() *memoryAccessoryRepo {
	return &memoryAccessoryRepo{accessories: map[uuid.UUID]*entity.Accessory{}}
}

func (r *memoryAccessoryRepo) Create(_ context.Context, a *entity.Accessory) error {
	r.accessories[a.ID] = a
	return nil
}

func (r *memoryAccessoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Accessory, error) {
	a, ok := r.accessories[id]
	if !ok {
		return nil, domainerror.ErrAccessoryNotFound
	}
	return a, nil
}

func (r *memoryAccessoryRepo) Update(_ context.Context, a *entity.Accessory) error {
	r.accessories[a.ID] = a
	return nil
}

func (r *memoryAccessoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.accessories, id)
	return nil
}

type memoryImageStore struct {
	stored  map[string]bool
	deleted []string
}

func (s *memoryImageStore) Put(_ context.Context, key string, r io.Reader, _ string) (*adapter.StoredImage, error) {
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	s.stored[key] = true
	return &adapter.StoredImage{URL: "/images/" + key, PublicID: key}, nil
}

func (s *memoryImageStore) Delete(_ context.Context, publicID string) error {
	delete(s.stored, publicID)
	s.deleted = append(s.deleted, publicID)
	return nil
}

type countingCache struct {
	adapter.AnalyticsCache
	invalidations int
}

func (c *countingCache) Invalidate(_ context.Context, _ uuid.UUID) error {
	c.invalidations++
	return nil
}

func TestCreateAccessoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		input      CreateAccessoryInput
		expected   error
		compatible []string
	}{
		{
			name:       "valid accessory",
			input:      CreateAccessoryInput{UserID: userID, Name: "Belt", Color: "brown", Type: "belt", CompatibleWith: []string{"Bottom", "bottom", " dress "}},
			compatible: []string{"bottom", "dress"},
		},
		{
			name:     "missing color",
			input:    CreateAccessoryInput{UserID: userID, Name: "Belt"},
			expected: domainerror.ErrMissingItemFields,
		},
		{
			name:     "missing name",
			input:    CreateAccessoryInput{UserID: userID, Color: "brown"},
			expected: domainerror.ErrMissingItemFields,
		},
		{
			name:     "unknown compatible category",
			input:    CreateAccessoryInput{UserID: userID, Name: "Belt", Color: "brown", CompatibleWith: []string{"cape"}},
			expected: domainerror.ErrInvalidClothingCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryAccessoryRepo()
			output, err := NewCreateAccessoryUseCase(repo, nil).Execute(context.Background(), tt.input)
			if tt.expected != nil {
				if !errors.Is(err, tt.expected) {
					t.Fatalf("expected %v, got %v", tt.expected, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := output.Accessory.CompatibleWith
			if strings.Join(got, ",") != strings.Join(tt.compatible, ",") {
				t.Errorf("expected compatibleWith %v, got %v", tt.compatible, got)
			}
			if !output.Accessory.PairsWith(entity.ClothingCategoryBottom) {
				t.Error("expected the belt to pair with bottoms")
			}
		})
	}
}

func TestUpdateAccessoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newMemoryAccessoryRepo()
	scarf := entity.NewAccessory(userID, "Scarf", "red", "scarf", []string{"top"})
	repo.accessories[scarf.ID] = scarf

	donated := entity.ItemStatusDonated
	output, err := NewUpdateAccessoryUseCase(repo, nil).Execute(ctx, UpdateAccessoryInput{
		AccessoryID:    scarf.ID,
		UserID:         userID,
		CompatibleWith: []string{"outerwear"},
		Status:         &donated,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Accessory.IsActive() {
		t.Error("expected accessory to be donated")
	}
	if output.Accessory.PairsWith(entity.ClothingCategoryTop) || !output.Accessory.PairsWith(entity.ClothingCategoryOuterwear) {
		t.Error("expected compatibility to be replaced")
	}

	empty := ""
	if _, err := NewUpdateAccessoryUseCase(repo, nil).Execute(ctx, UpdateAccessoryInput{AccessoryID: scarf.ID, UserID: userID, Color: &empty}); !errors.Is(err, domainerror.ErrMissingItemFields) {
		t.Errorf("expected ErrMissingItemFields, got %v", err)
	}

	if _, err := NewUpdateAccessoryUseCase(repo, nil).Execute(ctx, UpdateAccessoryInput{AccessoryID: scarf.ID, UserID: uuid.New()}); !errors.Is(err, domainerror.ErrNotAuthorizedToAccessItem) {
		t.Errorf("expected ErrNotAuthorizedToAccessItem, got %v", err)
	}
}

func TestUploadImageUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newMemoryAccessoryRepo()
	store := &memoryImageStore{stored: map[string]bool{}}
	watch := entity.NewAccessory(userID, "Watch", "silver", "watch", nil)
	repo.accessories[watch.ID] = watch

	cache := &countingCache{}
	uc := NewUploadImageUseCase(repo, store, cache)

	first, err := uc.Execute(ctx, UploadImageInput{AccessoryID: watch.ID, UserID: userID, ContentType: "image/png", Size: 3, Content: strings.NewReader("one")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstID := first.Accessory.Image.PublicID

	second, err := uc.Execute(ctx, UploadImageInput{AccessoryID: watch.ID, UserID: userID, ContentType: "image/jpeg", Size: 3, Content: strings.NewReader("two")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Accessory.Image.PublicID == firstID {
		t.Error("expected the image to be replaced")
	}
	if len(store.deleted) != 1 || store.deleted[0] != firstID {
		t.Error("expected the replaced image to be deleted")
	}
	if !strings.HasSuffix(second.Accessory.Image.PublicID, ".jpg") {
		t.Errorf("expected a .jpg key, got %s", second.Accessory.Image.PublicID)
	}

	_, err = uc.Execute(ctx, UploadImageInput{AccessoryID: watch.ID, UserID: userID, ContentType: "video/mp4", Size: 3, Content: strings.NewReader("x")})
	if !errors.Is(err, domainerror.ErrUnsupportedImageType) {
		t.Errorf("expected ErrUnsupportedImageType, got %v", err)
	}
	if cache.invalidations != 2 {
		t.Errorf("expected 2 analytics invalidations, got %d", cache.invalidations)
	}
}
