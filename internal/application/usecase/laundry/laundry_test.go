package laundry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

type stubClothingRepo struct {
	adapter.ClothingRepository
	items []*entity.ClothingItem
}

func (r *stubClothingRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.ClothingItem, error) {
	var result []*entity.ClothingItem
	for _, item := range r.items {
		for _, id := range ids {
			if item.ID == id {
				result = append(result, item)
				break
			}
		}
	}
	return result, nil
}

type memoryLaundryRepo struct {
	records map[uuid.UUID]*entity.LaundryRecord
	order   []uuid.UUID
}

func newMemoryLaundryRepo() *memoryLaundryRepo {
	return &memoryLaundryRepo{records: map[uuid.UUID]*entity.LaundryRecord{}}
}

func (r *memoryLaundryRepo) Create(_ context.Context, rec *entity.LaundryRecord) error {
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *memoryLaundryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LaundryRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, domainerror.ErrLaundryRecordNotFound
	}
	return rec, nil
}

func (r *memoryLaundryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	var result []*entity.LaundryRecord
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok && rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *memoryLaundryRepo) FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	all, _ := r.FindByUser(ctx, userID)
	var result []*entity.LaundryRecord
	for _, rec := range all {
		if rec.IsOpen() {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *memoryLaundryRepo) Update(_ context.Context, rec *entity.LaundryRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *memoryLaundryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

func TestLaundryLifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	shirt := entity.NewClothingItem(userID, "Shirt", entity.ClothingCategoryTop, "", "", "")
	jeans := entity.NewClothingItem(userID, "Jeans", entity.ClothingCategoryBottom, "", "", "")
	foreign := entity.NewClothingItem(uuid.New(), "Foreign", entity.ClothingCategoryTop, "", "", "")
	clothes := &stubClothingRepo{items: []*entity.ClothingItem{shirt, jeans, foreign}}
	laundry := newMemoryLaundryRepo()

	created, err := NewCreateLaundryUseCase(laundry, clothes).Execute(ctx, CreateLaundryInput{
		UserID: userID,
		Items:  []uuid.UUID{shirt.ID, jeans.ID, shirt.ID},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Record.Status != entity.LaundryStatusPending {
		t.Errorf("expected pending, got %s", created.Record.Status)
	}
	if len(created.Record.Items) != 2 {
		t.Errorf("expected duplicates to be dropped, got %d items", len(created.Record.Items))
	}

	listed, err := NewListLaundryUseCase(laundry, clothes).Execute(ctx, ListLaundryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Records) != 1 || len(listed.Records[0].Items) != 2 || listed.Records[0].Items[0].ID != shirt.ID {
		t.Fatal("expected one record with [shirt, jeans]")
	}

	open, _ := laundry.FindOpenByUser(ctx, userID)
	if len(open) != 1 {
		t.Fatal("expected the record to hold its items")
	}

	done := entity.LaundryStatusDone
	updated, err := NewUpdateLaundryUseCase(laundry, clothes).Execute(ctx, UpdateLaundryInput{
		RecordID: created.Record.ID,
		UserID:   userID,
		Status:   &done,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Record.IsOpen() {
		t.Error("expected the record to be closed")
	}
	open, _ = laundry.FindOpenByUser(ctx, userID)
	if len(open) != 0 {
		t.Error("done records must release their items")
	}

	if _, err := NewDeleteLaundryUseCase(laundry).Execute(ctx, DeleteLaundryInput{RecordID: created.Record.ID, UserID: uuid.New()}); !errors.Is(err, domainerror.ErrLaundryRecordNotFound) {
		t.Errorf("expected ErrLaundryRecordNotFound for another user, got %v", err)
	}
	if _, err := NewDeleteLaundryUseCase(laundry).Execute(ctx, DeleteLaundryInput{RecordID: created.Record.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(laundry.records) != 0 {
		t.Error("expected record to be deleted")
	}
}

func TestCreateLaundryUseCase_Validation(t *testing.T) {
	userID := uuid.New()
	shirt := entity.NewClothingItem(userID, "Shirt", entity.ClothingCategoryTop, "", "", "")
	foreign := entity.NewClothingItem(uuid.New(), "Foreign", entity.ClothingCategoryTop, "", "", "")
	clothes := &stubClothingRepo{items: []*entity.ClothingItem{shirt, foreign}}

	tests := []struct {
		name     string
		input    CreateLaundryInput
		expected error
	}{
		{"no items", CreateLaundryInput{UserID: userID}, domainerror.ErrEmptyLaundry},
		{"unknown item", CreateLaundryInput{UserID: userID, Items: []uuid.UUID{uuid.New()}}, domainerror.ErrLaundryItemNotFound},
		{"item of another user", CreateLaundryInput{UserID: userID, Items: []uuid.UUID{shirt.ID, foreign.ID}}, domainerror.ErrLaundryItemNotFound},
		{"invalid status", CreateLaundryInput{UserID: userID, Items: []uuid.UUID{shirt.ID}, Status: "soaking"}, domainerror.ErrInvalidLaundryStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			laundry := newMemoryLaundryRepo()
			_, err := NewCreateLaundryUseCase(laundry, clothes).Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if len(laundry.records) != 0 {
				t.Error("nothing must be stored")
			}
		})
	}
}
