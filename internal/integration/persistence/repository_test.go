package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newItem(userID uuid.UUID, name string, category entity.ClothingCategory, season string, created time.Time) *entity.ClothingItem {
	item := entity.NewClothingItem(userID, name, category, "black", season, "")
	item.CreatedAt = created
	item.UpdatedAt = created
	return item
}

func TestClothingRepository_IncrementWear(t *testing.T) {
	ctx := context.Background()
	repo := NewClothingRepository(newTestDB(t))
	userID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	top := newItem(userID, "Sweater", entity.ClothingCategoryTop, "winter", base)
	bottom := newItem(userID, "Jeans", entity.ClothingCategoryBottom, "winter", base.Add(time.Minute))
	other := newItem(userID, "Shorts", entity.ClothingCategoryBottom, "summer", base.Add(2*time.Minute))
	for _, item := range []*entity.ClothingItem{top, bottom, other} {
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	worn := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if err := repo.IncrementWear(ctx, []uuid.UUID{top.ID, bottom.ID}, worn); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	items, err := repo.FindByIDs(ctx, []uuid.UUID{top.ID, bottom.ID, other.ID})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := map[uuid.UUID]int{top.ID: 2, bottom.ID: 2, other.ID: 0}
	for _, item := range items {
		if item.WearCount != want[item.ID] {
			t.Errorf("%s wear count = %d, want %d", item.Name, item.WearCount, want[item.ID])
		}
		if want[item.ID] > 0 && (item.LastWorn == nil || !item.LastWorn.Equal(worn)) {
			t.Errorf("%s last worn = %v, want %v", item.Name, item.LastWorn, worn)
		}
		if want[item.ID] == 0 && item.LastWorn != nil {
			t.Errorf("%s last worn should stay unset", item.Name)
		}
	}
}

func TestClothingRepository_IncrementWearConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewClothingRepository(newTestDB(t))
	item := newItem(uuid.New(), "Denim jacket", entity.ClothingCategoryOuterwear, "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	const wearers = 50
	worn := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	errs := make(chan error, wearers)
	var wg sync.WaitGroup
	for i := 0; i < wearers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementWear(ctx, []uuid.UUID{item.ID}, worn)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	got, err := repo.FindByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.WearCount != wearers {
		t.Errorf("wear count = %d, want %d", got.WearCount, wearers)
	}
}

func TestTransactor_WithinTransaction(t *testing.T) {
	errAbort := errors.New("abort")

	tests := []struct {
		name      string
		fnErr     error
		wantWorn  int
		wantSaved bool
	}{
		{name: "commit", fnErr: nil, wantWorn: 1, wantSaved: true},
		{name: "rollback", fnErr: errAbort, wantWorn: 0, wantSaved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := newTestDB(t)
			clothes := NewClothingRepository(db)
			outfits := NewOutfitRepository(db)
			userID := uuid.New()
			item := newItem(userID, "Sweater", entity.ClothingCategoryTop, "winter", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
			if err := clothes.Create(ctx, item); err != nil {
				t.Fatalf("create: %v", err)
			}
			outfit := entity.NewOutfit(userID, "Generated Outfit - 2026-01-15", []uuid.UUID{item.ID}, nil, "cold", 1)

			err := NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
				if err := outfits.Create(ctx, outfit); err != nil {
					return err
				}
				if err := clothes.IncrementWear(ctx, []uuid.UUID{item.ID}, time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)); err != nil {
					return err
				}
				return tt.fnErr
			})
			if !errors.Is(err, tt.fnErr) {
				t.Fatalf("err = %v, want %v", err, tt.fnErr)
			}

			_, err = outfits.FindByID(ctx, outfit.ID)
			if saved := err == nil; saved != tt.wantSaved {
				t.Errorf("outfit saved = %v, want %v (err %v)", saved, tt.wantSaved, err)
			}
			if !tt.wantSaved && !errors.Is(err, domainerror.ErrOutfitNotFound) {
				t.Errorf("err = %v, want ErrOutfitNotFound", err)
			}

			got, err := clothes.FindByID(ctx, item.ID)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if got.WearCount != tt.wantWorn {
				t.Errorf("wear count = %d, want %d", got.WearCount, tt.wantWorn)
			}
		})
	}
}

func TestClothingRepository_FindActiveByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewClothingRepository(newTestDB(t))
	userID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	winterTop := newItem(userID, "Sweater", entity.ClothingCategoryTop, "winter", base)
	summerTop := newItem(userID, "Tank", entity.ClothingCategoryTop, "summer", base.Add(time.Minute))
	donated := newItem(userID, "Old coat", entity.ClothingCategoryOuterwear, "winter", base.Add(2*time.Minute))
	donated.Status = entity.ItemStatusDonated
	foreign := newItem(uuid.New(), "Scarf", entity.ClothingCategoryTop, "winter", base)
	for _, item := range []*entity.ClothingItem{winterTop, summerTop, donated, foreign} {
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tests := []struct {
		name   string
		season string
		want   []string
	}{
		{name: "no season filter", season: "", want: []string{"Sweater", "Tank"}},
		{name: "winter only", season: "winter", want: []string{"Sweater"}},
		{name: "no match", season: "rainy", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.FindActiveByUser(ctx, userID, tt.season)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if len(items) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.want))
			}
			for i, item := range items {
				if item.Name != tt.want[i] {
					t.Errorf("item %d = %s, want %s", i, item.Name, tt.want[i])
				}
			}
		})
	}

	count, err := repo.CountActiveByUser(ctx, userID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("active count = %d, want 2", count)
	}
}

func TestClothingRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewClothingRepository(newTestDB(t))

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrClothingItemNotFound) {
		t.Errorf("FindByID error = %v, want ErrClothingItemNotFound", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrClothingItemNotFound) {
		t.Errorf("Delete error = %v, want ErrClothingItemNotFound", err)
	}
}

func TestClothingRepository_ImagesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewClothingRepository(newTestDB(t))
	item := newItem(uuid.New(), "Shirt", entity.ClothingCategoryTop, "", time.Now().UTC())
	item.Images = []entity.Image{{URL: "/uploads/clothes/a.jpg", PublicID: "clothes/a.jpg"}}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found.Images) != 1 || found.Images[0].PublicID != "clothes/a.jpg" {
		t.Errorf("images = %+v", found.Images)
	}
}

func TestAccessoryRepository_IncrementWearAndActive(t *testing.T) {
	ctx := context.Background()
	repo := NewAccessoryRepository(newTestDB(t))
	userID := uuid.New()

	belt := entity.NewAccessory(userID, "Belt", "brown", "belt", []string{"bottom"})
	watch := entity.NewAccessory(userID, "Watch", "silver", "", nil)
	watch.CreatedAt = belt.CreatedAt.Add(time.Second)
	watch.Status = entity.ItemStatusDonated
	for _, a := range []*entity.Accessory{belt, watch} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	worn := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	if err := repo.IncrementWear(ctx, []uuid.UUID{belt.ID}, worn); err != nil {
		t.Fatalf("increment: %v", err)
	}

	active, err := repo.FindActiveByUser(ctx, userID)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if len(active) != 1 || active[0].ID != belt.ID {
		t.Fatalf("active = %+v, want only the belt", active)
	}
	if active[0].WearCount != 1 {
		t.Errorf("wear count = %d, want 1", active[0].WearCount)
	}
	if len(active[0].CompatibleWith) != 1 || active[0].CompatibleWith[0] != "bottom" {
		t.Errorf("compatibleWith = %v", active[0].CompatibleWith)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrAccessoryNotFound) {
		t.Errorf("FindByID error = %v, want ErrAccessoryNotFound", err)
	}
}

func TestLaundryRepository_FindOpenByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewLaundryRepository(newTestDB(t))
	userID := uuid.New()
	itemID := uuid.New()

	statuses := []entity.LaundryStatus{
		entity.LaundryStatusPending,
		entity.LaundryStatusWashing,
		entity.LaundryStatusDrying,
		entity.LaundryStatusDone,
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, status := range statuses {
		record := entity.NewLaundryRecord(userID, []uuid.UUID{itemID}, nil, status)
		record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	open, err := repo.FindOpenByUser(ctx, userID)
	if err != nil {
		t.Fatalf("find open: %v", err)
	}
	if len(open) != 3 {
		t.Fatalf("open records = %d, want 3", len(open))
	}
	for i, record := range open {
		if record.Status != statuses[i] {
			t.Errorf("record %d status = %s, want %s", i, record.Status, statuses[i])
		}
		if len(record.Items) != 1 || record.Items[0] != itemID {
			t.Errorf("record %d items = %v", i, record.Items)
		}
	}

	all, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("all records = %d, want 4", len(all))
	}
}

func TestOutfitRepository_CreateAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewOutfitRepository(newTestDB(t))
	userID := uuid.New()
	top, bottom := uuid.New(), uuid.New()

	outfit := entity.NewOutfit(userID, "Office", []uuid.UUID{top, bottom}, nil, "cold", 1)
	if err := repo.Create(ctx, outfit); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByID(ctx, outfit.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found.ClothingItems) != 2 || found.ClothingItems[0] != top || found.ClothingItems[1] != bottom {
		t.Errorf("clothing items = %v, want [%s %s]", found.ClothingItems, top, bottom)
	}
	if found.Accessories == nil || len(found.Accessories) != 0 {
		t.Errorf("accessories = %v, want empty list", found.Accessories)
	}
	if found.WearCount != 1 {
		t.Errorf("wear count = %d, want 1", found.WearCount)
	}

	count, err := repo.CountByUser(ctx, userID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrOutfitNotFound) {
		t.Errorf("FindByID error = %v, want ErrOutfitNotFound", err)
	}
}

func TestWeatherRepository_FindLatestByLocation(t *testing.T) {
	ctx := context.Background()
	repo := NewWeatherRepository(newTestDB(t))

	older := entity.NewWeatherSample("Lisbon", "sunny", nil, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	newer := entity.NewWeatherSample("Lisbon", "cold", nil, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC))
	elsewhere := entity.NewWeatherSample("Porto", "rainy", nil, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	for _, s := range []*entity.WeatherSample{newer, older, elsewhere} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	latest, err := repo.FindLatestByLocation(ctx, "Lisbon")
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if latest.Conditions != "cold" {
		t.Errorf("conditions = %s, want cold", latest.Conditions)
	}

	if _, err := repo.FindLatestByLocation(ctx, "Madrid"); !errors.Is(err, domainerror.ErrWeatherNotFound) {
		t.Errorf("error = %v, want ErrWeatherNotFound", err)
	}
}

func TestUserRepository_StylePreferences(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("ana@example.com", "Ana", "hash", "Lisbon", []string{"casual", "minimal"})
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Location != "Lisbon" || len(found.StylePreferences) != 2 {
		t.Errorf("user = %+v", found)
	}

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	if err != nil || !exists {
		t.Errorf("ExistsByEmail = %v, %v", exists, err)
	}
	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("FindByID error = %v, want ErrUserNotFound", err)
	}
}

func TestTokenRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	userID := uuid.New()

	if err := repo.SaveRefreshToken(ctx, "live", userID, time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveRefreshToken(ctx, "expired", userID, time.Now().UTC().Add(-time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}

	tests := []struct {
		token string
		want  bool
	}{
		{token: "live", want: true},
		{token: "expired", want: false},
		{token: "unknown", want: false},
	}
	for _, tt := range tests {
		valid, err := repo.IsRefreshTokenValid(ctx, tt.token)
		if err != nil {
			t.Fatalf("validate %s: %v", tt.token, err)
		}
		if valid != tt.want {
			t.Errorf("%s valid = %v, want %v", tt.token, valid, tt.want)
		}
	}

	if err := repo.InvalidateRefreshToken(ctx, "live"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "live"); valid {
		t.Error("invalidated token should not be valid")
	}
}
