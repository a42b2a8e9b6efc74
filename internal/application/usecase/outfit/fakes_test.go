package outfit

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

var errStoreDown = errors.New("store down")

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

type fakeWeatherRepo struct {
	samples []*entity.WeatherSample
}

func (r *fakeWeatherRepo) Create(_ context.Context, s *entity.WeatherSample) error {
	r.samples = append(r.samples, s)
	return nil
}

func (r *fakeWeatherRepo) FindLatestByLocation(_ context.Context, location string) (*entity.WeatherSample, error) {
	var latest *entity.WeatherSample
	for _, s := range r.samples {
		if s.Location == location && (latest == nil || s.Date.After(latest.Date)) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domainerror.ErrWeatherNotFound
	}
	return latest, nil
}

type fakeClothingRepo struct {
	mu           sync.Mutex
	items        []*entity.ClothingItem
	incrementErr error
	increments   int
}

func (r *fakeClothingRepo) Create(_ context.Context, item *entity.ClothingItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeClothingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ClothingItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domainerror.ErrClothingItemNotFound
}

func (r *fakeClothingRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.ClothingItem, error) {
	var result []*entity.ClothingItem
	for _, item := range r.items {
		for _, id := range ids {
			if item.ID == id {
				result = append(result, item)
			}
		}
	}
	return result, nil
}

func (r *fakeClothingRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.ClothingItem, error) {
	var result []*entity.ClothingItem
	for _, item := range r.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeClothingRepo) FindActiveByUser(_ context.Context, userID uuid.UUID, season string) ([]*entity.ClothingItem, error) {
	var result []*entity.ClothingItem
	for _, item := range r.items {
		if item.UserID == userID && item.IsActive() && (season == "" || item.Season == season) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeClothingRepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	items, _ := r.FindActiveByUser(ctx, userID, "")
	return len(items), nil
}

func (r *fakeClothingRepo) Update(_ context.Context, _ *entity.ClothingItem) error { return nil }

func (r *fakeClothingRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeClothingRepo) IncrementWear(_ context.Context, ids []uuid.UUID, at time.Time) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.increments++
	for _, item := range r.items {
		for _, id := range ids {
			if item.ID == id {
				item.WearCount++
				worn := at
				item.LastWorn = &worn
			}
		}
	}
	return nil
}

type fakeAccessoryRepo struct {
	accessories  []*entity.Accessory
	incrementErr error
	increments   int
}

func (r *fakeAccessoryRepo) Create(_ context.Context, a *entity.Accessory) error {
	r.accessories = append(r.accessories, a)
	return nil
}

func (r *fakeAccessoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Accessory, error) {
	for _, a := range r.accessories {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrAccessoryNotFound
}

func (r *fakeAccessoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Accessory, error) {
	var result []*entity.Accessory
	for _, a := range r.accessories {
		for _, id := range ids {
			if a.ID == id {
				result = append(result, a)
			}
		}
	}
	return result, nil
}

func (r *fakeAccessoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Accessory, error) {
	var result []*entity.Accessory
	for _, a := range r.accessories {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAccessoryRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.Accessory, error) {
	var result []*entity.Accessory
	for _, a := range r.accessories {
		if a.UserID == userID && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAccessoryRepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	a, _ := r.FindActiveByUser(ctx, userID)
	return len(a), nil
}

func (r *fakeAccessoryRepo) Update(_ context.Context, _ *entity.Accessory) error { return nil }

func (r *fakeAccessoryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeAccessoryRepo) IncrementWear(_ context.Context, ids []uuid.UUID, at time.Time) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments++
	for _, a := range r.accessories {
		for _, id := range ids {
			if a.ID == id {
				a.WearCount++
				worn := at
				a.LastWorn = &worn
			}
		}
	}
	return nil
}

type fakeLaundryRepo struct {
	records []*entity.LaundryRecord
}

func (r *fakeLaundryRepo) Create(_ context.Context, rec *entity.LaundryRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeLaundryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LaundryRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, domainerror.ErrLaundryRecordNotFound
}

func (r *fakeLaundryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	var result []*entity.LaundryRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakeLaundryRepo) FindOpenByUser(_ context.Context, userID uuid.UUID) ([]*entity.LaundryRecord, error) {
	var result []*entity.LaundryRecord
	for _, rec := range r.records {
		if rec.UserID == userID && rec.IsOpen() {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakeLaundryRepo) Update(_ context.Context, _ *entity.LaundryRecord) error { return nil }

func (r *fakeLaundryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeOutfitRepo struct {
	outfits   []*entity.Outfit
	createErr error
	updated   int
}

func (r *fakeOutfitRepo) Create(_ context.Context, o *entity.Outfit) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.outfits = append(r.outfits, o)
	return nil
}

func (r *fakeOutfitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Outfit, error) {
	for _, o := range r.outfits {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domainerror.ErrOutfitNotFound
}

func (r *fakeOutfitRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Outfit, error) {
	var result []*entity.Outfit
	for _, o := range r.outfits {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeOutfitRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	o, _ := r.FindByUser(ctx, userID)
	return len(o), nil
}

func (r *fakeOutfitRepo) Update(_ context.Context, _ *entity.Outfit) error {
	r.updated++
	return nil
}

type wearState struct {
	count    int
	lastWorn *time.Time
}

// fakeTransactor restores stored outfits and wear counters when the unit of work fails.
type fakeTransactor struct {
	outfits   *fakeOutfitRepo
	clothes   *fakeClothingRepo
	acc       *fakeAccessoryRepo
	rollbacks int
}

func (tx *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	outfits := append([]*entity.Outfit(nil), tx.outfits.outfits...)
	clothes := make(map[*entity.ClothingItem]wearState, len(tx.clothes.items))
	for _, item := range tx.clothes.items {
		clothes[item] = wearState{count: item.WearCount, lastWorn: item.LastWorn}
	}
	accessories := make(map[*entity.Accessory]wearState, len(tx.acc.accessories))
	for _, a := range tx.acc.accessories {
		accessories[a] = wearState{count: a.WearCount, lastWorn: a.LastWorn}
	}

	if err := fn(ctx); err != nil {
		tx.outfits.outfits = outfits
		for item, state := range clothes {
			item.WearCount, item.LastWorn = state.count, state.lastWorn
		}
		for a, state := range accessories {
			a.WearCount, a.LastWorn = state.count, state.lastWorn
		}
		tx.rollbacks++
		return err
	}
	return nil
}

// sequenceRandom returns the queued indexes in order, clamped to n.
type sequenceRandom struct {
	picks []int
	calls int
}

func (r *sequenceRandom) Intn(n int) int {
	pick := 0
	if r.calls < len(r.picks) {
		pick = r.picks[r.calls]
	}
	r.calls++
	if pick >= n {
		return n - 1
	}
	return pick
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeCache struct {
	reports     map[uuid.UUID][]byte
	invalidated []uuid.UUID
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID) ([]byte, bool, error) {
	report, ok := c.reports[userID]
	return report, ok, nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, report []byte) error {
	if c.reports == nil {
		c.reports = map[uuid.UUID][]byte{}
	}
	c.reports[userID] = report
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(c.reports, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type fakeMetrics struct {
	mu          sync.Mutex
	wearEvents  map[entity.ItemKind]int
	generations map[string]int
	failures    map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		wearEvents:  map[entity.ItemKind]int{},
		generations: map[string]int{},
		failures:    map[string]int{},
	}
}

func (m *fakeMetrics) ObserveWearEvents(kind entity.ItemKind, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wearEvents[kind] += count
}

func (m *fakeMetrics) ObserveOutfitGenerated(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations[result]++
}

func (m *fakeMetrics) ObserveAggregationFailure(metric string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[metric]++
}

func clothing(userID uuid.UUID, name string, category entity.ClothingCategory, season string) *entity.ClothingItem {
	return entity.NewClothingItem(userID, name, category, "black", season, "casual")
}
