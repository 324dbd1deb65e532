package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"marketplace/internal/marketerrors"
	model "marketplace/internal/models"
)

// memTable holds the rows of one entity keyed by id
type memTable[T any] struct {
	rows map[int64]T
	last int64 // highest id handed out or written
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: make(map[int64]T)}
}

// list returns the rows accepted by keep, ordered by id. It never returns nil.
func (t *memTable[T]) list(keep func(T) bool) []T {
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *memTable[T]) any(match func(T) bool) bool {
	for _, row := range t.rows {
		if match(row) {
			return true
		}
	}
	return false
}

// MemoryRepo is a concurrency-safe in-memory store for all four resources.
// It enforces the same reference rules as the relational schema.
type MemoryRepo struct {
	mu        sync.RWMutex
	users     *memTable[model.User]
	locations *memTable[model.Location]
	adverts   *memTable[model.Advert]
	bids      *memTable[model.Bid]
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:     newMemTable[model.User](),
		locations: newMemTable[model.Location](),
		adverts:   newMemTable[model.Advert](),
		bids:      newMemTable[model.Bid](),
	}
}

// NewMemoryRepositories wires a fresh MemoryRepo into a Repositories bundle
func NewMemoryRepositories() Repositories {
	r := NewMemoryRepo()
	return Repositories{
		Users:     r.Users(),
		Locations: r.Locations(),
		Adverts:   r.Adverts(),
		Bids:      r.Bids(),
		Ping:      func(context.Context) error { return nil },
		Close:     func() error { return nil },
	}
}

func (r *MemoryRepo) Users() UserRepository         { return memUsers{r} }
func (r *MemoryRepo) Locations() LocationRepository { return memLocations{r} }
func (r *MemoryRepo) Adverts() AdvertRepository     { return memAdverts{r} }
func (r *MemoryRepo) Bids() BidRepository           { return memBids{r} }

func findAll[T any](r *MemoryRepo, t *memTable[T], keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return t.list(keep)
}

func findByID[T any](r *MemoryRepo, t *memTable[T], entity string, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("find %s %d: %w", entity, id, marketerrors.ErrNotFound)
	}
	return row, nil
}

// save checks references under the write lock, assigns an id when rec has none and stores a copy
func save[T any, P interface {
	*T
	model.Entity
}](r *MemoryRepo, t *memTable[T], entity string, rec *T, references func(T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if references != nil {
		if err := references(*rec); err != nil {
			return fmt.Errorf("save %s: %w", entity, err)
		}
	}

	p := P(rec)
	id := p.Identity()
	if id == 0 {
		t.last++
		id = t.last
		p.SetIdentity(id)
	} else if id > t.last {
		t.last = id
	}
	t.rows[id] = *rec
	return nil
}

func deleteByID[T any](r *MemoryRepo, t *memTable[T], entity string, id int64, referenced func(int64) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("delete %s %d: %w", entity, id, marketerrors.ErrNotFound)
	}
	if referenced != nil && referenced(id) {
		return fmt.Errorf("delete %s %d: still referenced: %w", entity, id, marketerrors.ErrConflict)
	}
	delete(t.rows, id)
	return nil
}

// mustExist is called with the write lock held
func mustExist[T any](t *memTable[T], entity string, id int64) error {
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%s %d does not exist: %w", entity, id, marketerrors.ErrConflict)
	}
	return nil
}

type memUsers struct{ r *MemoryRepo }

func (m memUsers) FindAll(_ context.Context) ([]model.User, error) {
	return findAll(m.r, m.r.users, nil), nil
}

func (m memUsers) FindByID(_ context.Context, id int64) (model.User, error) {
	return findByID(m.r, m.r.users, "user", id)
}

func (m memUsers) Save(_ context.Context, rec *model.User) error {
	return save(m.r, m.r.users, "user", rec, func(u model.User) error {
		if u.LocationID == nil {
			return nil
		}
		return mustExist(m.r.locations, "location", *u.LocationID)
	})
}

func (m memUsers) DeleteByID(_ context.Context, id int64) error {
	return deleteByID(m.r, m.r.users, "user", id, func(id int64) bool {
		return m.r.adverts.any(func(a model.Advert) bool { return a.UserID != nil && *a.UserID == id }) ||
			m.r.bids.any(func(b model.Bid) bool { return b.UserID == id })
	})
}

func (m memUsers) FindByName(_ context.Context, name string) ([]model.User, error) {
	return findAll(m.r, m.r.users, func(u model.User) bool { return strings.Contains(u.Name, name) }), nil
}

func (m memUsers) FindByLocation(_ context.Context, locationID int64) ([]model.User, error) {
	return findAll(m.r, m.r.users, func(u model.User) bool {
		return u.LocationID != nil && *u.LocationID == locationID
	}), nil
}

type memLocations struct{ r *MemoryRepo }

func (m memLocations) FindAll(_ context.Context) ([]model.Location, error) {
	return findAll(m.r, m.r.locations, nil), nil
}

func (m memLocations) FindByID(_ context.Context, id int64) (model.Location, error) {
	return findByID(m.r, m.r.locations, "location", id)
}

func (m memLocations) Save(_ context.Context, rec *model.Location) error {
	return save(m.r, m.r.locations, "location", rec, nil)
}

func (m memLocations) DeleteByID(_ context.Context, id int64) error {
	return deleteByID(m.r, m.r.locations, "location", id, func(id int64) bool {
		return m.r.users.any(func(u model.User) bool { return u.LocationID != nil && *u.LocationID == id })
	})
}

func (m memLocations) FindByName(_ context.Context, name string) ([]model.Location, error) {
	return findAll(m.r, m.r.locations, func(l model.Location) bool { return strings.Contains(l.Name, name) }), nil
}

func (m memLocations) FindByPlz(_ context.Context, plz int32) ([]model.Location, error) {
	return findAll(m.r, m.r.locations, func(l model.Location) bool { return l.Plz != nil && *l.Plz == plz }), nil
}

func (m memLocations) FindByNameAndPlz(_ context.Context, name string, plz int32) ([]model.Location, error) {
	return findAll(m.r, m.r.locations, func(l model.Location) bool {
		return strings.Contains(l.Name, name) && l.Plz != nil && *l.Plz == plz
	}), nil
}

type memAdverts struct{ r *MemoryRepo }

func (m memAdverts) FindAll(_ context.Context) ([]model.Advert, error) {
	return findAll(m.r, m.r.adverts, nil), nil
}

func (m memAdverts) FindByID(_ context.Context, id int64) (model.Advert, error) {
	return findByID(m.r, m.r.adverts, "advert", id)
}

func (m memAdverts) Save(_ context.Context, rec *model.Advert) error {
	return save(m.r, m.r.adverts, "advert", rec, func(a model.Advert) error {
		if a.UserID == nil {
			return nil
		}
		return mustExist(m.r.users, "user", *a.UserID)
	})
}

func (m memAdverts) DeleteByID(_ context.Context, id int64) error {
	return deleteByID(m.r, m.r.adverts, "advert", id, func(id int64) bool {
		return m.r.bids.any(func(b model.Bid) bool { return b.AdvertID == id })
	})
}

func (m memAdverts) FindByName(_ context.Context, name string) ([]model.Advert, error) {
	return findAll(m.r, m.r.adverts, func(a model.Advert) bool { return strings.Contains(a.Name, name) }), nil
}

func (m memAdverts) FindByUser(_ context.Context, userID int64) ([]model.Advert, error) {
	return findAll(m.r, m.r.adverts, func(a model.Advert) bool { return a.UserID != nil && *a.UserID == userID }), nil
}

type memBids struct{ r *MemoryRepo }

func (m memBids) FindAll(_ context.Context) ([]model.Bid, error) {
	return findAll(m.r, m.r.bids, nil), nil
}

func (m memBids) FindByID(_ context.Context, id int64) (model.Bid, error) {
	return findByID(m.r, m.r.bids, "bid", id)
}

func (m memBids) Save(_ context.Context, rec *model.Bid) error {
	return save(m.r, m.r.bids, "bid", rec, func(b model.Bid) error {
		if err := mustExist(m.r.adverts, "advert", b.AdvertID); err != nil {
			return err
		}
		return mustExist(m.r.users, "user", b.UserID)
	})
}

func (m memBids) DeleteByID(_ context.Context, id int64) error {
	return deleteByID(m.r, m.r.bids, "bid", id, nil)
}

func (m memBids) FindByValue(_ context.Context, value int32) ([]model.Bid, error) {
	return findAll(m.r, m.r.bids, func(b model.Bid) bool { return b.Value != nil && *b.Value == value }), nil
}

func (m memBids) FindByAdvert(_ context.Context, advertID int64) ([]model.Bid, error) {
	return findAll(m.r, m.r.bids, func(b model.Bid) bool { return b.AdvertID == advertID }), nil
}

func (m memBids) FindByUser(_ context.Context, userID int64) ([]model.Bid, error) {
	return findAll(m.r, m.r.bids, func(b model.Bid) bool { return b.UserID == userID }), nil
}
