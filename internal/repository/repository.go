package repository

import (
	"context"

	model "marketplace/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository marketplace/internal/repository UserRepository,LocationRepository,AdvertRepository,BidRepository

// CRUD is the storage contract shared by every resource
type CRUD[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	// Save inserts rec when its id is zero and writes the assigned id back,
	// otherwise it fully replaces (or inserts) the record with that id.
	Save(ctx context.Context, rec *T) error
	DeleteByID(ctx context.Context, id int64) error
}

// UserRepository stores users
type UserRepository interface {
	CRUD[model.User]
	FindByName(ctx context.Context, name string) ([]model.User, error)
	FindByLocation(ctx context.Context, locationID int64) ([]model.User, error)
}

// LocationRepository stores locations
type LocationRepository interface {
	CRUD[model.Location]
	FindByName(ctx context.Context, name string) ([]model.Location, error)
	FindByPlz(ctx context.Context, plz int32) ([]model.Location, error)
	FindByNameAndPlz(ctx context.Context, name string, plz int32) ([]model.Location, error)
}

// AdvertRepository stores adverts
type AdvertRepository interface {
	CRUD[model.Advert]
	FindByName(ctx context.Context, name string) ([]model.Advert, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Advert, error)
}

// BidRepository stores bids
type BidRepository interface {
	CRUD[model.Bid]
	FindByValue(ctx context.Context, value int32) ([]model.Bid, error)
	FindByAdvert(ctx context.Context, advertID int64) ([]model.Bid, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Bid, error)
}

// Repositories bundles one repository per resource behind a single storage driver
type Repositories struct {
	Users     UserRepository
	Locations LocationRepository
	Adverts   AdvertRepository
	Bids      BidRepository

	// Ping reports whether the backing store is reachable
	Ping func(ctx context.Context) error
	// Close releases the backing store
	Close func() error
}
