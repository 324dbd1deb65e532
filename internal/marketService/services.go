package market

import (
	"context"
	"strings"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// UserService defines the business logic for users
type UserService struct {
	crud[model.User, *model.User]
	repo repository.UserRepository
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{crud: crud[model.User, *model.User]{repo: repo, entity: "user"}, repo: repo}
}

// List returns every user, or the users whose name contains filter.Name
func (s *UserService) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	if isBlank(filter.Name) {
		return s.list(s.repo.FindAll(ctx))
	}
	return s.list(s.repo.FindByName(ctx, filter.Name))
}

// ListByLocation returns the users living at a location
func (s *UserService) ListByLocation(ctx context.Context, locationID int64) ([]model.User, error) {
	return s.list(s.repo.FindByLocation(ctx, locationID))
}

// LocationService defines the business logic for locations
type LocationService struct {
	crud[model.Location, *model.Location]
	repo repository.LocationRepository
}

// NewLocationService creates a new LocationService instance
func NewLocationService(repo repository.LocationRepository) *LocationService {
	return &LocationService{crud: crud[model.Location, *model.Location]{repo: repo, entity: "location"}, repo: repo}
}

// List applies the name and postal code filters independently or combined
func (s *LocationService) List(ctx context.Context, filter model.LocationFilter) ([]model.Location, error) {
	hasName := !isBlank(filter.Name)

	switch {
	case hasName && filter.Plz != nil:
		return s.list(s.repo.FindByNameAndPlz(ctx, filter.Name, *filter.Plz))
	case hasName:
		return s.list(s.repo.FindByName(ctx, filter.Name))
	case filter.Plz != nil:
		return s.list(s.repo.FindByPlz(ctx, *filter.Plz))
	default:
		return s.list(s.repo.FindAll(ctx))
	}
}

// AdvertService defines the business logic for adverts
type AdvertService struct {
	crud[model.Advert, *model.Advert]
	repo repository.AdvertRepository
}

// NewAdvertService creates a new AdvertService instance
func NewAdvertService(repo repository.AdvertRepository) *AdvertService {
	return &AdvertService{crud: crud[model.Advert, *model.Advert]{repo: repo, entity: "advert"}, repo: repo}
}

// List returns every advert, or the adverts whose name contains filter.Name
func (s *AdvertService) List(ctx context.Context, filter model.AdvertFilter) ([]model.Advert, error) {
	if isBlank(filter.Name) {
		return s.list(s.repo.FindAll(ctx))
	}
	return s.list(s.repo.FindByName(ctx, filter.Name))
}

// ListByUser returns the adverts owned by a user
func (s *AdvertService) ListByUser(ctx context.Context, userID int64) ([]model.Advert, error) {
	return s.list(s.repo.FindByUser(ctx, userID))
}

// BidService defines the business logic for bids
type BidService struct {
	crud[model.Bid, *model.Bid]
	repo repository.BidRepository
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.BidRepository) *BidService {
	return &BidService{crud: crud[model.Bid, *model.Bid]{repo: repo, entity: "bid"}, repo: repo}
}

// List returns every bid, or the bids whose value equals filter.Value
func (s *BidService) List(ctx context.Context, filter model.BidFilter) ([]model.Bid, error) {
	if filter.Value == nil {
		return s.list(s.repo.FindAll(ctx))
	}
	return s.list(s.repo.FindByValue(ctx, *filter.Value))
}

// ListByAdvert returns the bids placed on an advert
func (s *BidService) ListByAdvert(ctx context.Context, advertID int64) ([]model.Bid, error) {
	return s.list(s.repo.FindByAdvert(ctx, advertID))
}

// ListByUser returns the bids placed by a user
func (s *BidService) ListByUser(ctx context.Context, userID int64) ([]model.Bid, error) {
	return s.list(s.repo.FindByUser(ctx, userID))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Services bundles the resource services built over one set of repositories
type Services struct {
	Users     *UserService
	Locations *LocationService
	Adverts   *AdvertService
	Bids      *BidService
}

// NewServices wires a service for every repository in repos
func NewServices(repos repository.Repositories) *Services {
	return &Services{
		Users:     NewUserService(repos.Users),
		Locations: NewLocationService(repos.Locations),
		Adverts:   NewAdvertService(repos.Adverts),
		Bids:      NewBidService(repos.Bids),
	}
}
