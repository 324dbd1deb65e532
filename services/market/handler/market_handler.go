package handler

import (
	"context"
	"strings"

	model "marketplace/internal/models"
	"marketplace/services/market/helpers"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_service.go -package=handler marketplace/services/market/handler UserServiceInterface,LocationServiceInterface,AdvertServiceInterface,BidServiceInterface

type UserServiceInterface interface {
	crudService[model.User]
	List(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	ListByLocation(ctx context.Context, locationID int64) ([]model.User, error)
}

type LocationServiceInterface interface {
	crudService[model.Location]
	List(ctx context.Context, filter model.LocationFilter) ([]model.Location, error)
}

type AdvertServiceInterface interface {
	crudService[model.Advert]
	List(ctx context.Context, filter model.AdvertFilter) ([]model.Advert, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Advert, error)
}

type BidServiceInterface interface {
	crudService[model.Bid]
	List(ctx context.Context, filter model.BidFilter) ([]model.Bid, error)
	ListByAdvert(ctx context.Context, advertID int64) ([]model.Bid, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Bid, error)
}

type UserHandler struct {
	resource[model.User]
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{resource: resource[model.User]{service: service, entity: "user"}, service: service}
}

// ListHandler handles GET /users?name=
func (h *UserHandler) ListHandler(c *gin.Context) {
	var filter model.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		helpers.HandleQueryError(c, "user.ListHandler", err)
		return
	}

	users, err := h.service.List(c.Request.Context(), filter)
	respondList(c, "user.ListHandler", users, err, map[string]any{"name": filter.Name})
}

// ListByLocationHandler handles GET /locations/:id/users
func (h *UserHandler) ListByLocationHandler(c *gin.Context) {
	locationID, ok := helpers.ParseID(c, "user.ListByLocationHandler", "id")
	if !ok {
		return
	}

	users, err := h.service.ListByLocation(c.Request.Context(), locationID)
	respondList(c, "user.ListByLocationHandler", users, err, map[string]any{"location_id": locationID})
}

type LocationHandler struct {
	resource[model.Location]
	service LocationServiceInterface
}

func NewLocationHandler(service LocationServiceInterface) *LocationHandler {
	return &LocationHandler{resource: resource[model.Location]{service: service, entity: "location"}, service: service}
}

// ListHandler handles GET /locations?name=&plz=. The name filter is also accepted as "location".
func (h *LocationHandler) ListHandler(c *gin.Context) {
	var filter model.LocationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		helpers.HandleQueryError(c, "location.ListHandler", err)
		return
	}
	// gin binds "?plz=" as 0; an empty value means no filter
	if c.Query("plz") == "" {
		filter.Plz = nil
	}
	if strings.TrimSpace(filter.Name) == "" {
		filter.Name = c.Query("location")
	}

	locations, err := h.service.List(c.Request.Context(), filter)
	respondList(c, "location.ListHandler", locations, err, map[string]any{"name": filter.Name, "plz": filter.Plz})
}

type AdvertHandler struct {
	resource[model.Advert]
	service AdvertServiceInterface
}

func NewAdvertHandler(service AdvertServiceInterface) *AdvertHandler {
	return &AdvertHandler{resource: resource[model.Advert]{service: service, entity: "advert"}, service: service}
}

// ListHandler handles GET /adverts?name=
func (h *AdvertHandler) ListHandler(c *gin.Context) {
	var filter model.AdvertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		helpers.HandleQueryError(c, "advert.ListHandler", err)
		return
	}

	adverts, err := h.service.List(c.Request.Context(), filter)
	respondList(c, "advert.ListHandler", adverts, err, map[string]any{"name": filter.Name})
}

// ListByUserHandler handles GET /users/:id/adverts
func (h *AdvertHandler) ListByUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseID(c, "advert.ListByUserHandler", "id")
	if !ok {
		return
	}

	adverts, err := h.service.ListByUser(c.Request.Context(), userID)
	respondList(c, "advert.ListByUserHandler", adverts, err, map[string]any{"user_id": userID})
}

type BidHandler struct {
	resource[model.Bid]
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{resource: resource[model.Bid]{service: service, entity: "bid"}, service: service}
}

// ListHandler handles GET /bids?value=
func (h *BidHandler) ListHandler(c *gin.Context) {
	var filter model.BidFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		helpers.HandleQueryError(c, "bid.ListHandler", err)
		return
	}
	if c.Query("value") == "" {
		filter.Value = nil
	}

	bids, err := h.service.List(c.Request.Context(), filter)
	respondList(c, "bid.ListHandler", bids, err, map[string]any{"value": filter.Value})
}

// ListByAdvertHandler handles GET /adverts/:id/bids
func (h *BidHandler) ListByAdvertHandler(c *gin.Context) {
	advertID, ok := helpers.ParseID(c, "bid.ListByAdvertHandler", "id")
	if !ok {
		return
	}

	bids, err := h.service.ListByAdvert(c.Request.Context(), advertID)
	respondList(c, "bid.ListByAdvertHandler", bids, err, map[string]any{"advert_id": advertID})
}

// ListByUserHandler handles GET /users/:id/bids
func (h *BidHandler) ListByUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseID(c, "bid.ListByUserHandler", "id")
	if !ok {
		return
	}

	bids, err := h.service.ListByUser(c.Request.Context(), userID)
	respondList(c, "bid.ListByUserHandler", bids, err, map[string]any{"user_id": userID})
}
