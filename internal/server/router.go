package server

import (
	"context"

	market "marketplace/internal/marketService"
	handler "marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(services *market.Services, ping func(ctx context.Context) error) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(RequestIDMiddleware)     // tag every request before anything can fail
	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	userHandler := handler.NewUserHandler(services.Users)
	locationHandler := handler.NewLocationHandler(services.Locations)
	advertHandler := handler.NewAdvertHandler(services.Adverts)
	bidHandler := handler.NewBidHandler(services.Bids)

	router.GET("/health", handler.NewHealthHandler(ping).HealthHandler)

	users := router.Group("/users")
	{
		users.GET("", userHandler.ListHandler)
		users.GET("/:id", userHandler.GetByIDHandler)
		users.POST("", userHandler.CreateHandler)
		users.PUT("", userHandler.UpdateHandler)
		users.DELETE("/:id", userHandler.DeleteHandler)
		users.GET("/:id/adverts", advertHandler.ListByUserHandler)
		users.GET("/:id/bids", bidHandler.ListByUserHandler)
	}

	locations := router.Group("/locations")
	{
		locations.GET("", locationHandler.ListHandler)
		locations.GET("/:id", locationHandler.GetByIDHandler)
		locations.POST("", locationHandler.CreateHandler)
		locations.PUT("", locationHandler.UpdateHandler)
		locations.DELETE("/:id", locationHandler.DeleteHandler)
		locations.GET("/:id/users", userHandler.ListByLocationHandler)
	}

	adverts := router.Group("/adverts")
	{
		adverts.GET("", advertHandler.ListHandler)
		adverts.GET("/:id", advertHandler.GetByIDHandler)
		adverts.POST("", advertHandler.CreateHandler)
		adverts.PUT("", advertHandler.UpdateHandler)
		adverts.DELETE("/:id", advertHandler.DeleteHandler)
		adverts.GET("/:id/bids", bidHandler.ListByAdvertHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", bidHandler.ListHandler)
		bids.GET("/:id", bidHandler.GetByIDHandler)
		bids.POST("", bidHandler.CreateHandler)
		bids.PUT("", bidHandler.UpdateHandler)
		bids.DELETE("/:id", bidHandler.DeleteHandler)
	}

	return router
}
