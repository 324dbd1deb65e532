package main

import (
	"context"
	"fmt"
	"os"

	"marketplace/internal/config"
	market "marketplace/internal/marketService"
	model "marketplace/internal/models"
	"marketplace/internal/platform/postgres"
	"marketplace/internal/repository"
	"marketplace/internal/server"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "marketplace: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := utils.SetLevel(cfg.Server.LogLevel); err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	repos, err := openRepositories(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			utils.Warn("failed to close store", map[string]any{"error": err.Error()})
		}
	}()

	services := market.NewServices(repos)

	if cfg.Database.Seed {
		if err := prepopulate(ctx, services); err != nil {
			return err
		}
	}

	router := server.SetupRouter(services, repos.Ping)

	return server.Run(ctx, cfg.Server, router)
}

// openRepositories builds the repositories for the configured driver
func openRepositories(ctx context.Context, cfg config.DatabaseConfig) (repository.Repositories, error) {
	if cfg.Driver != "postgres" {
		utils.Info("using in-memory store", nil)
		return repository.NewMemoryRepositories(), nil
	}

	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return repository.Repositories{}, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return repository.Repositories{}, err
		}
	}

	utils.Info("using postgres store", map[string]any{"max_open_conns": cfg.MaxOpenConns})
	return postgres.NewRepositories(db), nil
}

// prepopulate adds sample records when the store holds no locations yet
func prepopulate(ctx context.Context, services *market.Services) error {
	existing, err := services.Locations.List(ctx, model.LocationFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	berlin := model.Location{Name: "Berlin", Plz: intPtr(10115)}
	hamburg := model.Location{Name: "Hamburg", Plz: intPtr(20095)}
	for _, loc := range []*model.Location{&berlin, &hamburg} {
		if err := services.Locations.Create(ctx, loc); err != nil {
			return fmt.Errorf("seed location: %w", err)
		}
	}

	alice := model.User{Name: "Alice", LocationID: &berlin.ID}
	bob := model.User{Name: "Bob", LocationID: &hamburg.ID}
	for _, u := range []*model.User{&alice, &bob} {
		if err := services.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
	}

	bike := model.Advert{Name: "Road bike", UserID: &alice.ID}
	if err := services.Adverts.Create(ctx, &bike); err != nil {
		return fmt.Errorf("seed advert: %w", err)
	}

	bid := model.Bid{Value: intPtr(150), AdvertID: bike.ID, UserID: bob.ID}
	if err := services.Bids.Create(ctx, &bid); err != nil {
		return fmt.Errorf("seed bid: %w", err)
	}

	utils.Info("store prepopulated with sample records", nil)
	return nil
}

func intPtr(v int32) *int32 { return &v }
