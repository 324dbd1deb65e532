package perftests

import (
	"context"
	"fmt"
	"testing"

	market "marketplace/internal/marketService"
	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

func intPtr(v int32) *int32 { return &v }

// setupMarket creates services over a memory store holding numUsers users,
// each at one of a handful of locations and owning one advert
func setupMarket(b *testing.B, numUsers int) *market.Services {
	b.Helper()

	ctx := context.Background()
	svc := market.NewServices(repository.NewMemoryRepositories())

	const numLocations = 8
	for i := 0; i < numLocations; i++ {
		loc := model.Location{Name: fmt.Sprintf("Location_%d", i), Plz: intPtr(int32(1000 + i))}
		if err := svc.Locations.Create(ctx, &loc); err != nil {
			b.Fatalf("failed to seed location: %v", err)
		}
	}

	for i := 0; i < numUsers; i++ {
		locationID := int64(i%numLocations + 1)
		user := model.User{Name: fmt.Sprintf("user_%d", i), LocationID: &locationID}
		if err := svc.Users.Create(ctx, &user); err != nil {
			b.Fatalf("failed to seed user: %v", err)
		}
		advert := model.Advert{Name: fmt.Sprintf("advert_%d", i), UserID: &user.ID}
		if err := svc.Adverts.Create(ctx, &advert); err != nil {
			b.Fatalf("failed to seed advert: %v", err)
		}
	}
	return svc
}
