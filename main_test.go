package main

import (
	"context"
	"testing"

	market "marketplace/internal/marketService"
	model "marketplace/internal/models"
	"marketplace/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestPrepopulate(t *testing.T) {
	ctx := context.Background()
	services := market.NewServices(repository.NewMemoryRepositories())

	require.NoError(t, prepopulate(ctx, services))
	require.NoError(t, prepopulate(ctx, services)) // second run is a no-op

	locations, err := services.Locations.List(ctx, model.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, locations, 2)

	bids, err := services.Bids.List(ctx, model.BidFilter{})
	require.NoError(t, err)
	require.Len(t, bids, 1)

	owned, err := services.Adverts.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
}
