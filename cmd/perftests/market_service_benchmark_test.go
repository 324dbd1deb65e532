package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	model "marketplace/internal/models"
)

// Benchmark 1: Create Bid - Sequential
func Benchmark_CreateBid_Sequential(b *testing.B) {
	svc := setupMarket(b, 100)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bid := model.Bid{Value: intPtr(int32(50 + i%100)), AdvertID: int64(i%100 + 1), UserID: int64((i+1)%100 + 1)}
		if err := svc.Bids.Create(ctx, &bid); err != nil {
			b.Fatalf("failed to create bid: %v", err)
		}
	}
}

// Benchmark 2: Create Bid - Concurrent writers on one advert (high contention)
func Benchmark_CreateBid_ConcurrentSharedAdvert(b *testing.B) {
	svc := setupMarket(b, 100)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var failed int64

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bid := model.Bid{Value: intPtr(rnd.Int31n(1000)), AdvertID: 1, UserID: int64(rnd.Intn(100) + 1)}
			if err := svc.Bids.Create(ctx, &bid); err != nil {
				atomic.AddInt64(&failed, 1)
			}
		}
	})

	if failed > 0 {
		b.Fatalf("%d bids failed", failed)
	}
}

// Benchmark 3: Get by id - Concurrent readers
func Benchmark_GetUser_Concurrent(b *testing.B) {
	svc := setupMarket(b, 1000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if _, err := svc.Users.Get(ctx, int64(rnd.Intn(1000)+1)); err != nil {
				b.Errorf("failed to get user: %v", err)
				return
			}
		}
	})
}

// Benchmark 4: Filtered list scans
func Benchmark_ListFilters(b *testing.B) {
	svc := setupMarket(b, 1000)
	ctx := context.Background()

	filters := []struct {
		name string
		run  func(i int) error
	}{
		{"UserByName", func(i int) error {
			_, err := svc.Users.List(ctx, model.UserFilter{Name: fmt.Sprintf("user_%d", i%1000)})
			return err
		}},
		{"LocationByNameAndPlz", func(i int) error {
			_, err := svc.Locations.List(ctx, model.LocationFilter{Name: "Location", Plz: intPtr(int32(1000 + i%8))})
			return err
		}},
		{"UsersByLocation", func(i int) error {
			_, err := svc.Users.ListByLocation(ctx, int64(i%8+1))
			return err
		}},
	}

	for _, f := range filters {
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := f.run(i); err != nil {
					b.Fatalf("list failed: %v", err)
				}
			}
		})
	}
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload(b *testing.B) {
	svc := setupMarket(b, 200)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			advertID := int64(rnd.Intn(200) + 1)
			if rnd.Intn(10) < 3 {
				bid := model.Bid{Value: intPtr(rnd.Int31n(500)), AdvertID: advertID, UserID: int64(rnd.Intn(200) + 1)}
				_ = svc.Bids.Create(ctx, &bid)
				continue
			}
			_, _ = svc.Bids.ListByAdvert(ctx, advertID)
		}
	})
}
