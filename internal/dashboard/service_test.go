package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/karigar-app/admin-api/internal/classify"
	"github.com/karigar-app/admin-api/internal/customer"
	"github.com/karigar-app/admin-api/internal/logging"
	"github.com/karigar-app/admin-api/internal/provider"
)

func newTestService(t *testing.T, withCache bool) (*Service, *customer.MemoryRepository, *provider.MemoryRepository) {
	t.Helper()
	customers := customer.NewMemoryRepository()
	providers := provider.NewMemoryRepository()

	var cache *redis.Client
	if withCache {
		mr := miniredis.RunT(t)
		cache = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	}
	svc := NewService(customers, providers, classify.Default(), cache, time.Minute, logging.Discard())
	return svc, customers, providers
}

func TestCountsWithoutCache(t *testing.T) {
	svc, customers, providers := newTestService(t, false)
	ctx := context.Background()

	customers.Seed(customer.Customer{UID: "c1"})
	customers.Seed(customer.Customer{UID: "c2"})
	providers.Seed(provider.Provider{UID: "p1", AccountStatus: provider.StatusPending})
	providers.Seed(provider.Provider{UID: "p2", AccountStatus: provider.StatusAccepted})
	providers.Seed(provider.Provider{UID: "p3", AccountStatus: provider.StatusRejected})

	counts, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := TotalCounts{Customers: 2, Providers: 3, PendingProviders: 1, AcceptedProviders: 1}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestCountsServedFromCache(t *testing.T) {
	svc, customers, _ := newTestService(t, true)
	ctx := context.Background()

	customers.Seed(customer.Customer{UID: "c1"})
	first, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	// A write after the first read must not show until the TTL lapses.
	customers.Seed(customer.Customer{UID: "c2"})
	second, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if second != first {
		t.Fatalf("expected cached counts %+v, got %+v", first, second)
	}
}

func TestCountsDegradeWhenCacheDown(t *testing.T) {
	customers := customer.NewMemoryRepository()
	providers := provider.NewMemoryRepository()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	svc := NewService(customers, providers, classify.Default(), cache, time.Minute, logging.Discard())
	customers.Seed(customer.Customer{UID: "c1"})

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts must degrade to direct reads: %v", err)
	}
	if counts.Customers != 1 {
		t.Fatalf("customers = %d, want 1", counts.Customers)
	}
}

func TestCitiesTopTen(t *testing.T) {
	svc, customers, providers := newTestService(t, false)

	for i := 0; i < 12; i++ {
		customers.Seed(customer.Customer{UID: fmt.Sprintf("c%d", i), City: fmt.Sprintf("City-%02d", i)})
	}
	for i := 0; i < 3; i++ {
		providers.Seed(provider.Provider{UID: fmt.Sprintf("p%d", i), City: "Lahore"})
	}
	customers.Seed(customer.Customer{UID: "blank"})

	cities, err := svc.Cities(context.Background())
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if len(cities) != 10 {
		t.Fatalf("expected top 10 cities, got %d", len(cities))
	}
	if cities[0].Label != "Lahore" || cities[0].Count != 3 {
		t.Fatalf("largest city first, got %+v", cities[0])
	}
}

func TestUserStatsSkillSplit(t *testing.T) {
	svc, customers, providers := newTestService(t, false)
	now := time.Now()
	svc.now = func() time.Time { return now }

	customers.Seed(customer.Customer{UID: "c1", CreatedAt: now.Add(-48 * time.Hour)})
	providers.Seed(provider.Provider{UID: "p1", ServiceCategory: "Electrician", AccountStatus: provider.StatusAccepted, CreatedAt: now})
	providers.Seed(provider.Provider{UID: "p2", ServiceCategory: "Sweeper", AccountStatus: provider.StatusPending, CreatedAt: now.Add(-48 * time.Hour)})
	providers.Seed(provider.Provider{UID: "p3", ServiceCategory: "Dog Walking", CreatedAt: now.Add(-48 * time.Hour)})

	stats, err := svc.UserStats(context.Background())
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if stats.TotalUsers != 4 || stats.Customers != 1 || stats.Providers != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.SkilledProviders != 1 || stats.UnskilledProviders != 1 {
		t.Fatalf("unexpected skill split: %+v", stats)
	}
	if stats.VerifiedProviders != 1 {
		t.Fatalf("verified = %d, want 1", stats.VerifiedProviders)
	}
	if stats.NewToday != 1 {
		t.Fatalf("newToday = %d, want 1", stats.NewToday)
	}
}
