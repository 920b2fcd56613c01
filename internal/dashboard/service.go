package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karigar-app/admin-api/internal/classify"
	"github.com/karigar-app/admin-api/internal/customer"
	"github.com/karigar-app/admin-api/internal/provider"
)

const topCities = 10

// Cache keys for the dashboard aggregates.
const (
	countsKey     = "dashboard:counts"
	citiesKey     = "dashboard:cities"
	categoriesKey = "dashboard:categories"
	userStatsKey  = "dashboard:user-stats"
)

// Service computes dashboard aggregates. Results are cached in Redis for
// a short TTL; any cache failure degrades to a direct read.
type Service struct {
	customers customer.Repository
	providers provider.Repository
	table     *classify.Table
	cache     *redis.Client
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewService builds a dashboard service. A nil cache disables caching.
func NewService(customers customer.Repository, providers provider.Repository, table *classify.Table, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		customers: customers,
		providers: providers,
		table:     table,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// Counts returns the headline totals using server-side counts.
func (s *Service) Counts(ctx context.Context) (TotalCounts, error) {
	var counts TotalCounts
	if s.fromCache(ctx, countsKey, &counts) {
		return counts, nil
	}

	customers, err := s.customers.Count(ctx)
	if err != nil {
		return TotalCounts{}, err
	}
	providers, err := s.providers.Count(ctx)
	if err != nil {
		return TotalCounts{}, err
	}
	pending, err := s.providers.CountByStatus(ctx, provider.StatusPending)
	if err != nil {
		return TotalCounts{}, err
	}
	accepted, err := s.providers.CountByStatus(ctx, provider.StatusAccepted)
	if err != nil {
		return TotalCounts{}, err
	}

	counts = TotalCounts{
		Customers:         customers,
		Providers:         providers,
		PendingProviders:  pending,
		AcceptedProviders: accepted,
	}
	s.store(ctx, countsKey, counts)
	return counts, nil
}

// Cities returns the ten most common cities across both audiences.
func (s *Service) Cities(ctx context.Context) ([]Slice, error) {
	var slices []Slice
	if s.fromCache(ctx, citiesKey, &slices) {
		return slices, nil
	}

	allCustomers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	allProviders, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}

	byCity := make(map[string]int)
	for _, c := range allCustomers {
		if c.City != "" && c.City != "N/A" {
			byCity[c.City]++
		}
	}
	for _, p := range allProviders {
		if p.City != "" && p.City != "N/A" {
			byCity[p.City]++
		}
	}

	slices = toSortedSlices(byCity)
	if len(slices) > topCities {
		slices = slices[:topCities]
	}
	s.store(ctx, citiesKey, slices)
	return slices, nil
}

// Categories returns provider counts per service category.
func (s *Service) Categories(ctx context.Context) ([]Slice, error) {
	var slices []Slice
	if s.fromCache(ctx, categoriesKey, &slices) {
		return slices, nil
	}

	allProviders, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int)
	for _, p := range allProviders {
		if p.ServiceCategory != "" && p.ServiceCategory != "N/A" {
			byCategory[p.ServiceCategory]++
		}
	}

	slices = toSortedSlices(byCategory)
	s.store(ctx, categoriesKey, slices)
	return slices, nil
}

// UserStats breaks the user base down by audience, skill class and
// verification state, plus signups since local midnight.
func (s *Service) UserStats(ctx context.Context) (UserStats, error) {
	var stats UserStats
	if s.fromCache(ctx, userStatsKey, &stats) {
		return stats, nil
	}

	allCustomers, err := s.customers.List(ctx)
	if err != nil {
		return UserStats{}, err
	}
	allProviders, err := s.providers.List(ctx)
	if err != nil {
		return UserStats{}, err
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats = UserStats{
		Customers: len(allCustomers),
		Providers: len(allProviders),
	}
	stats.TotalUsers = stats.Customers + stats.Providers

	for _, c := range allCustomers {
		if !c.CreatedAt.Before(midnight) {
			stats.NewToday++
		}
	}
	for _, p := range allProviders {
		if !p.CreatedAt.Before(midnight) {
			stats.NewToday++
		}
		if p.AccountStatus == provider.StatusAccepted {
			stats.VerifiedProviders++
		}
		switch s.table.Classify(p.ServiceCategory) {
		case classify.TypeSkilled:
			stats.SkilledProviders++
		case classify.TypeUnskilled:
			stats.UnskilledProviders++
		}
	}

	s.store(ctx, userStatsKey, stats)
	return stats, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("dashboard cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("dashboard cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", "key", key, "error", err)
	}
}

func toSortedSlices(counts map[string]int) []Slice {
	slices := make([]Slice, 0, len(counts))
	for label, count := range counts {
		slices = append(slices, Slice{Label: label, Count: count})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Label < slices[j].Label
	})
	return slices
}
