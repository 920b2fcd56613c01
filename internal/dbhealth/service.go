package dbhealth

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store probes the record store.
type Store interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context, collection string) (int64, error)
}

// Cache probes the cache backend.
type Cache interface {
	Ping(ctx context.Context) error
}

// MongoStore implements Store over a live database handle.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps a database handle for health probing.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

// RedisCache implements Cache over a live client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a Redis client for health probing.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Service runs the connectivity and per-collection probes.
type Service struct {
	store       Store
	cache       Cache
	collections []string
	logger      *slog.Logger
	now         func() time.Time
}

// NewService builds a health service probing the given collections.
func NewService(store Store, cache Cache, collections []string, logger *slog.Logger) *Service {
	return &Service{
		store:       store,
		cache:       cache,
		collections: collections,
		logger:      logger,
		now:         time.Now,
	}
}

// Check probes both backends and every configured collection. The probe
// itself never fails; trouble is folded into the report status.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{CheckedAt: s.now()}

	start := s.now()
	if err := s.store.Ping(ctx); err != nil {
		report.Mongo = ConnState{Error: err.Error(), LatencyMs: s.sinceMs(start)}
		report.Status = StatusOffline
		s.logger.Error("record store unreachable", "error", err)
		return report
	}
	report.Mongo = ConnState{Connected: true, LatencyMs: s.sinceMs(start)}

	start = s.now()
	if err := s.cache.Ping(ctx); err != nil {
		report.Redis = ConnState{Error: err.Error(), LatencyMs: s.sinceMs(start)}
		s.logger.Warn("cache unreachable", "error", err)
	} else {
		report.Redis = ConnState{Connected: true, LatencyMs: s.sinceMs(start)}
	}

	failed := 0
	degraded := !report.Redis.Connected
	for _, name := range s.collections {
		state := CollectionState{Name: name}
		start = s.now()
		count, err := s.store.Count(ctx, name)
		state.LatencyMs = s.sinceMs(start)
		if err != nil {
			state.Error = err.Error()
			failed++
			degraded = true
		} else {
			state.Count = count
			if state.LatencyMs > float64(ProbeLatencyBudget.Milliseconds()) {
				state.Slow = true
				degraded = true
			}
		}
		report.Collections = append(report.Collections, state)
	}

	switch {
	case len(s.collections) > 0 && failed == len(s.collections):
		report.Status = StatusError
	case degraded:
		report.Status = StatusDegraded
	default:
		report.Status = StatusHealthy
	}
	return report
}

func (s *Service) sinceMs(start time.Time) float64 {
	return float64(s.now().Sub(start).Microseconds()) / 1000
}
