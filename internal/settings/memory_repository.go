package settings

import (
	"context"
	"sync"
)

// MemoryRepository keeps the city list in memory for tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	cities []string
}

// NewMemoryRepository builds an empty in-memory settings repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Cities(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.cities))
	copy(out, r.cities)
	return out, nil
}

func (r *MemoryRepository) SaveCities(ctx context.Context, cities []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cities = make([]string, len(cities))
	copy(r.cities, cities)
	return nil
}
