package order

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepository keeps order records in memory for tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	orders    []Order
	completed []CompletedRequest
	nextID    int
}

// NewMemoryRepository builds an empty in-memory order repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// SeedOrder stores an order and returns its assigned id.
func (r *MemoryRepository) SeedOrder(o Order) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = fmt.Sprintf("order-%d", r.nextID)
		r.nextID++
	}
	r.orders = append(r.orders, o)
	return o.ID
}

// SeedCompleted stores a completed request and returns its assigned id.
func (r *MemoryRepository) SeedCompleted(c CompletedRequest) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = fmt.Sprintf("completed-%d", r.nextID)
		r.nextID++
	}
	r.completed = append(r.completed, c)
	return c.ID
}

func (r *MemoryRepository) ListOrders(ctx context.Context) ([]Order, error) {
	return r.filterOrders(func(Order) bool { return true }), nil
}

func (r *MemoryRepository) ListOrdersByField(ctx context.Context, field, value string) ([]Order, error) {
	return r.filterOrders(func(o Order) bool { return orderField(o, field) == value }), nil
}

func (r *MemoryRepository) ListCompleted(ctx context.Context) ([]CompletedRequest, error) {
	return r.filterCompleted(func(CompletedRequest) bool { return true }), nil
}

func (r *MemoryRepository) ListCompletedByField(ctx context.Context, field, value string) ([]CompletedRequest, error) {
	return r.filterCompleted(func(c CompletedRequest) bool { return completedField(c, field) == value }), nil
}

func (r *MemoryRepository) FindCompletedByID(ctx context.Context, id string) (CompletedRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.completed {
		if c.ID == id {
			return c, nil
		}
	}
	return CompletedRequest{}, ErrNotFound
}

func (r *MemoryRepository) filterOrders(keep func(Order) bool) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *MemoryRepository) filterCompleted(keep func(CompletedRequest) bool) []CompletedRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CompletedRequest, 0, len(r.completed))
	for _, c := range r.completed {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func orderField(o Order, field string) string {
	switch field {
	case "customerId":
		return o.CustomerID
	case "userId":
		return o.UserID
	case "providerId":
		return o.ProviderID
	}
	return ""
}

func completedField(c CompletedRequest, field string) string {
	switch field {
	case "customerId":
		return c.CustomerID
	case "userId":
		return c.UserID
	case "providerId":
		return c.ProviderID
	}
	return ""
}
