package customer

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRepository struct {
	mu   sync.RWMutex
	docs map[string]customerDoc
}

// NewMemoryRepository builds an in-memory customer store for testing.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{inner: &memoryRepository{docs: make(map[string]customerDoc)}}
}

// MemoryRepository implements Repository in process memory. Seed populates
// records the same way the mongo repository would read them.
type MemoryRepository struct {
	inner *memoryRepository
}

// Seed inserts a record and returns its generated id.
func (r *MemoryRepository) Seed(c Customer) string {
	r.inner.mu.Lock()
	defer r.inner.mu.Unlock()

	id := primitive.NewObjectID()
	r.inner.docs[id.Hex()] = customerDoc{
		ID:        id,
		UID:       c.UID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.City,
		Role:      c.Role,
		FCMToken:  c.FCMToken,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	return id.Hex()
}

func (r *MemoryRepository) List(_ context.Context) ([]Customer, error) {
	r.inner.mu.RLock()
	defer r.inner.mu.RUnlock()

	now := time.Now().UTC()
	customers := make([]Customer, 0, len(r.inner.docs))
	for _, d := range r.inner.docs {
		customers = append(customers, d.toCustomer(now))
	}
	return customers, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (Customer, error) {
	r.inner.mu.RLock()
	defer r.inner.mu.RUnlock()

	d, ok := r.inner.docs[id]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return d.toCustomer(time.Now().UTC()), nil
}

func (r *MemoryRepository) FindByUID(_ context.Context, uid string) (Customer, error) {
	r.inner.mu.RLock()
	defer r.inner.mu.RUnlock()

	for _, d := range r.inner.docs {
		if d.UID == uid {
			return d.toCustomer(time.Now().UTC()), nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *MemoryRepository) Update(_ context.Context, id string, fields map[string]any) error {
	r.inner.mu.Lock()
	defer r.inner.mu.Unlock()

	d, ok := r.inner.docs[id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			d.Name, _ = value.(string)
		case "email":
			d.Email, _ = value.(string)
		case "phone":
			d.Phone, _ = value.(string)
		case "city":
			d.City, _ = value.(string)
		case "fcmToken":
			d.FCMToken, _ = value.(string)
		case "updatedAt":
			if t, ok := value.(time.Time); ok {
				d.UpdatedAt = t
			}
		}
	}
	r.inner.docs[id] = d
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.inner.mu.Lock()
	defer r.inner.mu.Unlock()

	if _, ok := r.inner.docs[id]; !ok {
		return ErrNotFound
	}
	delete(r.inner.docs, id)
	return nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.inner.mu.RLock()
	defer r.inner.mu.RUnlock()
	return int64(len(r.inner.docs)), nil
}
