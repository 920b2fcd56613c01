package provider

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository implements Repository in process memory for tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]providerDoc

	// FailUpdate simulates a backend write failure for the named ids.
	FailUpdate map[string]error
}

// NewMemoryRepository builds an in-memory provider store for testing.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]providerDoc), FailUpdate: make(map[string]error)}
}

// Seed inserts a record and returns its generated id.
func (r *MemoryRepository) Seed(p Provider) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	r.docs[id.Hex()] = docFromProvider(id, p)
	return id.Hex()
}

func docFromProvider(id primitive.ObjectID, p Provider) providerDoc {
	return providerDoc{
		ID:              id,
		UID:             p.UID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		City:            p.City,
		ServiceCategory: p.ServiceCategory,
		Subcategories:   p.Subcategories,
		AccountStatus:   p.AccountStatus,
		Reason:          p.Reason,
		ReviewedAt:      p.ReviewedAt,
		CNICFront:       p.CNICFront,
		CNICBack:        p.CNICBack,
		ProfileImage:    p.ProfileImage,
		FCMToken:        p.FCMToken,
		Role:            p.Role,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now().UTC()
	providers := make([]Provider, 0, len(r.docs))
	for _, d := range r.docs {
		providers = append(providers, d.toProvider(now))
	}
	return providers, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[id]
	if !ok {
		return Provider{}, ErrNotFound
	}
	return d.toProvider(time.Now().UTC()), nil
}

func (r *MemoryRepository) FindByUID(_ context.Context, uid string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.docs {
		if d.UID == uid {
			return d.toProvider(time.Now().UTC()), nil
		}
	}
	return Provider{}, ErrNotFound
}

func (r *MemoryRepository) Insert(_ context.Context, p Provider) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	r.docs[id.Hex()] = docFromProvider(id, p)
	return id.Hex(), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.FailUpdate[id]; ok {
		return err
	}

	d, ok := r.docs[id]
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
		case "accountStatus":
			d.AccountStatus, _ = value.(string)
		case "reason":
			d.Reason, _ = value.(string)
		case "fcmToken":
			d.FCMToken, _ = value.(string)
		case "reviewedAt":
			if t, ok := value.(time.Time); ok {
				d.ReviewedAt = t
			}
		case "updatedAt":
			if t, ok := value.(time.Time); ok {
				d.UpdatedAt = t
			}
		}
	}
	r.docs[id] = d
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func (r *MemoryRepository) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, d := range r.docs {
		s := d.AccountStatus
		if s == "" {
			s = StatusPending
		}
		if s == status {
			n++
		}
	}
	return n, nil
}
