package ads

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository implements Repository in process memory for tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]adDoc
}

// NewMemoryRepository builds an in-memory ads store for testing.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]adDoc)}
}

func (r *MemoryRepository) List(_ context.Context) ([]Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adsList := make([]Ad, 0, len(r.docs))
	for _, d := range r.docs {
		adsList = append(adsList, d.toAd())
	}
	return adsList, nil
}

func (r *MemoryRepository) Insert(_ context.Context, ad Ad) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	active := ad.IsActive
	r.docs[id.Hex()] = adDoc{
		ID:          id,
		Title:       ad.Title,
		Description: ad.Description,
		Details:     ad.Details,
		Link:        ad.Link,
		BgColor:     ad.BgColor,
		TextColor:   ad.TextColor,
		IsActive:    &active,
		Position:    ad.Position,
		Width:       ad.Width,
		Height:      ad.Height,
		Clicks:      ad.Clicks,
		Impressions: ad.Impressions,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}
	return id.Hex(), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.docs[id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			d.Title, _ = value.(string)
		case "description":
			d.Description, _ = value.(string)
		case "details":
			d.Details, _ = value.(string)
		case "link":
			d.Link, _ = value.(string)
		case "bgColor":
			d.BgColor, _ = value.(string)
		case "textColor":
			d.TextColor, _ = value.(string)
		case "position":
			d.Position, _ = value.(string)
		case "isActive":
			if b, ok := value.(bool); ok {
				d.IsActive = &b
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

func (r *MemoryRepository) IncrementCounter(_ context.Context, id, counter string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch counter {
	case "clicks":
		d.Clicks++
	case "impressions":
		d.Impressions++
	}
	d.UpdatedAt = time.Now().UTC()
	r.docs[id] = d
	return nil
}
