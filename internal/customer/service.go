package customer

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Service exposes customer administration operations.
type Service struct {
	repo Repository
}

// NewService creates a customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all customers, newest first.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

// Get fetches a single customer by record id.
func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the provided contact fields and stamps updatedAt.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) error {
	fields := map[string]any{"updatedAt": time.Now().UTC()}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.City != nil {
		fields["city"] = *input.City
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes the customer record. The operation is unconditional and
// destructive; there is no soft delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Search filters the materialized list by a case-insensitive term over
// name, email, phone and city.
func (s *Service) Search(ctx context.Context, term string) ([]Customer, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return customers, nil
	}

	needle := strings.ToLower(term)
	matched := customers[:0]
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.City), needle) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Count returns the server-side customer count.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
