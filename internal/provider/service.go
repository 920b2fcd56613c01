package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/karigar-app/admin-api/internal/classify"
	"github.com/karigar-app/admin-api/internal/mailer"
)

// ErrEmptyBatch indicates a bulk operation was invoked with no ids.
var ErrEmptyBatch = fmt.Errorf("no provider ids selected")

// ErrInvalidStatus indicates a transition target outside accepted/rejected.
var ErrInvalidStatus = fmt.Errorf("status must be accepted or rejected")

// Service manages provider records and the verification workflow.
type Service struct {
	repo   Repository
	table  *classify.Table
	mail   mailer.Mailer
	logger *slog.Logger
}

// NewService creates a provider service. mail may be nil when no email
// collaborator is configured.
func NewService(repo Repository, table *classify.Table, mail mailer.Mailer, logger *slog.Logger) *Service {
	return &Service{repo: repo, table: table, mail: mail, logger: logger}
}

// List returns all providers, newest first, with the derived service type.
func (s *Service) List(ctx context.Context) ([]Provider, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		providers[i].ServiceType = s.table.Classify(providers[i].ServiceCategory)
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].CreatedAt.After(providers[j].CreatedAt)
	})
	return providers, nil
}

// ListByStatus filters the materialized list by verification state.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]Provider, error) {
	providers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return providers, nil
	}
	filtered := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p.AccountStatus == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get fetches a single provider with the derived service type.
func (s *Service) Get(ctx context.Context, id string) (Provider, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Provider{}, err
	}
	p.ServiceType = s.table.Classify(p.ServiceCategory)
	return p, nil
}

// Create inserts a pending provider record and sends the admin-facing email
// best-effort: a delivery failure is logged and never surfaced to the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (Provider, error) {
	p := Provider{
		UID:             input.UID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		City:            input.City,
		ServiceCategory: input.ServiceCategory,
		Subcategories:   input.Subcategories,
		AccountStatus:   StatusPending,
		Role:            "service_provider",
		CreatedAt:       time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return Provider{}, err
	}
	p.ID = id
	p.ServiceType = s.table.Classify(p.ServiceCategory)

	if s.mail != nil {
		subject := "New service provider registration"
		body := fmt.Sprintf("Provider %s (%s) registered in %s and is awaiting verification.", p.Name, p.ServiceCategory, p.City)
		if err := s.mail.Send(ctx, subject, body); err != nil {
			s.logger.Warn("provider registration email failed", "provider_id", id, "error", err)
		}
	}

	return p, nil
}

// SetStatus applies an accept/reject transition: one partial update writing
// accountStatus, reviewedAt and, when given, the rejection reason. There is
// no read-before-write; concurrent reviews of the same record resolve
// last-write-wins at the store. Repeating a transition overwrites
// reviewedAt rather than short-circuiting.
func (s *Service) SetStatus(ctx context.Context, id, status, reason string) error {
	if status != StatusAccepted && status != StatusRejected {
		return ErrInvalidStatus
	}

	fields := map[string]any{
		"accountStatus": status,
		"reviewedAt":    time.Now().UTC(),
	}
	if reason != "" {
		fields["reason"] = reason
	}
	if status == StatusAccepted {
		// A rejection reason must not survive a later approval.
		fields["reason"] = ""
	}

	return s.repo.Update(ctx, id, fields)
}

// BulkSetStatus fans SetStatus out across the selected ids, all launched
// concurrently and awaited jointly. Any single failure collapses the batch
// outcome to that error; records whose writes already committed stay
// transitioned, and no per-item accounting is reported. Bulk operations do
// not dispatch notifications.
func (s *Service) BulkSetStatus(ctx context.Context, ids []string, status, reason string) error {
	if len(ids) == 0 {
		return ErrEmptyBatch
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return s.SetStatus(ctx, id, status, reason)
		})
	}
	return g.Wait()
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

// Delete removes the provider record unconditionally.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Search filters the materialized list by a case-insensitive term over
// name, email, phone, city and service category.
func (s *Service) Search(ctx context.Context, term string) ([]Provider, error) {
	providers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return providers, nil
	}

	needle := strings.ToLower(term)
	matched := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Email), needle) ||
			strings.Contains(p.Phone, term) ||
			strings.Contains(strings.ToLower(p.City), needle) ||
			strings.Contains(strings.ToLower(p.ServiceCategory), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// StatusCounts aggregates server-side counts per verification state.
func (s *Service) StatusCounts(ctx context.Context) (StatusCounts, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return StatusCounts{}, err
	}
	pending, err := s.repo.CountByStatus(ctx, StatusPending)
	if err != nil {
		return StatusCounts{}, err
	}
	accepted, err := s.repo.CountByStatus(ctx, StatusAccepted)
	if err != nil {
		return StatusCounts{}, err
	}
	rejected, err := s.repo.CountByStatus(ctx, StatusRejected)
	if err != nil {
		return StatusCounts{}, err
	}
	return StatusCounts{Total: total, Pending: pending, Accepted: accepted, Rejected: rejected}, nil
}
