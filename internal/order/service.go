package order

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

// ErrUnknownUserType indicates an unsupported userType query value.
var ErrUnknownUserType = errors.New("userType must be customer or provider")

// Service reads orders and the acceptance log.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService builds an order service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// UserOrders merges a user's records from both collections, newest first.
// Providers are matched on providerId; customers on both customerId and
// userId since older completed records carry the customer under userId.
func (s *Service) UserOrders(ctx context.Context, userID, userType string) ([]Order, error) {
	fields, err := matchFields(userType)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []Order

	for _, field := range fields {
		found, err := s.repo.ListOrdersByField(ctx, field, userID)
		if err != nil {
			return nil, err
		}
		for _, o := range found {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			merged = append(merged, o)
		}

		completed, err := s.repo.ListCompletedByField(ctx, field, userID)
		if err != nil {
			return nil, err
		}
		for _, c := range completed {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			merged = append(merged, completedAsOrder(c))
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].CreatedAt.After(merged[j].CreatedAt) })
	return merged, nil
}

// AllOrders lists every open order, newest first.
func (s *Service) AllOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}

// AcceptanceLogs lists completed requests that record a mutual
// acceptance, most recently accepted first.
func (s *Service) AcceptanceLogs(ctx context.Context) ([]CompletedRequest, error) {
	all, err := s.repo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]CompletedRequest, 0, len(all))
	for _, c := range all {
		if !c.AcceptedAt.IsZero() {
			logs = append(logs, c)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].AcceptedAt.After(logs[j].AcceptedAt) })
	return logs, nil
}

// LogByID loads one completed request.
func (s *Service) LogByID(ctx context.Context, id string) (CompletedRequest, error) {
	return s.repo.FindCompletedByID(ctx, id)
}

func matchFields(userType string) ([]string, error) {
	switch strings.ToLower(userType) {
	case "provider", "service_provider":
		return []string{"providerId"}, nil
	case "customer", "":
		return []string{"customerId", "userId"}, nil
	}
	return nil, ErrUnknownUserType
}

func completedAsOrder(c CompletedRequest) Order {
	return Order{
		ID:         c.ID,
		CustomerID: c.CustomerKey(),
		ProviderID: c.ProviderID,
		Service:    c.Service,
		Status:     "completed",
		CreatedAt:  c.CreatedAt,
	}
}
