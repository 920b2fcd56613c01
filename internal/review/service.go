package review

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/karigar-app/admin-api/internal/customer"
	"github.com/karigar-app/admin-api/internal/order"
	"github.com/karigar-app/admin-api/internal/provider"
)

// ErrUnknownAudience indicates an unsupported audience query value.
var ErrUnknownAudience = errors.New("audience must be customer or provider")

// Service derives reviews from the completed-request log. Names are
// resolved once per request from the account collections instead of per
// record.
type Service struct {
	orders    order.Repository
	customers customer.Repository
	providers provider.Repository
	logger    *slog.Logger
}

// NewService builds a review service.
func NewService(orders order.Repository, customers customer.Repository, providers provider.Repository, logger *slog.Logger) *Service {
	return &Service{orders: orders, customers: customers, providers: providers, logger: logger}
}

// List aggregates reviews for one audience. AudienceCustomer returns
// what customers said about providers, AudienceProvider the reverse.
func (s *Service) List(ctx context.Context, audience string) (Summary, error) {
	if audience == "" {
		audience = AudienceCustomer
	}
	if audience != AudienceCustomer && audience != AudienceProvider {
		return Summary{}, ErrUnknownAudience
	}

	completed, err := s.orders.ListCompleted(ctx)
	if err != nil {
		return Summary{}, err
	}

	customerNames, providerNames, err := s.nameMaps(ctx)
	if err != nil {
		return Summary{}, err
	}

	reviews := make([]Review, 0, len(completed))
	var sum float64
	var rated int
	for _, c := range completed {
		r, ok := buildReview(c, audience, customerNames, providerNames)
		if !ok {
			continue
		}
		reviews = append(reviews, r)
		if r.Rating > 0 {
			sum += r.Rating
			rated++
		}
	}

	summary := Summary{Reviews: reviews, Total: len(reviews)}
	if rated > 0 {
		summary.AverageRating = math.Round(sum/float64(rated)*100) / 100
	}
	return summary, nil
}

// Get loads the review attached to one completed request.
func (s *Service) Get(ctx context.Context, id, audience string) (Review, error) {
	if audience == "" {
		audience = AudienceCustomer
	}
	if audience != AudienceCustomer && audience != AudienceProvider {
		return Review{}, ErrUnknownAudience
	}

	c, err := s.orders.FindCompletedByID(ctx, id)
	if err != nil {
		return Review{}, err
	}

	customerNames, providerNames, err := s.nameMaps(ctx)
	if err != nil {
		return Review{}, err
	}

	r, ok := buildReview(c, audience, customerNames, providerNames)
	if !ok {
		return Review{}, order.ErrNotFound
	}
	return r, nil
}

func (s *Service) nameMaps(ctx context.Context) (map[string]string, map[string]string, error) {
	allCustomers, err := s.customers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	allProviders, err := s.providers.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	customerNames := make(map[string]string, len(allCustomers))
	for _, c := range allCustomers {
		customerNames[c.ID] = c.Name
		if c.UID != "" {
			customerNames[c.UID] = c.Name
		}
	}
	providerNames := make(map[string]string, len(allProviders))
	for _, p := range allProviders {
		providerNames[p.ID] = p.Name
		if p.UID != "" {
			providerNames[p.UID] = p.Name
		}
	}
	return customerNames, providerNames, nil
}

func buildReview(c order.CompletedRequest, audience string, customerNames, providerNames map[string]string) (Review, bool) {
	customerName := firstNonEmpty(c.UserName, c.CustomerName, customerNames[c.CustomerKey()], anonymousCustomer)
	providerName := firstNonEmpty(c.ProviderName, providerNames[c.ProviderID], c.Service, genericProvider)

	r := Review{
		ID:        c.ID,
		Audience:  audience,
		Service:   c.Service,
		RatedAt:   c.RatedAt,
		CreatedAt: c.CreatedAt,
	}
	switch audience {
	case AudienceCustomer:
		r.ReviewerID = c.CustomerKey()
		r.ReviewerName = customerName
		r.RecipientID = c.ProviderID
		r.RecipientName = providerName
		r.Rating = c.CustomerRating
		r.Comment = c.CustomerReview
	case AudienceProvider:
		r.ReviewerID = c.ProviderID
		r.ReviewerName = providerName
		r.RecipientID = c.CustomerKey()
		r.RecipientName = customerName
		r.Rating = c.ProviderRating
		r.Comment = c.ProviderReview
	}

	if r.Rating == 0 && r.Comment == "" {
		return Review{}, false
	}
	return r, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
