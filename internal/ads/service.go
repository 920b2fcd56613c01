package ads

import (
	"context"
	"math"
	"sort"
	"time"
)

// Service exposes ad campaign management.
type Service struct {
	repo Repository
}

// NewService creates an ads service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all ads, newest first.
func (s *Service) List(ctx context.Context) ([]Ad, error) {
	adsList, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(adsList, func(i, j int) bool {
		return adsList[i].CreatedAt.After(adsList[j].CreatedAt)
	})
	return adsList, nil
}

// Create stores a new ad with banner defaults applied.
func (s *Service) Create(ctx context.Context, input Input) (Ad, error) {
	now := time.Now().UTC()
	ad := Ad{
		Title:       input.Title,
		Description: input.Description,
		Details:     input.Details,
		Link:        input.Link,
		BgColor:     input.BgColor,
		TextColor:   input.TextColor,
		IsActive:    input.IsActive == nil || *input.IsActive,
		Position:    input.Position,
		Width:       bannerWidth,
		Height:      bannerHeight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ad.BgColor == "" {
		ad.BgColor = defaultBgColor
	}
	if ad.TextColor == "" {
		ad.TextColor = defaultTextColor
	}
	if ad.Position == "" {
		ad.Position = defaultPosition
	}

	id, err := s.repo.Insert(ctx, ad)
	if err != nil {
		return Ad{}, err
	}
	ad.ID = id
	return ad, nil
}

// Update applies the editable fields and stamps updatedAt.
func (s *Service) Update(ctx context.Context, id string, input Input) error {
	fields := map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"details":     input.Details,
		"link":        input.Link,
		"bgColor":     input.BgColor,
		"textColor":   input.TextColor,
		"position":    input.Position,
		"updatedAt":   time.Now().UTC(),
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes the ad.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// TrackClick bumps the ad's click counter.
func (s *Service) TrackClick(ctx context.Context, id string) error {
	return s.repo.IncrementCounter(ctx, id, "clicks")
}

// TrackImpression bumps the ad's impression counter.
func (s *Service) TrackImpression(ctx context.Context, id string) error {
	return s.repo.IncrementCounter(ctx, id, "impressions")
}

// Stats aggregates campaign totals and the click-through rate.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	adsList, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(adsList)}
	for _, ad := range adsList {
		if ad.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.TotalClicks += ad.Clicks
		stats.TotalImpressions += ad.Impressions
	}
	if stats.TotalImpressions > 0 {
		ctr := float64(stats.TotalClicks) / float64(stats.TotalImpressions) * 100
		stats.CTR = math.Round(ctr*100) / 100
	}
	return stats, nil
}
