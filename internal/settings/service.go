package settings

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

// Errors returned by city list edits.
var (
	ErrEmptyCity     = errors.New("city name is required")
	ErrDuplicateCity = errors.New("city already exists")
	ErrCityNotFound  = errors.New("city not found")
)

// Service manages the supported-city list.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService builds a settings service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Cities returns the supported cities, alphabetically.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(cities)
	return cities, nil
}

// AddCity appends a city. Matching is case-insensitive so "lahore" and
// "Lahore" cannot coexist.
func (s *Service) AddCity(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCity
	}

	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cities {
		if strings.EqualFold(c, name) {
			return nil, ErrDuplicateCity
		}
	}

	cities = append(cities, name)
	sort.Strings(cities)
	if err := s.repo.SaveCities(ctx, cities); err != nil {
		return nil, err
	}
	s.logger.Info("city added", "city", name)
	return cities, nil
}

// DeleteCity removes a city, case-insensitively.
func (s *Service) DeleteCity(ctx context.Context, name string) ([]string, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(cities))
	found := false
	for _, c := range cities {
		if strings.EqualFold(c, name) {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil, ErrCityNotFound
	}

	sort.Strings(kept)
	if err := s.repo.SaveCities(ctx, kept); err != nil {
		return nil, err
	}
	s.logger.Info("city removed", "city", name)
	return kept, nil
}
