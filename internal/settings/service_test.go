package settings

import (
	"context"
	"testing"

	"github.com/karigar-app/admin-api/internal/logging"
)

func TestAddCitySortsAndPersists(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())
	ctx := context.Background()

	if _, err := svc.AddCity(ctx, "Lahore"); err != nil {
		t.Fatalf("add: %v", err)
	}
	cities, err := svc.AddCity(ctx, "Karachi")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cities) != 2 || cities[0] != "Karachi" || cities[1] != "Lahore" {
		t.Fatalf("expected sorted list, got %v", cities)
	}
}

func TestAddCityRejectsDuplicates(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())
	ctx := context.Background()

	if _, err := svc.AddCity(ctx, "Lahore"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddCity(ctx, "lahore"); err != ErrDuplicateCity {
		t.Fatalf("expected ErrDuplicateCity, got %v", err)
	}
}

func TestAddCityRejectsBlank(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())

	if _, err := svc.AddCity(context.Background(), "   "); err != ErrEmptyCity {
		t.Fatalf("expected ErrEmptyCity, got %v", err)
	}
}

func TestDeleteCity(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())
	ctx := context.Background()

	if _, err := svc.AddCity(ctx, "Multan"); err != nil {
		t.Fatalf("add: %v", err)
	}
	cities, err := svc.DeleteCity(ctx, "multan")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(cities) != 0 {
		t.Fatalf("expected empty list, got %v", cities)
	}

	if _, err := svc.DeleteCity(ctx, "Multan"); err != ErrCityNotFound {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}
