package customer

import (
	"context"
	"testing"
	"time"
)

func TestListAppliesDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	before := time.Now().UTC()
	repo.Seed(Customer{UID: "uid-1"})

	customers, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}

	got := customers[0]
	if got.Name != "N/A" || got.Email != "N/A" || got.Phone != "N/A" || got.City != "N/A" {
		t.Fatalf("expected placeholder defaults, got %+v", got)
	}
	if got.Role != "customer" {
		t.Fatalf("expected default role, got %q", got.Role)
	}
	if got.CreatedAt.Before(before) {
		t.Fatalf("missing createdAt should fall back to query time, got %v", got.CreatedAt)
	}
}

func TestUpdateReflectsOnRead(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	id := repo.Seed(Customer{UID: "uid-2", Name: "Asad", City: "Lahore", CreatedAt: time.Now().UTC()})

	city := "Karachi"
	if err := svc.Update(ctx, id, UpdateInput{City: &city}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.City != "Karachi" {
		t.Fatalf("expected updated city, got %q", got.City)
	}
	if got.Name != "Asad" {
		t.Fatalf("unrelated field changed: %q", got.Name)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("expected updatedAt to be stamped")
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	now := time.Now().UTC()
	repo.Seed(Customer{UID: "u1", Name: "Bilal Ahmed", Email: "bilal@example.com", Phone: "+923001234567", City: "Multan", CreatedAt: now})
	repo.Seed(Customer{UID: "u2", Name: "Sana Khan", Email: "sana@example.com", Phone: "+923009999999", City: "Lahore", CreatedAt: now})

	byName, err := svc.Search(ctx, "bilal")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 1 || byName[0].UID != "u1" {
		t.Fatalf("expected bilal only, got %+v", byName)
	}

	byCity, err := svc.Search(ctx, "lahore")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byCity) != 1 || byCity[0].UID != "u2" {
		t.Fatalf("expected sana only, got %+v", byCity)
	}

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all customers, got %d", len(all))
	}
}

func TestDeleteMissingCustomer(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
