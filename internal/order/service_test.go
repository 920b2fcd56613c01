package order

import (
	"context"
	"testing"
	"time"

	"github.com/karigar-app/admin-api/internal/logging"
)

func TestUserOrdersMergesBothCollections(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, logging.Discard())
	now := time.Now()

	repo.SeedOrder(Order{ID: "o1", CustomerID: "cust-1", Status: "pending", CreatedAt: now.Add(-time.Hour)})
	repo.SeedCompleted(CompletedRequest{ID: "c1", UserID: "cust-1", Service: "Plumber", CreatedAt: now})
	repo.SeedOrder(Order{ID: "o2", CustomerID: "cust-2", CreatedAt: now})

	orders, err := svc.UserOrders(context.Background(), "cust-1", "customer")
	if err != nil {
		t.Fatalf("user orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 records, got %d", len(orders))
	}
	if orders[0].ID != "c1" || orders[1].ID != "o1" {
		t.Fatalf("expected newest first, got %s then %s", orders[0].ID, orders[1].ID)
	}
	if orders[0].Status != "completed" {
		t.Fatalf("completed record must surface as completed, got %q", orders[0].Status)
	}
}

func TestUserOrdersDeduplicatesCustomerFields(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, logging.Discard())

	// Same record reachable via both customerId and userId.
	repo.SeedCompleted(CompletedRequest{ID: "c1", UserID: "cust-1", CustomerID: "cust-1", CreatedAt: time.Now()})

	orders, err := svc.UserOrders(context.Background(), "cust-1", "customer")
	if err != nil {
		t.Fatalf("user orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected deduplicated single record, got %d", len(orders))
	}
}

func TestUserOrdersProviderMatchesProviderID(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, logging.Discard())

	repo.SeedOrder(Order{ID: "o1", ProviderID: "prov-1", CreatedAt: time.Now()})
	repo.SeedOrder(Order{ID: "o2", CustomerID: "prov-1", CreatedAt: time.Now()})

	orders, err := svc.UserOrders(context.Background(), "prov-1", "provider")
	if err != nil {
		t.Fatalf("user orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Fatalf("provider lookup must match providerId only, got %+v", orders)
	}
}

func TestUserOrdersRejectsUnknownType(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())

	if _, err := svc.UserOrders(context.Background(), "u1", "admin"); err != ErrUnknownUserType {
		t.Fatalf("expected ErrUnknownUserType, got %v", err)
	}
}

func TestAcceptanceLogsFilterAndOrder(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, logging.Discard())
	now := time.Now()

	repo.SeedCompleted(CompletedRequest{ID: "c1", AcceptedAt: now.Add(-time.Hour), CreatedAt: now.Add(-2 * time.Hour)})
	repo.SeedCompleted(CompletedRequest{ID: "c2", CreatedAt: now})
	repo.SeedCompleted(CompletedRequest{ID: "c3", AcceptedAt: now, CreatedAt: now.Add(-time.Hour)})

	logs, err := svc.AcceptanceLogs(context.Background())
	if err != nil {
		t.Fatalf("acceptance logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("records without acceptedAt must be skipped, got %d", len(logs))
	}
	if logs[0].ID != "c3" || logs[1].ID != "c1" {
		t.Fatalf("expected most recent acceptance first, got %s then %s", logs[0].ID, logs[1].ID)
	}
}

func TestLogByIDMissing(t *testing.T) {
	svc := NewService(NewMemoryRepository(), logging.Discard())

	if _, err := svc.LogByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
