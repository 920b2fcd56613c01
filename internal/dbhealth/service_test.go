package dbhealth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karigar-app/admin-api/internal/logging"
)

type fakeStore struct {
	pingErr   error
	counts    map[string]int64
	countErrs map[string]error
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) Count(ctx context.Context, collection string) (int64, error) {
	if err := f.countErrs[collection]; err != nil {
		return 0, err
	}
	return f.counts[collection], nil
}

type fakeCache struct {
	pingErr error
}

func (f *fakeCache) Ping(ctx context.Context) error { return f.pingErr }

func TestCheckHealthy(t *testing.T) {
	store := &fakeStore{counts: map[string]int64{"Customers": 5, "ServiceProviders": 3}}
	svc := NewService(store, &fakeCache{}, []string{"Customers", "ServiceProviders"}, logging.Discard())

	report := svc.Check(context.Background())
	if report.Status != StatusHealthy {
		t.Fatalf("status = %s, want healthy", report.Status)
	}
	if !report.Mongo.Connected || !report.Redis.Connected {
		t.Fatalf("both backends must report connected: %+v", report)
	}
	if len(report.Collections) != 2 || report.Collections[0].Count != 5 {
		t.Fatalf("unexpected collection states: %+v", report.Collections)
	}
}

func TestCheckOfflineWhenStoreUnreachable(t *testing.T) {
	store := &fakeStore{pingErr: errors.New("connection refused")}
	svc := NewService(store, &fakeCache{}, []string{"Customers"}, logging.Discard())

	report := svc.Check(context.Background())
	if report.Status != StatusOffline {
		t.Fatalf("status = %s, want offline", report.Status)
	}
	if len(report.Collections) != 0 {
		t.Fatal("collection probes must be skipped when the store is offline")
	}
}

func TestCheckDegradedWhenCacheDown(t *testing.T) {
	store := &fakeStore{counts: map[string]int64{"Customers": 1}}
	svc := NewService(store, &fakeCache{pingErr: errors.New("refused")}, []string{"Customers"}, logging.Discard())

	report := svc.Check(context.Background())
	if report.Status != StatusDegraded {
		t.Fatalf("status = %s, want degraded", report.Status)
	}
}

func TestCheckDegradedOnCollectionError(t *testing.T) {
	store := &fakeStore{
		counts:    map[string]int64{"Customers": 1},
		countErrs: map[string]error{"orders": errors.New("index build in progress")},
	}
	svc := NewService(store, &fakeCache{}, []string{"Customers", "orders"}, logging.Discard())

	report := svc.Check(context.Background())
	if report.Status != StatusDegraded {
		t.Fatalf("status = %s, want degraded", report.Status)
	}
	if report.Collections[1].Error == "" {
		t.Fatal("failing collection must carry its error")
	}
}

func TestCheckErrorWhenAllCollectionsFail(t *testing.T) {
	store := &fakeStore{
		countErrs: map[string]error{
			"Customers": errors.New("boom"),
			"orders":    errors.New("boom"),
		},
	}
	svc := NewService(store, &fakeCache{}, []string{"Customers", "orders"}, logging.Discard())

	report := svc.Check(context.Background())
	if report.Status != StatusError {
		t.Fatalf("status = %s, want error", report.Status)
	}
}

func TestCheckSlowCollectionDegrades(t *testing.T) {
	store := &fakeStore{counts: map[string]int64{"Customers": 1}}
	svc := NewService(store, &fakeCache{}, []string{"Customers"}, logging.Discard())

	// Each now() call advances well past the probe budget.
	base := time.Now()
	var calls int
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * ProbeLatencyBudget * 2)
	}

	report := svc.Check(context.Background())
	if report.Status != StatusDegraded {
		t.Fatalf("status = %s, want degraded", report.Status)
	}
	if !report.Collections[0].Slow {
		t.Fatalf("collection must be flagged slow: %+v", report.Collections[0])
	}
}
