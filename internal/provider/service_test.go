package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karigar-app/admin-api/internal/classify"
	"github.com/karigar-app/admin-api/internal/logging"
)

func newService(repo Repository) *Service {
	return NewService(repo, classify.Default(), nil, logging.Discard())
}

func TestApproveSetsStatusAndReviewedAt(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	id := repo.Seed(Provider{UID: "p1", Name: "Imran", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})

	if err := svc.SetStatus(ctx, id, StatusAccepted, ""); err != nil {
		t.Fatalf("set status: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AccountStatus != StatusAccepted {
		t.Fatalf("status = %q, want accepted", got.AccountStatus)
	}
	if got.ReviewedAt.IsZero() {
		t.Fatal("expected reviewedAt to be set")
	}
	if got.Reason != "" {
		t.Fatalf("approval must not carry a reason, got %q", got.Reason)
	}
}

func TestRejectRecordsReason(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	id := repo.Seed(Provider{UID: "p2", Name: "Faisal", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})

	if err := svc.SetStatus(ctx, id, StatusRejected, "Invalid ID document"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	got, _ := svc.Get(ctx, id)
	if got.AccountStatus != StatusRejected {
		t.Fatalf("status = %q, want rejected", got.AccountStatus)
	}
	if got.Reason != "Invalid ID document" {
		t.Fatalf("reason = %q", got.Reason)
	}
	if got.ReviewedAt.IsZero() {
		t.Fatal("expected reviewedAt to be set")
	}
}

func TestApproveAfterRejectClearsReason(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	id := repo.Seed(Provider{UID: "p3", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})

	if err := svc.SetStatus(ctx, id, StatusRejected, "blurred document"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if err := svc.SetStatus(ctx, id, StatusAccepted, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, _ := svc.Get(ctx, id)
	if got.AccountStatus != StatusAccepted {
		t.Fatalf("status = %q", got.AccountStatus)
	}
	if got.Reason != "" {
		t.Fatalf("reason should be cleared on approval, got %q", got.Reason)
	}
}

func TestRepeatTransitionOverwritesReviewedAt(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	id := repo.Seed(Provider{UID: "p4", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})

	if err := svc.SetStatus(ctx, id, StatusAccepted, ""); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	first, _ := svc.Get(ctx, id)

	time.Sleep(5 * time.Millisecond)

	if err := svc.SetStatus(ctx, id, StatusAccepted, ""); err != nil {
		t.Fatalf("second approve: %v", err)
	}
	second, _ := svc.Get(ctx, id)

	if second.AccountStatus != StatusAccepted {
		t.Fatalf("status = %q", second.AccountStatus)
	}
	if !second.ReviewedAt.After(first.ReviewedAt) {
		t.Fatalf("reviewedAt must advance on repeat: %v vs %v", first.ReviewedAt, second.ReviewedAt)
	}
}

func TestSetStatusRejectsInvalidTarget(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)

	id := repo.Seed(Provider{UID: "p5", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})

	if err := svc.SetStatus(context.Background(), id, StatusPending, ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSetStatusPropagatesStoreError(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)

	id := repo.Seed(Provider{UID: "p6", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})
	storeErr := errors.New("write unavailable")
	repo.FailUpdate[id] = storeErr

	if err := svc.SetStatus(context.Background(), id, StatusAccepted, ""); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestBulkApproveAllSucceed(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	ids := []string{
		repo.Seed(Provider{UID: "b1", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()}),
		repo.Seed(Provider{UID: "b2", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()}),
		repo.Seed(Provider{UID: "b3", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()}),
	}

	if err := svc.BulkSetStatus(ctx, ids, StatusAccepted, ""); err != nil {
		t.Fatalf("bulk approve: %v", err)
	}

	for _, id := range ids {
		got, _ := svc.Get(ctx, id)
		if got.AccountStatus != StatusAccepted {
			t.Fatalf("provider %s not accepted: %q", id, got.AccountStatus)
		}
	}
}

func TestBulkApproveOneFailureCollapsesBatch(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	okID := repo.Seed(Provider{UID: "p7", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})
	badID := repo.Seed(Provider{UID: "p8", AccountStatus: StatusPending, CreatedAt: time.Now().UTC()})
	repo.FailUpdate[badID] = errors.New("write failed")

	err := svc.BulkSetStatus(ctx, []string{okID, badID}, StatusAccepted, "")
	if err == nil {
		t.Fatal("expected batch failure")
	}

	// The surviving record may or may not have committed before the batch
	// collapsed; only its status domain is guaranteed.
	got, _ := svc.Get(ctx, okID)
	if got.AccountStatus != StatusAccepted && got.AccountStatus != StatusPending {
		t.Fatalf("unexpected status %q", got.AccountStatus)
	}

	bad, _ := svc.Get(ctx, badID)
	if bad.AccountStatus != StatusPending {
		t.Fatalf("failed write must not transition, got %q", bad.AccountStatus)
	}
}

func TestBulkRejectEmptySelection(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)

	if err := svc.BulkSetStatus(context.Background(), nil, StatusRejected, "dup"); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestListDerivesServiceType(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	now := time.Now().UTC()
	repo.Seed(Provider{UID: "s1", ServiceCategory: "Electrician", AccountStatus: StatusPending, CreatedAt: now})
	repo.Seed(Provider{UID: "s2", ServiceCategory: "Sweeper", AccountStatus: StatusPending, CreatedAt: now})
	repo.Seed(Provider{UID: "s3", ServiceCategory: "Juggler", AccountStatus: StatusPending, CreatedAt: now})

	providers, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	types := map[string]string{}
	for _, p := range providers {
		types[p.UID] = p.ServiceType
	}
	if types["s1"] != classify.TypeSkilled || types["s2"] != classify.TypeUnskilled || types["s3"] != classify.TypeOther {
		t.Fatalf("unexpected classification: %+v", types)
	}
}

func TestStatusCounts(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	now := time.Now().UTC()
	repo.Seed(Provider{UID: "c1", AccountStatus: StatusPending, CreatedAt: now})
	repo.Seed(Provider{UID: "c2", CreatedAt: now}) // missing status counts as pending
	repo.Seed(Provider{UID: "c3", AccountStatus: StatusAccepted, CreatedAt: now})
	repo.Seed(Provider{UID: "c4", AccountStatus: StatusRejected, CreatedAt: now})

	counts, err := svc.StatusCounts(ctx)
	if err != nil {
		t.Fatalf("status counts: %v", err)
	}
	want := StatusCounts{Total: 4, Pending: 2, Accepted: 1, Rejected: 1}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestCreateStartsPending(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newService(repo)

	p, err := svc.Create(context.Background(), CreateInput{UID: "n1", Name: "Zubair", ServiceCategory: "Plumber", City: "Lahore"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.AccountStatus != StatusPending {
		t.Fatalf("new providers must be pending, got %q", p.AccountStatus)
	}
	if p.ServiceType != classify.TypeSkilled {
		t.Fatalf("expected derived skilled type, got %q", p.ServiceType)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
}
