package ads

import (
	"context"
	"testing"
)

func TestCreateAppliesBannerDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ad, err := svc.Create(context.Background(), Input{Title: "Winter discount"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ad.BgColor != "#3B82F6" || ad.TextColor != "#FFFFFF" {
		t.Fatalf("expected default colors, got %s/%s", ad.BgColor, ad.TextColor)
	}
	if ad.Position != "mobile" {
		t.Fatalf("expected mobile position, got %q", ad.Position)
	}
	if ad.Width != 40 || ad.Height != 20 {
		t.Fatalf("banner dimensions are fixed, got %dx%d", ad.Width, ad.Height)
	}
	if !ad.IsActive {
		t.Fatal("new ads default to active")
	}
}

func TestTrackCountersAndStats(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, Input{Title: "Ad one"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive := false
	if _, err := svc.Create(ctx, Input{Title: "Ad two", IsActive: &inactive}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.TrackImpression(ctx, first.ID); err != nil {
			t.Fatalf("impression: %v", err)
		}
	}
	// 3 impressions, 1 click on the same banner.
	if err := svc.TrackClick(ctx, first.ID); err != nil {
		t.Fatalf("click: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.Active != 1 || stats.Inactive != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.TotalClicks != 1 || stats.TotalImpressions != 3 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.CTR != 33.33 {
		t.Fatalf("ctr = %v, want 33.33", stats.CTR)
	}
}

func TestStatsNoImpressions(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.CTR != 0 {
		t.Fatalf("ctr without impressions must be 0, got %v", stats.CTR)
	}
}

func TestTrackClickMissingAd(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	if err := svc.TrackClick(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
