package cache

import (
	"context"
	"testing"

	"travelagency/internal/domain/models"
)

func TestTripCacheDisabledAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewTripCache(nil, 0)

	if err := c.Set(ctx, models.Trip{ID: 1, Title: "Omra"}); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, ok, err := c.Get(ctx, 1); ok || err != nil {
		t.Fatalf("expected miss without error, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("Invalidate error: %v", err)
	}

	var nilCache *TripCache
	if _, ok, _ := nilCache.Get(ctx, 1); ok {
		t.Fatalf("nil cache should miss")
	}
}

func TestTripKey(t *testing.T) {
	if got := tripKey(42); got != "trip:42" {
		t.Fatalf("tripKey = %q", got)
	}
}
