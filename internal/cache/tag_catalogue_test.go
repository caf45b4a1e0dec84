package cache

import (
	"context"
	"testing"
	"time"

	model "time-management.com/time-management/internal/models"
)

func TestNilClientIsPassThrough(t *testing.T) {
	c := NewTagCatalogue(nil, time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Error("nil client must always miss")
	}

	// Writes and invalidation must be safe no-ops.
	c.Set(ctx, []model.Tag{{ID: 1, Name: "Bug", Color: "#e74c3c"}})
	c.Invalidate(ctx)

	if _, ok := c.Get(ctx); ok {
		t.Error("nil client must still miss after set")
	}
}
