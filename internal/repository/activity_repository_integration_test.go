//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewActivityRepository(db)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	placed := &model.LogEntry{
		Kind:      model.KindAudit,
		Level:     "info",
		Message:   "order placed",
		Action:    "order.placed",
		UserID:    "665f1c2e8a4b2c0012345678",
		RequestID: "req-1",
		Timestamp: base,
		Details:   map[string]interface{}{"total": 42.5},
	}
	require.NoError(t, repo.Append(ctx, placed))
	assert.False(t, placed.ID.IsZero())

	require.NoError(t, repo.Append(ctx,
		&model.LogEntry{Kind: model.KindRequest, Level: "info", Method: "GET", Route: "/api/cart", Status: 200, RequestID: "req-2", Timestamp: base.Add(time.Minute)},
		&model.LogEntry{Kind: model.KindRequest, Level: "warn", Method: "POST", Route: "/api/orders", Status: 409, RequestID: "req-3", Timestamp: base.Add(2 * time.Minute)},
		&model.LogEntry{Kind: model.KindAudit, Level: "info", Action: "order.cancelled", UserID: placed.UserID, Timestamp: base.Add(3 * time.Minute)},
	))

	t.Run("appending nothing is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Append(ctx))
	})

	t.Run("newest first", func(t *testing.T) {
		entries, err := repo.Find(ctx, model.ActivityFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, "order.cancelled", entries[0].Action)
		assert.Equal(t, "order.placed", entries[3].Action)
		assert.Equal(t, 42.5, entries[3].Details["total"])
	})

	filters := []struct {
		name   string
		filter model.ActivityFilter
		want   int64
	}{
		{"by kind", model.ActivityFilter{Kind: model.KindRequest}, 2},
		{"by action", model.ActivityFilter{Action: "order.placed"}, 1},
		{"by user", model.ActivityFilter{UserID: placed.UserID}, 2},
		{"by request", model.ActivityFilter{RequestID: "req-3"}, 1},
		{"since", model.ActivityFilter{Since: timePtr(base.Add(2 * time.Minute))}, 2},
		{"window", model.ActivityFilter{Since: timePtr(base.Add(time.Minute)), Until: timePtr(base.Add(3 * time.Minute))}, 2},
		{"nothing", model.ActivityFilter{Action: "cart.cleared"}, 0},
	}
	for _, tt := range filters {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)

			entries, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, entries, int(tt.want))
		})
	}

	t.Run("paging", func(t *testing.T) {
		entries, err := repo.Find(ctx, model.ActivityFilter{Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "req-3", entries[0].RequestID)
		assert.Equal(t, "req-2", entries[1].RequestID)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
