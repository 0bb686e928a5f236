//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_Integration(t *testing.T) {
	ctx := context.Background()

	uri := testutil.StartMongo(t)

	db, err := repository.NewMongoDB(uri, "test_storefront_activity")
	require.NoError(t, err)
	defer func() {
		_ = db.Close(ctx)
	}()
	require.NoError(t, db.SetActivityRetention(ctx, 24*time.Hour))

	repo := repository.NewActivityRepositoryWithCircuitBreaker(
		repository.NewActivityRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	activity := NewActivityService(repo)

	for i := 0; i < 3; i++ {
		require.NoError(t, activity.Record(ctx, &model.LogEntry{
			Kind:    model.KindAudit,
			Level:   "info",
			Action:  "cart.item_added",
			CartID:  "guest-1",
			Message: "item added",
		}))
	}
	require.NoError(t, activity.Record(ctx,
		&model.LogEntry{Kind: model.KindRequest, Level: "info", Method: "GET", Route: "/api/products", Status: 200},
		&model.LogEntry{Kind: model.KindAudit, Level: "info", Action: "order.placed", UserID: "u-1"},
	))

	page, err := activity.Activity(ctx, model.ActivityFilter{Kind: model.KindAudit, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Entries, 2)
	for _, entry := range page.Entries {
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	}

	page, err = activity.Activity(ctx, model.ActivityFilter{UserID: "u-1"})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "order.placed", page.Entries[0].Action)
}
