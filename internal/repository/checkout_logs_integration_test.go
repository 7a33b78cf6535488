//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyhorne/coload/internal/domain/model"
	"github.com/kyhorne/coload/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func setupRepo(t *testing.T) (*CheckoutLogsRepository, *MongoDB) {
	t.Helper()

	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	return NewCheckoutLogsRepository(db), db
}

// TestCheckoutLogsCreateAndQuery tests the audit round trip.
func TestCheckoutLogsCreateAndQuery(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	entries := []*model.CheckoutLogEntry{
		{Action: "checkout_session", Term: "Monthly", Total: 24, ItemCount: 2, SessionID: "cs_1", Status: "ok", RequestID: "req-1"},
		{Action: "checkout_session", Term: "Yearly", Total: 240, ItemCount: 2, Status: "failed", Error: "provider down", RequestID: "req-2"},
		{Action: "checkout_session", Term: "Monthly", Status: "invalid", RequestID: "req-3"},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero(), "Create must assign an id")
		assert.False(t, entry.Timestamp.IsZero(), "Create must assign a timestamp")
	}

	t.Run("query all", func(t *testing.T) {
		got, err := repo.Query(ctx, model.CheckoutLogQuery{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		got, err := repo.Query(ctx, model.CheckoutLogQuery{Status: "failed"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "provider down", got[0].Error)
		assert.Equal(t, "Yearly", got[0].Term)
	})

	t.Run("filter by request id", func(t *testing.T) {
		got, err := repo.Query(ctx, model.CheckoutLogQuery{RequestID: "req-1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "cs_1", got[0].SessionID)
	})

	t.Run("count by action", func(t *testing.T) {
		count, err := repo.Count(ctx, model.CheckoutLogQuery{Action: "checkout_session"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

// TestCheckoutLogsQueryPagination tests limit, skip, and sort order.
func TestCheckoutLogsQueryPagination(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &model.CheckoutLogEntry{
			Action:    "checkout_session",
			Status:    "ok",
			SessionID: string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.Query(ctx, model.CheckoutLogQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "e", got[0].SessionID)
	assert.Equal(t, "d", got[1].SessionID)

	got, err = repo.Query(ctx, model.CheckoutLogQuery{Limit: 2, Skip: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].SessionID)
}

// TestCheckoutLogsTimeFilter tests the timestamp range filter.
func TestCheckoutLogsTimeFilter(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	old := time.Now().Add(-2 * time.Hour)
	recent := time.Now().Add(-5 * time.Minute)
	require.NoError(t, repo.Create(ctx, &model.CheckoutLogEntry{Action: "checkout_session", Status: "ok", Timestamp: old}))
	require.NoError(t, repo.Create(ctx, &model.CheckoutLogEntry{Action: "checkout_session", Status: "ok", Timestamp: recent}))

	cutoff := time.Now().Add(-time.Hour)
	got, err := repo.Query(ctx, model.CheckoutLogQuery{StartTime: &cutoff})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	count, err := repo.Count(ctx, model.CheckoutLogQuery{EndTime: &cutoff})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestMongoDBHealthCheck tests connectivity reporting.
func TestMongoDBHealthCheck(t *testing.T) {
	_, db := setupRepo(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}
