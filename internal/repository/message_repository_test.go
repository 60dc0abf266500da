package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

func TestMessageRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)
	ctx := context.Background()

	t.Run("create and list newest first", func(t *testing.T) {
		truncateAll(t, db)

		base := time.Now().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			_, err := repo.Create(ctx, &models.ForwardedMessage{
				Sender:    fmt.Sprintf("+100000000%d", i),
				Content:   fmt.Sprintf("body %d", i),
				Type:      models.MessageTypeSMS,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		page, err := repo.List(ctx, models.MessageFilter{Offset: 0, Limit: 3})
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, "body 4", page[0].Content)
		assert.Equal(t, "body 2", page[2].Content)

		rest, err := repo.List(ctx, models.MessageFilter{Offset: 3, Limit: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)

		total, err := repo.Count(ctx, models.MessageFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("filter by query and type", func(t *testing.T) {
		truncateAll(t, db)

		_, err := repo.Create(ctx, &models.ForwardedMessage{Sender: "Bank", Content: "Your code is 1234", Type: models.MessageTypeSMS})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &models.ForwardedMessage{Sender: "+15550001", Content: "Missed call", Type: models.MessageTypeCall})
		require.NoError(t, err)

		found, err := repo.List(ctx, models.MessageFilter{Query: "code", Limit: 10})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Bank", found[0].Sender)

		calls, err := repo.Count(ctx, models.MessageFilter{Type: models.MessageTypeCall})
		require.NoError(t, err)
		assert.Equal(t, int64(1), calls)

		sms, err := repo.CountByType(ctx, models.MessageTypeSMS)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sms)
	})

	t.Run("delete older than cutoff", func(t *testing.T) {
		truncateAll(t, db)

		_, err := repo.Create(ctx, &models.ForwardedMessage{Sender: "old", Content: "x", Type: models.MessageTypeSMS, CreatedAt: time.Now().Add(-time.Hour)})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &models.ForwardedMessage{Sender: "new", Content: "y", Type: models.MessageTypeSMS})
		require.NoError(t, err)

		deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		left, err := repo.List(ctx, models.MessageFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, "new", left[0].Sender)
	})
}

func TestLogRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewLogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.LogEntry{Level: "info", Source: "poller", Message: "old", CreatedAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.LogEntry{Level: "error", Source: "dispatcher", Message: "new", Fields: `{"k":"v"}`}))

	entries, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Message)
	assert.Equal(t, `{"k":"v"}`, entries[0].Fields)

	deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, repo.DeleteAll(ctx))
	entries, err = repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepository_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	assert.NoError(t, repo.Ping())
	assert.NotNil(t, repo.Message())
	assert.NotNil(t, repo.Log())
	assert.NotNil(t, repo.Contact())
}
