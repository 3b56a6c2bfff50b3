//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centreg/internal/management/models"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/testutil/containers"
)

func TestRedisDecisionCache(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	cache := NewRedisDecisionCache(rc.Client, time.Minute)
	ctx := context.Background()

	t.Run("terminal decision round trips", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		id := uuid.New()

		require.NoError(t, cache.PutDecision(ctx, id, models.StatusApproved))

		got, err := cache.GetDecision(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got)
	})

	t.Run("non-terminal status is not cached", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		id := uuid.New()

		require.NoError(t, cache.PutDecision(ctx, id, models.StatusWaiting))

		_, err := cache.GetDecision(ctx, id)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("miss reports not found", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		_, err := cache.GetDecision(ctx, uuid.New())
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("entries expire with the ttl", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		short := NewRedisDecisionCache(rc.Client, 50*time.Millisecond)
		id := uuid.New()

		require.NoError(t, short.PutDecision(ctx, id, models.StatusDeclined))
		time.Sleep(100 * time.Millisecond)

		_, err := short.GetDecision(ctx, id)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
