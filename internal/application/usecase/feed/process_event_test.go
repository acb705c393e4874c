package feed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/pkg/logger"
)

type fakeFeedCache struct {
	ids []uuid.UUID
}

func (c *fakeFeedCache) PushPost(_ context.Context, postID uuid.UUID) error {
	c.ids = append([]uuid.UUID{postID}, c.ids...)
	return nil
}

func (c *fakeFeedCache) RemovePost(_ context.Context, postID uuid.UUID) error {
	for i, id := range c.ids {
		if id == postID {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (c *fakeFeedCache) RecentPosts(_ context.Context, limit int) ([]uuid.UUID, error) {
	if limit > len(c.ids) {
		limit = len(c.ids)
	}
	return c.ids[:limit], nil
}

func TestProcessPostEvent(t *testing.T) {
	cache := &fakeFeedCache{}
	uc := NewProcessPostEventUseCase(cache, logger.NewNop())
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()

	require.NoError(t, uc.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeCreated, PostID: first}))
	require.NoError(t, uc.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeCreated, PostID: second}))

	recent, err := cache.RecentPosts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second, first}, recent)

	// Engagement events leave the feed alone.
	require.NoError(t, uc.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeLiked, PostID: first}))
	recent, _ = cache.RecentPosts(ctx, 10)
	assert.Len(t, recent, 2)

	require.NoError(t, uc.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeDeleted, PostID: first}))
	recent, _ = cache.RecentPosts(ctx, 10)
	assert.Equal(t, []uuid.UUID{second}, recent)
}
