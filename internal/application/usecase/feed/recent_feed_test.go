package feed

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/pkg/logger"
)

type fakePostRepo struct {
	posts map[uuid.UUID]*post.Post
}

func (r *fakePostRepo) Save(_ context.Context, p *post.Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, p *post.Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (r *fakePostRepo) List(context.Context, int, int) ([]*post.Post, error) { return nil, nil }

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func TestRecentFeed(t *testing.T) {
	cache := &fakeFeedCache{}
	repo := &fakePostRepo{posts: make(map[uuid.UUID]*post.Post)}
	process := NewProcessPostEventUseCase(cache, logger.NewNop())
	recent := NewRecentFeedUseCase(cache, repo)
	ctx := context.Background()

	first := &post.Post{ID: uuid.New(), Text: "first", CreatedAt: time.Now().UTC()}
	second := &post.Post{ID: uuid.New(), Text: "second", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, process.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeCreated, PostID: first.ID}))
	require.NoError(t, process.Execute(ctx, event.PostEventPayload{EventType: event.PostEventTypeCreated, PostID: second.ID}))

	out, err := recent.Execute(ctx, RecentFeedInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, out.Posts, 2)
	assert.Equal(t, "second", out.Posts[0].Text)
	assert.Equal(t, "first", out.Posts[1].Text)
}

func TestRecentFeed_SkipsDeletedPosts(t *testing.T) {
	cache := &fakeFeedCache{}
	repo := &fakePostRepo{posts: make(map[uuid.UUID]*post.Post)}
	recent := NewRecentFeedUseCase(cache, repo)
	ctx := context.Background()

	kept := &post.Post{ID: uuid.New(), Text: "kept"}
	require.NoError(t, repo.Save(ctx, kept))
	require.NoError(t, cache.PushPost(ctx, kept.ID))
	// A stale feed entry whose post no longer exists.
	require.NoError(t, cache.PushPost(ctx, uuid.New()))

	out, err := recent.Execute(ctx, RecentFeedInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, out.Posts, 1)
	assert.Equal(t, "kept", out.Posts[0].Text)
}

func TestRecentFeed_ClampsLimit(t *testing.T) {
	cache := &fakeFeedCache{}
	repo := &fakePostRepo{posts: make(map[uuid.UUID]*post.Post)}
	recent := NewRecentFeedUseCase(cache, repo)

	out, err := recent.Execute(context.Background(), RecentFeedInput{Limit: -5})
	require.NoError(t, err)
	assert.Empty(t, out.Posts)
}
