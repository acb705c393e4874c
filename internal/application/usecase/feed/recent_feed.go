package feed

import (
	"context"
	"errors"

	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/internal/domain/post"
)

type RecentFeedUseCase struct {
	feed     service.FeedCache
	postRepo post.Repository
}

func NewRecentFeedUseCase(feed service.FeedCache, pRepo post.Repository) *RecentFeedUseCase {
	return &RecentFeedUseCase{feed: feed, postRepo: pRepo}
}

type RecentFeedInput struct {
	Limit int
}

type RecentFeedOutput struct {
	Posts []*post.Post
}

// Execute resolves the worker-maintained id list into posts. Ids whose post
// was deleted after the feed entry was written are skipped, not errors.
func (uc *RecentFeedUseCase) Execute(ctx context.Context, input RecentFeedInput) (*RecentFeedOutput, error) {
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}

	ids, err := uc.feed.RecentPosts(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	posts := make([]*post.Post, 0, len(ids))
	for _, id := range ids {
		p, err := uc.postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, post.ErrPostNotFound) {
				continue
			}
			return nil, err
		}
		posts = append(posts, p)
	}
	return &RecentFeedOutput{Posts: posts}, nil
}
