package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/quangdng/devlink/internal/domain/profile"
)

// ProfileCache fronts the public profile listing. A miss returns (nil, nil).
type ProfileCache interface {
	GetList(ctx context.Context) ([]*profile.Profile, error)
	SetList(ctx context.Context, profiles []*profile.Profile) error
	Invalidate(ctx context.Context) error
}

// FeedCache is the newest-first list of recent post ids maintained by the
// event worker.
type FeedCache interface {
	PushPost(ctx context.Context, postID uuid.UUID) error
	RemovePost(ctx context.Context, postID uuid.UUID) error
	RecentPosts(ctx context.Context, limit int) ([]uuid.UUID, error)
}
