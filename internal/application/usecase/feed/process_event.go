package feed

import (
	"context"

	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/pkg/logger"
)

// ProcessPostEventUseCase keeps the recent-posts feed in sync with the post
// event stream. It runs inside the worker, not the API process.
type ProcessPostEventUseCase struct {
	feed   service.FeedCache
	logger logger.Logger
}

func NewProcessPostEventUseCase(feed service.FeedCache, log logger.Logger) *ProcessPostEventUseCase {
	return &ProcessPostEventUseCase{feed: feed, logger: log}
}

func (uc *ProcessPostEventUseCase) Execute(ctx context.Context, payload event.PostEventPayload) error {
	switch payload.EventType {
	case event.PostEventTypeCreated:
		if err := uc.feed.PushPost(ctx, payload.PostID); err != nil {
			return err
		}
	case event.PostEventTypeDeleted:
		if err := uc.feed.RemovePost(ctx, payload.PostID); err != nil {
			return err
		}
	default:
		// Like/unlike/comment events don't change feed membership.
		uc.logger.Debug("Ignoring post event", zap.String("event_type", string(payload.EventType)))
	}
	return nil
}
