package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/authz"
	"github.com/quangdng/devlink/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo    post.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeletePostUseCase(pRepo post.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:    pRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeletePostInput struct {
	PostID  uuid.UUID
	ActorID uuid.UUID
}

// Execute is owner-gated: only the post author may delete it.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {

	ctx, span := tracer.Start(ctx, "DeletePost")
	defer span.End()

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return err
	}

	if err := authz.Require("post", func(p *post.Post) uuid.UUID { return p.AuthorID }, p, input.ActorID); err != nil {
		return err
	}

	if err := uc.postRepo.Delete(ctx, input.PostID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return err
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
				EventType: event.PostEventTypeDeleted,
				PostID:    input.PostID,
				AuthorID:  p.AuthorID,
				ActorID:   input.ActorID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish post deleted event", err, zap.String("post_id", input.PostID.String()))
			}
		}()
	}

	return nil
}
