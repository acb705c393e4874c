package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/logger"
)

// Like and unlike are open to any authenticated user; they are deliberately
// not owner-gated, unlike post and comment deletion.
type LikePostUseCase struct {
	postRepo    post.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewLikePostUseCase(pRepo post.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *LikePostUseCase {
	return &LikePostUseCase{
		postRepo:    pRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type LikePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

type LikePostOutput struct {
	Likes []uuid.UUID
}

func (uc *LikePostUseCase) ExecuteLike(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {

	ctx, span := tracer.Start(ctx, "LikePost")
	defer span.End()

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	if err := p.AddLike(input.UserID); err != nil {
		return nil, apperror.NewConflict("like", "post already liked by this user")
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.publish(event.PostEventTypeLiked, p, input.UserID)
	return &LikePostOutput{Likes: p.Likes}, nil
}

func (uc *LikePostUseCase) ExecuteUnlike(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {

	ctx, span := tracer.Start(ctx, "UnlikePost")
	defer span.End()

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	if err := p.RemoveLike(input.UserID); err != nil {
		return nil, apperror.NewConflict("like", "post has not yet been liked by this user")
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.publish(event.PostEventTypeUnliked, p, input.UserID)
	return &LikePostOutput{Likes: p.Likes}, nil
}

func (uc *LikePostUseCase) publish(eventType event.PostEventType, p *post.Post, actorID uuid.UUID) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: eventType,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   actorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish like event", err, zap.String("post_id", p.ID.String()))
		}
	}()
}
