package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/internal/domain/user"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/authz"
	"github.com/quangdng/devlink/pkg/logger"
)

type CommentPostUseCase struct {
	postRepo    post.Repository
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCommentPostUseCase(pRepo post.Repository, uRepo user.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *CommentPostUseCase {
	return &CommentPostUseCase{
		postRepo:    pRepo,
		userRepo:    uRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type AddCommentInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

type CommentsOutput struct {
	Comments []post.Comment
}

func (uc *CommentPostUseCase) ExecuteAdd(ctx context.Context, input AddCommentInput) (*CommentsOutput, error) {

	ctx, span := tracer.Start(ctx, "AddComment")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewInvalidInput("text is required", post.ErrEmptyText)
	}

	author, err := uc.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.AuthorID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	p.AddComment(post.Comment{
		ID:         uuid.New(),
		AuthorID:   input.AuthorID,
		Text:       input.Text,
		AuthorName: author.Name,
		AvatarURL:  author.AvatarURL,
		CreatedAt:  time.Now().UTC(),
	})

	if err := uc.postRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.publish(p, input.AuthorID)
	return &CommentsOutput{Comments: p.Comments}, nil
}

type RemoveCommentInput struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
	ActorID   uuid.UUID
}

// ExecuteRemove is gated on the comment's author, not the post's: commenters
// may delete their own comments from anyone's post.
func (uc *CommentPostUseCase) ExecuteRemove(ctx context.Context, input RemoveCommentInput) (*CommentsOutput, error) {

	ctx, span := tracer.Start(ctx, "RemoveComment")
	defer span.End()

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	c, ok := p.FindComment(input.CommentID)
	if !ok {
		return nil, apperror.NewNotFound("comment", input.CommentID.String())
	}

	if err := authz.Require("comment", func(c *post.Comment) uuid.UUID { return c.AuthorID }, c, input.ActorID); err != nil {
		return nil, err
	}

	if err := p.RemoveComment(input.CommentID); err != nil {
		return nil, apperror.NewNotFound("comment", input.CommentID.String())
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &CommentsOutput{Comments: p.Comments}, nil
}

func (uc *CommentPostUseCase) publish(p *post.Post, actorID uuid.UUID) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeCommented,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   actorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish comment event", err, zap.String("post_id", p.ID.String()))
		}
	}()
}
