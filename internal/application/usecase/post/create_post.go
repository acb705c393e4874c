package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/internal/domain/user"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/logger"
)

var tracer = otel.Tracer("post_usecase")

type CreatePostUseCase struct {
	postRepo    post.Repository
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:    pRepo,
		userRepo:    uRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreatePostInput struct {
	AuthorID uuid.UUID
	Text     string
}

type CreatePostOutput struct {
	Post *post.Post
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {

	ctx, span := tracer.Start(ctx, "CreatePost")
	defer span.End()

	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewInvalidInput("text is required", post.ErrEmptyText)
	}

	// Author name and avatar are snapshotted onto the post at creation time.
	author, err := uc.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.AuthorID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	newPost := &post.Post{
		ID:         uuid.New(),
		AuthorID:   input.AuthorID,
		Text:       input.Text,
		AuthorName: author.Name,
		AvatarURL:  author.AvatarURL,
		Likes:      []uuid.UUID{},
		Comments:   []post.Comment{},
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
				EventType: event.PostEventTypeCreated,
				PostID:    newPost.ID,
				AuthorID:  newPost.AuthorID,
				ActorID:   newPost.AuthorID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish post created event", err, zap.String("post_id", newPost.ID.String()))
			}
		}()
	}

	span.SetAttributes(attribute.String("post_id", newPost.ID.String()))
	return &CreatePostOutput{Post: newPost}, nil
}
