package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/adapters/event"
	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/internal/domain/profile"
	"github.com/quangdng/devlink/internal/domain/user"
	"github.com/quangdng/devlink/pkg/logger"
)

var tracer = otel.Tracer("account_usecase")

type DeleteAccountUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	cache       service.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteAccountUseCase(
	pRepo profile.Repository,
	uRepo user.Repository,
	cache service.ProfileCache,
	kClient *event.KafkaProducerClient,
	log logger.Logger,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		cache:       cache,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeleteAccountInput struct {
	UserID uuid.UUID
}

// Execute removes the profile first, then the user. The two steps are not
// atomic: a failure between them leaves a user without a profile, which is
// recoverable (the user can recreate one), whereas the reverse order could
// leave a profile owned by a deleted user.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {

	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	if err := uc.profileRepo.Delete(ctx, input.UserID); err != nil {
		span.RecordError(err)
		return err
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Profile already gone and no user row: treat as done.
			return nil
		}
		uc.logger.Error("User delete failed after profile delete; account left without profile", err,
			zap.String("user_id", input.UserID.String()))
		span.RecordError(err)
		return err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Profile list cache invalidation failed", zap.Error(err))
	}

	// Kafka is optional in local setups; skip publishing when not wired.
	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishAccountEvent(context.Background(), event.AccountEventPayload{
				EventType: event.AccountEventTypeDeleted,
				UserID:    input.UserID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish account deleted event", err, zap.String("user_id", input.UserID.String()))
			}
		}()
	}

	return nil
}
