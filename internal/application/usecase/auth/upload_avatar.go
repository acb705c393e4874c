package auth

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/internal/domain/user"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/logger"
)

type UploadAvatarUseCase struct {
	userRepo user.Repository
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAvatarUseCase(repo user.Repository, uploader service.Uploader, log logger.Logger) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		userRepo: repo,
		uploader: uploader,
		logger:   log,
	}
}

type UploadAvatarInput struct {
	UserID uuid.UUID
	File   io.Reader
}

type UploadAvatarOutput struct {
	AvatarURL string
}

func (uc *UploadAvatarUseCase) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {

	ctx, span := tracer.Start(ctx, "UploadAvatar")
	defer span.End()

	// The uploader is optional in local setups, like the event producer.
	if uc.uploader == nil {
		return nil, apperror.NewInternal("avatar storage is not configured", nil)
	}

	folder := fmt.Sprintf("users/%s/avatar", input.UserID.String())
	url, err := uc.uploader.Upload(ctx, input.File, folder, input.UserID.String())
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	if err := uc.userRepo.UpdateAvatar(ctx, input.UserID, url); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.UserID.String())
		}
		return nil, err
	}

	return &UploadAvatarOutput{AvatarURL: url}, nil
}
