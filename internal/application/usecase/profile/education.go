package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quangdng/devlink/internal/domain/profile"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/authz"
)

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*profile.Profile, error) {

	ctx, span := tracer.Start(ctx, "AddEducation")
	defer span.End()

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	p.AddEducation(profile.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

type RemoveEducationInput struct {
	UserID      uuid.UUID
	ActorID     uuid.UUID
	EducationID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, input RemoveEducationInput) (*profile.Profile, error) {

	ctx, span := tracer.Start(ctx, "RemoveEducation")
	defer span.End()

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	if err := authz.RequireOwner("profile", p.UserID, input.ActorID); err != nil {
		return nil, err
	}

	if err := p.RemoveEducation(input.EducationID); err != nil {
		return nil, apperror.NewNotFound("education", input.EducationID.String())
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}
