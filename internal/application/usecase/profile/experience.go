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

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*profile.Profile, error) {

	ctx, span := tracer.Start(ctx, "AddExperience")
	defer span.End()

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		span.RecordError(err)
		return nil, err
	}

	p.AddExperience(profile.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

type RemoveExperienceInput struct {
	UserID       uuid.UUID
	ActorID      uuid.UUID
	ExperienceID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, input RemoveExperienceInput) (*profile.Profile, error) {

	ctx, span := tracer.Start(ctx, "RemoveExperience")
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

	if err := p.RemoveExperience(input.ExperienceID); err != nil {
		return nil, apperror.NewNotFound("experience", input.ExperienceID.String())
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}
