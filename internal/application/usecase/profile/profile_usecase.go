package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/internal/domain/profile"
	"github.com/quangdng/devlink/pkg/apperror"
	"github.com/quangdng/devlink/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       service.ProfileCache
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache service.ProfileCache, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		cache:       cache,
		logger:      log,
	}
}

// UpsertProfileInput carries a partial update: nil pointers leave the stored
// field untouched, a present empty string clears it, and repeating the same
// input is idempotent.
type UpsertProfileInput struct {
	UserID         uuid.UUID
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	LinkedIn       *string
	Instagram      *string
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpsert(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {

	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			span.RecordError(err)
			return nil, err
		}
		p = &profile.Profile{
			UserID:     input.UserID,
			Skills:     []string{},
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
		}
	}

	p.Status = input.Status
	p.Skills = input.Skills
	setIfPresent(&p.Company, input.Company)
	setIfPresent(&p.Website, input.Website)
	setIfPresent(&p.Location, input.Location)
	setIfPresent(&p.Bio, input.Bio)
	setIfPresent(&p.GithubUsername, input.GithubUsername)
	setIfPresent(&p.Social.Youtube, input.Youtube)
	setIfPresent(&p.Social.Twitter, input.Twitter)
	setIfPresent(&p.Social.Facebook, input.Facebook)
	setIfPresent(&p.Social.LinkedIn, input.LinkedIn)
	setIfPresent(&p.Social.Instagram, input.Instagram)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return &UpsertProfileOutput{Profile: p}, nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGet(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

// ExecuteList reads through the cache; a cache failure falls back to the
// database rather than failing the request.
func (uc *ProfileUseCase) ExecuteList(ctx context.Context) (*ListProfilesOutput, error) {

	ctx, span := tracer.Start(ctx, "ListProfiles")
	defer span.End()

	if cached, err := uc.cache.GetList(ctx); err == nil && cached != nil {
		return &ListProfilesOutput{Profiles: cached}, nil
	} else if err != nil {
		uc.logger.Warn("Profile list cache read failed", zap.Error(err))
	}

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.cache.SetList(ctx, profiles); err != nil {
		uc.logger.Warn("Profile list cache write failed", zap.Error(err))
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}

func (uc *ProfileUseCase) invalidateListCache(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Profile list cache invalidation failed", zap.Error(err))
	}
}
