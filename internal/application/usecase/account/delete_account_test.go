package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/devlink/internal/domain/profile"
	"github.com/quangdng/devlink/internal/domain/user"
	"github.com/quangdng/devlink/pkg/logger"
)

type fakeProfileRepo struct {
	profiles  map[uuid.UUID]*profile.Profile
	deleteErr error
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) List(context.Context) ([]*profile.Profile, error) { return nil, nil }

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, userID uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.profiles, userID)
	return nil
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*user.User
	deleteErr error
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateAvatar(context.Context, uuid.UUID, string) error { return nil }

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type noopCache struct{ invalidations int }

func (c *noopCache) GetList(context.Context) ([]*profile.Profile, error) { return nil, nil }

func (c *noopCache) SetList(context.Context, []*profile.Profile) error { return nil }

func (c *noopCache) Invalidate(context.Context) error { c.invalidations++; return nil }

func TestDeleteAccount_RemovesProfileThenUser(t *testing.T) {
	userID := uuid.New()
	pRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {UserID: userID, Status: "Developer"},
	}}
	uRepo := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		userID: {ID: userID, Name: "alice"},
	}}
	cache := &noopCache{}

	uc := NewDeleteAccountUseCase(pRepo, uRepo, cache, nil, logger.NewNop())
	require.NoError(t, uc.Execute(context.Background(), DeleteAccountInput{UserID: userID}))

	assert.Empty(t, pRepo.profiles)
	assert.Empty(t, uRepo.users)
	assert.Equal(t, 1, cache.invalidations)
}

func TestDeleteAccount_NoProfileStillRemovesUser(t *testing.T) {
	userID := uuid.New()
	pRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}
	uRepo := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		userID: {ID: userID, Name: "alice"},
	}}

	uc := NewDeleteAccountUseCase(pRepo, uRepo, &noopCache{}, nil, logger.NewNop())
	require.NoError(t, uc.Execute(context.Background(), DeleteAccountInput{UserID: userID}))
	assert.Empty(t, uRepo.users)
}

func TestDeleteAccount_UserAlreadyGone(t *testing.T) {
	uc := NewDeleteAccountUseCase(
		&fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}},
		&fakeUserRepo{users: map[uuid.UUID]*user.User{}},
		&noopCache{},
		nil,
		logger.NewNop(),
	)
	assert.NoError(t, uc.Execute(context.Background(), DeleteAccountInput{UserID: uuid.New()}))
}

func TestDeleteAccount_ProfileDeleteFailureKeepsUser(t *testing.T) {
	userID := uuid.New()
	boom := errors.New("storage down")
	pRepo := &fakeProfileRepo{
		profiles:  map[uuid.UUID]*profile.Profile{userID: {UserID: userID}},
		deleteErr: boom,
	}
	uRepo := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		userID: {ID: userID, Name: "alice"},
	}}

	uc := NewDeleteAccountUseCase(pRepo, uRepo, &noopCache{}, nil, logger.NewNop())
	err := uc.Execute(context.Background(), DeleteAccountInput{UserID: userID})

	assert.ErrorIs(t, err, boom)
	assert.Len(t, uRepo.users, 1, "user is only removed after the profile delete succeeds")
}
