package http

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/quangdng/devlink/internal/domain/post"
	"github.com/quangdng/devlink/internal/domain/profile"
	"github.com/quangdng/devlink/internal/domain/user"
)

// In-memory adapters backing the handler suite. They implement the same
// repository and service interfaces the postgres and redis adapters do, so
// the full router can be exercised without containers.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *memUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.AvatarURL = avatarURL
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*profile.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *memProfileRepo) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	return nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*post.Post
	order []uuid.UUID
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*post.Post)}
}

func (r *memPostRepo) Save(_ context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.posts[p.ID] = &cp
	r.order = append([]uuid.UUID{p.ID}, r.order...)
	return nil
}

func (r *memPostRepo) Update(_ context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return post.ErrPostNotFound
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) List(_ context.Context, limit, offset int) ([]*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*post.Post, 0, limit)
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		cp := *r.posts[r.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(r.posts, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type memProfileCache struct{}

func (memProfileCache) GetList(context.Context) ([]*profile.Profile, error) { return nil, nil }

func (memProfileCache) SetList(context.Context, []*profile.Profile) error { return nil }

func (memProfileCache) Invalidate(context.Context) error { return nil }

type memFeedCache struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (c *memFeedCache) PushPost(_ context.Context, postID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append([]uuid.UUID{postID}, c.ids...)
	return nil
}

func (c *memFeedCache) RemovePost(_ context.Context, postID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, id := range c.ids {
		if id == postID {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (c *memFeedCache) RecentPosts(_ context.Context, limit int) ([]uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit > len(c.ids) {
		limit = len(c.ids)
	}
	out := make([]uuid.UUID, limit)
	copy(out, c.ids[:limit])
	return out, nil
}

type memUploader struct{}

func (memUploader) Upload(_ context.Context, _ io.Reader, folder, publicID string) (string, error) {
	return fmt.Sprintf("https://cdn.test/%s/%s", folder, publicID), nil
}

func (memUploader) Delete(context.Context, string) error { return nil }
