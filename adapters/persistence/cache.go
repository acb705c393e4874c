package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/quangdng/devlink/internal/application/service"
	"github.com/quangdng/devlink/internal/domain/profile"
)

const (
	profileListKey = "profiles:all"
	profileListTTL = 5 * time.Minute

	feedKey    = "feed:recent"
	feedMaxLen = 500
)

type redisProfileCache struct {
	rdb *redis.Client
}

func NewRedisProfileCache(rdb *redis.Client) service.ProfileCache {
	return &redisProfileCache{rdb: rdb}
}

func (c *redisProfileCache) GetList(ctx context.Context) ([]*profile.Profile, error) {
	raw, err := c.rdb.Get(ctx, profileListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile list cache: %w", err)
	}

	var profiles []*profile.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, nil
	}
	return profiles, nil
}

func (c *redisProfileCache) SetList(ctx context.Context, profiles []*profile.Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profile list: %w", err)
	}
	return c.rdb.Set(ctx, profileListKey, raw, profileListTTL).Err()
}

func (c *redisProfileCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, profileListKey).Err()
}

type redisFeedCache struct {
	rdb *redis.Client
}

func NewRedisFeedCache(rdb *redis.Client) service.FeedCache {
	return &redisFeedCache{rdb: rdb}
}

func (c *redisFeedCache) PushPost(ctx context.Context, postID uuid.UUID) error {
	pipe := c.rdb.TxPipeline()
	pipe.LPush(ctx, feedKey, postID.String())
	pipe.LTrim(ctx, feedKey, 0, feedMaxLen-1)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisFeedCache) RemovePost(ctx context.Context, postID uuid.UUID) error {
	return c.rdb.LRem(ctx, feedKey, 0, postID.String()).Err()
}

func (c *redisFeedCache) RecentPosts(ctx context.Context, limit int) ([]uuid.UUID, error) {
	raw, err := c.rdb.LRange(ctx, feedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
