package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "promptly:account:"

// AccountProfile is the display data shown next to mirrored comments.
type AccountProfile struct {
	AccountID         uint   `json:"account_id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// Loader reads a profile from the system of record on a cache miss.
type Loader func(ctx context.Context, accountID uint) (*AccountProfile, error)

// AccountCache fronts profile lookups with Redis. A nil client turns it into
// a pass-through that still collapses concurrent loads.
type AccountCache struct {
	rdb   *redis.Client
	ttl   time.Duration
	group singleflight.Group
	log   *logrus.Entry
}

func NewAccountCache(rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *AccountCache {
	return &AccountCache{
		rdb: rdb,
		ttl: ttl,
		log: logger.WithField("module", "cache"),
	}
}

func Key(accountID uint) string {
	return keyPrefix + strconv.FormatUint(uint64(accountID), 10)
}

func (c *AccountCache) Profile(ctx context.Context, accountID uint, load Loader) (*AccountProfile, error) {
	if profile, ok := c.get(ctx, accountID); ok {
		return profile, nil
	}

	key := Key(accountID)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		profile, err := load(ctx, accountID)
		if err != nil {
			return nil, err
		}
		c.set(ctx, profile)
		return profile, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load account profile: %w", err)
	}
	return v.(*AccountProfile), nil
}

// Invalidate drops the cached profile. Failures are logged only; the entry expires anyway.
func (c *AccountCache) Invalidate(ctx context.Context, accountID uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, Key(accountID)).Err(); err != nil {
		c.log.WithError(err).WithField("account_id", accountID).Warn("cache invalidate failed")
	}
}

func (c *AccountCache) get(ctx context.Context, accountID uint) (*AccountProfile, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, Key(accountID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).Warn("cache read failed, falling back to loader")
		}
		return nil, false
	}

	var profile AccountProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		c.log.WithError(err).Warn("discarding unreadable cache entry")
		return nil, false
	}
	return &profile, true
}

func (c *AccountCache) set(ctx context.Context, profile *AccountProfile) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, Key(profile.AccountID), raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("cache write failed")
	}
}

// NewRedisClient pings the server once; callers run without cache when it fails.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}
