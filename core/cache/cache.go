package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"timeweave/core/config"
	"timeweave/core/constants"
	"timeweave/core/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache wraps Redis with the handful of operations the app needs: versioned
// read-model caching for heatmaps/suggestions and respond-flood protection.
// Read failures degrade to cache misses; they never fail a request.
type Cache struct {
	rdb *redis.Client
}

func NewCache(cfg config.RedisConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

// MeetingVersion returns the cache generation for a meeting. Every recompute
// bumps it, which implicitly invalidates all heatmap/suggestion entries built
// against older generations.
func (c *Cache) MeetingVersion(ctx context.Context, meetingID uuid.UUID) int64 {
	val, err := c.rdb.Get(ctx, constants.RedisKeyMeetingVersion+meetingID.String()).Int64()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:MeetingVersion", "error", err)
		}
		return 0
	}
	return val
}

func (c *Cache) BumpMeetingVersion(ctx context.Context, meetingID uuid.UUID) {
	key := constants.RedisKeyMeetingVersion + meetingID.String()
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		logger.Warn("Cache:BumpMeetingVersion", "error", err)
		return
	}
	c.rdb.Expire(ctx, key, 24*time.Hour)
}

func (c *Cache) GetHeatmap(ctx context.Context, meetingID uuid.UUID, version int64, timezone string) ([]byte, bool) {
	return c.getBytes(ctx, heatmapKey(meetingID, version, timezone))
}

func (c *Cache) SetHeatmap(ctx context.Context, meetingID uuid.UUID, version int64, timezone string, payload []byte) {
	c.setBytes(ctx, heatmapKey(meetingID, version, timezone), payload, constants.HeatmapCacheTTL)
}

func (c *Cache) GetSuggestions(ctx context.Context, meetingID uuid.UUID, version int64, limit int, minPct float64) ([]byte, bool) {
	return c.getBytes(ctx, suggestionsKey(meetingID, version, limit, minPct))
}

func (c *Cache) SetSuggestions(ctx context.Context, meetingID uuid.UUID, version int64, limit int, minPct float64, payload []byte) {
	c.setBytes(ctx, suggestionsKey(meetingID, version, limit, minPct), payload, constants.SuggestionsCacheTTL)
}

// IncrementRespondAttempts counts submissions per source; the first hit arms
// the block window.
func (c *Cache) IncrementRespondAttempts(ctx context.Context, source string) int64 {
	key := constants.RedisKeyRespondBlock + source
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		logger.Warn("Cache:IncrementRespondAttempts", "error", err)
		return 0
	}
	if count == 1 {
		c.rdb.Expire(ctx, key, constants.BlockDuration)
	}
	return count
}

func (c *Cache) IsRespondBlocked(ctx context.Context, source string) bool {
	count, err := c.rdb.Get(ctx, constants.RedisKeyRespondBlock+source).Int64()
	if err != nil {
		return false
	}
	return count > constants.MaxRespondAttempts
}

// SetOAuthState stores a short-lived nonce for the Google connect flow so
// the callback can be tied back to the participant who initiated it.
func (c *Cache) SetOAuthState(ctx context.Context, state string, participantID uuid.UUID) error {
	return c.rdb.Set(ctx, constants.RedisKeyOAuthState+state, participantID.String(), constants.OAuthStateTTL).Err()
}

// GetOAuthState resolves and consumes an OAuth state nonce.
func (c *Cache) GetOAuthState(ctx context.Context, state string) (uuid.UUID, bool) {
	key := constants.RedisKeyOAuthState + state
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return uuid.Nil, false
	}
	c.rdb.Del(ctx, key)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, key, ttl).Err()
}

func (c *Cache) getBytes(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:Get", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *Cache) setBytes(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		logger.Warn("Cache:Set", "key", key, "error", err)
	}
}

func heatmapKey(meetingID uuid.UUID, version int64, timezone string) string {
	return fmt.Sprintf("%s%s:%d:%s", constants.RedisKeyHeatmap, meetingID, version, timezone)
}

func suggestionsKey(meetingID uuid.UUID, version int64, limit int, minPct float64) string {
	return fmt.Sprintf("%s%s:%d:%d:%s", constants.RedisKeySuggestions, meetingID, version, limit,
		strconv.FormatFloat(minPct, 'f', -1, 64))
}
