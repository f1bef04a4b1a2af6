package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/momentum-hq/momentum-backend/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisSessionCache caches the bot-to-meeting mapping in Redis. It sits on
// the webhook hot path, so lookups are best-effort: any Redis failure reads
// as a miss and the caller falls back to the database.
type RedisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSessionCache creates a Redis-backed session cache
func NewRedisSessionCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSessionCache {
	return &RedisSessionCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(botID string) string {
	return "recall:bot:" + botID
}

// GetMeetingID looks up the meeting a bot records
func (c *RedisSessionCache) GetMeetingID(ctx context.Context, botID string) (uuid.UUID, bool) {
	value, err := c.client.Get(ctx, sessionKey(botID)).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("⚠️ Redis lookup failed, falling back to database",
				zap.String("bot_id", botID),
				zap.Error(err))
		}
		return uuid.Nil, false
	}

	meetingID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return meetingID, true
}

// SetMeetingID stores the bot-to-meeting mapping with the configured TTL
func (c *RedisSessionCache) SetMeetingID(ctx context.Context, botID string, meetingID uuid.UUID) {
	if err := c.client.Set(ctx, sessionKey(botID), meetingID.String(), c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("⚠️ Failed to cache session mapping",
			zap.String("bot_id", botID),
			zap.Error(err))
	}
}
