package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

// defaultAppKey is the Redis key holding the workspace default-app setting.
const defaultAppKey = "app_default_key"

type defaultAppCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewDefaultAppCache constructs a [DefaultAppCache] backed by Redis. The
// setting has no expiry; it stays until overwritten.
func NewDefaultAppCache(client *redis.Client, logger *logger.Logger) DefaultAppCache {
	logger.Debug().Msg("creating default app cache")
	return &defaultAppCache{
		client: client,
		logger: logger,
	}
}

func (c *defaultAppCache) Set(ctx context.Context, setting models.DefaultAppSetting) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(setting)
	if err != nil {
		return fmt.Errorf("marshal default app setting: %w", err)
	}

	if err := c.client.Set(ctx, defaultAppKey, payload, 0).Err(); err != nil {
		log.Err(err).Str("func", "*defaultAppCache.Set").Msg("error writing default app setting")
		return fmt.Errorf("write default app setting: %w", err)
	}

	return nil
}

func (c *defaultAppCache) Get(ctx context.Context) (models.DefaultAppSetting, error) {
	log := logger.FromContext(ctx)

	payload, err := c.client.Get(ctx, defaultAppKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultAppSetting{}, ErrDefaultAppNotSet
		}
		log.Err(err).Str("func", "*defaultAppCache.Get").Msg("error reading default app setting")
		return models.DefaultAppSetting{}, fmt.Errorf("read default app setting: %w", err)
	}

	var setting models.DefaultAppSetting
	if err := json.Unmarshal(payload, &setting); err != nil {
		return models.DefaultAppSetting{}, fmt.Errorf("unmarshal default app setting: %w", err)
	}

	return setting, nil
}
