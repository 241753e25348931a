// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer:
// the PostgreSQL repositories and the Redis-backed default-app cache.
type Storages struct {
	Apps          AppRepository
	APITokens     APITokenRepository
	Advertising   AdvertisingRepository
	Tags          TagRepository
	Conversations ConversationRepository
	DefaultApp    DefaultAppCache

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, connects
// to Redis and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewStorages").Msg("connected to redis successfully")

	return &Storages{
		Apps:          NewAppRepository(db, log),
		APITokens:     NewAPITokenRepository(db, log),
		Advertising:   NewAdvertisingRepository(db, log),
		Tags:          NewTagRepository(db, log),
		Conversations: NewConversationRepository(db, log),
		DefaultApp:    NewDefaultAppCache(redisClient, log),
		db:            db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
