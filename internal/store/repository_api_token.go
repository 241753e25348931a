// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

type apiTokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAPITokenRepository constructs an [APITokenRepository] over the
// api_tokens table.
func NewAPITokenRepository(db *DB, logger *logger.Logger) APITokenRepository {
	logger.Debug().Msg("creating api token repository")
	return &apiTokenRepository{
		db:     db,
		logger: logger,
	}
}

func scanAPIToken(row interface{ Scan(...any) error }) (models.APIToken, error) {
	var token models.APIToken
	err := row.Scan(
		&token.ID, &token.TenantID, &token.AppID, &token.Type,
		&token.Token, &token.LastUsedAt, &token.CreatedAt,
	)
	return token, err
}

// ListByApp returns all keys of the given type issued for the resource,
// newest first.
func (r *apiTokenRepository) ListByApp(ctx context.Context, appID string, tokenType string) ([]models.APIToken, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAPITokens, appID, tokenType)
	if err != nil {
		log.Err(err).Str("func", "*apiTokenRepository.ListByApp").Msg("error listing api tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.APIToken, 0)
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			log.Err(err).Str("func", "*apiTokenRepository.ListByApp").Msg("error scanning api token row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}

// CountByApp reports how many keys of the given type exist for the resource.
// Used by the service layer to enforce the per-resource key limit before
// issuing a new key.
func (r *apiTokenRepository) CountByApp(ctx context.Context, appID string, tokenType string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countAPITokens, appID, tokenType).Scan(&count); err != nil {
		log.Err(err).Str("func", "*apiTokenRepository.CountByApp").Msg("error counting api tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *apiTokenRepository) Create(ctx context.Context, token models.APIToken) (models.APIToken, error) {
	log := logger.FromContext(ctx)

	created, err := scanAPIToken(r.db.QueryRowContext(ctx, createAPIToken,
		token.ID, token.TenantID, token.AppID, token.Type, token.Token,
	))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.APIToken{}, ErrDuplicateAPIToken
		}
		log.Err(err).Str("func", "*apiTokenRepository.Create").Msg("error creating api token")
		return models.APIToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *apiTokenRepository) Get(ctx context.Context, appID string, tokenType string, tokenID string) (models.APIToken, error) {
	log := logger.FromContext(ctx)

	token, err := scanAPIToken(r.db.QueryRowContext(ctx, getAPIToken, appID, tokenType, tokenID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIToken{}, ErrAPITokenNotFound
		}
		log.Err(err).Str("func", "*apiTokenRepository.Get").Msg("error scanning api token row")
		return models.APIToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// Delete removes one key by id. Returns [ErrAPITokenNotFound] if no row
// matched.
func (r *apiTokenRepository) Delete(ctx context.Context, tokenID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAPIToken, tokenID)
	if err != nil {
		log.Err(err).Str("func", "*apiTokenRepository.Delete").Msg("error deleting api token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAPITokenNotFound
	}

	return nil
}
