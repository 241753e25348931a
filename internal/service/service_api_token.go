package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

const (
	// apiTokenType marks keys issued for the service API of an app.
	apiTokenType = "app"

	// apiTokenPrefix and apiTokenLength define the shape of issued keys:
	// "app-" followed by 24 random alphanumeric characters.
	apiTokenPrefix = "app-"
	apiTokenLength = 24
)

// apiTokenService issues and revokes service-API keys for apps. The number
// of live keys per app is capped by configuration; the cap is checked before
// any mutation so a rejected request leaves no trace locally or downstream.
type apiTokenService struct {
	tokenRepository store.APITokenRepository
	appRepository   store.AppRepository
	notifier        consumer.Notifier

	maxKeys int

	logger *logger.Logger
}

func NewAPITokenService(tokenRepository store.APITokenRepository, appRepository store.AppRepository, notifier consumer.Notifier, cfg config.App, logger *logger.Logger) APITokenService {
	return &apiTokenService{
		tokenRepository: tokenRepository,
		appRepository:   appRepository,
		notifier:        notifier,
		maxKeys:         cfg.MaxAPIKeys,
		logger:          logger,
	}
}

func (s *apiTokenService) List(ctx context.Context, account models.Account, appID string) ([]models.APIToken, error) {
	if _, err := s.appRepository.Get(ctx, account.TenantID, appID); err != nil {
		return nil, err
	}

	return s.tokenRepository.ListByApp(ctx, appID, apiTokenType)
}

// Create issues a new key for the app, enforcing the per-app cap before any
// mutation, and syncs the full record to the consumer service.
func (s *apiTokenService) Create(ctx context.Context, account models.Account, appID string) (models.APIToken, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.APIToken{}, ErrForbidden
	}

	if _, err := s.appRepository.Get(ctx, account.TenantID, appID); err != nil {
		return models.APIToken{}, err
	}

	count, err := s.tokenRepository.CountByApp(ctx, appID, apiTokenType)
	if err != nil {
		return models.APIToken{}, err
	}
	if count >= s.maxKeys {
		log.Error().Str("app_id", appID).Int("count", count).Msg("api key limit reached")
		return models.APIToken{}, ErrMaxAPIKeysReached
	}

	secret, err := utils.GenerateAPIKey(apiTokenPrefix, apiTokenLength)
	if err != nil {
		return models.APIToken{}, fmt.Errorf("error generating api key: %w", err)
	}

	created, err := s.tokenRepository.Create(ctx, models.APIToken{
		ID:       uuid.NewString(),
		TenantID: account.TenantID,
		AppID:    appID,
		Type:     apiTokenType,
		Token:    secret,
	})
	if err != nil {
		log.Err(err).Str("app_id", appID).Msg("api key creation ended with error")
		return models.APIToken{}, fmt.Errorf("api key creation ended with error: %w", err)
	}

	s.notifier.SyncAPIToken(ctx, created)

	return created, nil
}

// Delete revokes a key. Restricted to admins and owners; the removal sync
// carries only the key id.
func (s *apiTokenService) Delete(ctx context.Context, account models.Account, appID string, tokenID string) error {
	log := logger.FromContext(ctx)

	if !account.IsAdminOrOwner() {
		return ErrForbidden
	}

	if _, err := s.appRepository.Get(ctx, account.TenantID, appID); err != nil {
		return err
	}

	token, err := s.tokenRepository.Get(ctx, appID, apiTokenType, tokenID)
	if err != nil {
		return err
	}

	if err := s.tokenRepository.Delete(ctx, token.ID); err != nil {
		log.Err(err).Str("token_id", tokenID).Msg("api key deletion ended with error")
		return fmt.Errorf("api key deletion ended with error: %w", err)
	}

	s.notifier.RemoveAPIToken(ctx, token.ID)

	return nil
}
