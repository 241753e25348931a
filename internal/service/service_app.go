// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/models"
)

var validAppModes = map[models.AppMode]struct{}{
	models.AppModeChat:         {},
	models.AppModeAgentChat:    {},
	models.AppModeAdvancedChat: {},
	models.AppModeWorkflow:     {},
	models.AppModeCompletion:   {},
}

// appService owns the app lifecycle. Mutations of synced fields go through
// the repository first; only after the local write succeeds is a single
// notification handed to the notifier. The delivery result never influences
// the returned value.
type appService struct {
	appRepository store.AppRepository
	defaultApp    store.DefaultAppCache
	notifier      consumer.Notifier

	logger *logger.Logger
}

func NewAppService(appRepository store.AppRepository, defaultApp store.DefaultAppCache, notifier consumer.Notifier, logger *logger.Logger) AppService {
	return &appService{
		appRepository: appRepository,
		defaultApp:    defaultApp,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *appService) List(ctx context.Context, account models.Account, filter models.AppFilter) (models.Page[models.App], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	return s.appRepository.List(ctx, account.TenantID, filter)
}

func (s *appService) Get(ctx context.Context, account models.Account, appID string) (models.App, error) {
	return s.appRepository.Get(ctx, account.TenantID, appID)
}

// Create validates and persists a new app, then issues one create sync.
func (s *appService) Create(ctx context.Context, account models.Account, req models.CreateAppRequest) (models.App, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}
	if req.Name == "" {
		return models.App{}, ErrValidationNameRequired
	}
	if _, ok := validAppModes[req.Mode]; !ok {
		log.Error().Str("mode", string(req.Mode)).Msg("invalid app mode provided")
		return models.App{}, ErrValidationInvalidMode
	}

	app := models.App{
		ID:             uuid.NewString(),
		TenantID:       account.TenantID,
		Name:           req.Name,
		Mode:           req.Mode,
		Description:    req.Description,
		Status:         models.AppStatusNormal,
		IsHidden:       models.AppDisplay,
		Icon:           req.Icon,
		IconType:       models.IconType(req.IconType),
		IconBackground: req.IconBackground,
		CreatedBy:      account.AccountID,
	}
	if app.IconType == "" {
		app.IconType = models.IconTypeEmoji
	}

	created, err := s.appRepository.Create(ctx, app)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("app creation ended with error")
		return models.App{}, fmt.Errorf("app creation ended with error: %w", err)
	}

	s.notifier.SyncApp(ctx, created, models.SyncOpCreate)

	return created, nil
}

// Update replaces the editable fields and issues one update sync.
func (s *appService) Update(ctx context.Context, account models.Account, appID string, req models.UpdateAppRequest) (models.App, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}
	if req.Name == "" {
		return models.App{}, ErrValidationNameRequired
	}

	updated, err := s.appRepository.Update(ctx, models.App{
		ID:             appID,
		TenantID:       account.TenantID,
		Name:           req.Name,
		Description:    req.Description,
		Icon:           req.Icon,
		IconType:       models.IconType(req.IconType),
		IconBackground: req.IconBackground,
	})
	if err != nil {
		log.Err(err).Str("app_id", appID).Msg("app update ended with error")
		return models.App{}, fmt.Errorf("app update ended with error: %w", err)
	}

	s.notifier.SyncApp(ctx, updated, models.SyncOpUpdate)

	return updated, nil
}

// Delete removes the app and issues one delete sync carrying a del_flag
// payload built from the last committed snapshot.
func (s *appService) Delete(ctx context.Context, account models.Account, appID string) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}

	app, err := s.appRepository.Get(ctx, account.TenantID, appID)
	if err != nil {
		return err
	}

	if err := s.appRepository.Delete(ctx, account.TenantID, appID); err != nil {
		log.Err(err).Str("app_id", appID).Msg("app deletion ended with error")
		return fmt.Errorf("app deletion ended with error: %w", err)
	}

	s.notifier.SyncApp(ctx, app, models.SyncOpDelete)

	return nil
}

func (s *appService) UpdateStatus(ctx context.Context, account models.Account, appID string, status string) (models.App, error) {
	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}
	if status != models.AppStatusNormal && status != models.AppStatusAbnormal {
		return models.App{}, ErrValidationInvalidStatus
	}

	updated, err := s.appRepository.UpdateStatus(ctx, account.TenantID, appID, status)
	if err != nil {
		return models.App{}, err
	}

	s.notifier.SyncApp(ctx, updated, models.SyncOpUpdate)

	return updated, nil
}

func (s *appService) UpdateHidden(ctx context.Context, account models.Account, appID string, isHidden string) (models.App, error) {
	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}
	if isHidden != models.AppHidden && isHidden != models.AppDisplay {
		return models.App{}, ErrValidationInvalidHidden
	}

	updated, err := s.appRepository.UpdateHidden(ctx, account.TenantID, appID, isHidden)
	if err != nil {
		return models.App{}, err
	}

	s.notifier.SyncApp(ctx, updated, models.SyncOpUpdate)

	return updated, nil
}

// UpdateName renames the app. The consumer service does not track the name
// between full syncs, so no notification is sent.
func (s *appService) UpdateName(ctx context.Context, account models.Account, appID string, name string) (models.App, error) {
	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}
	if name == "" {
		return models.App{}, ErrValidationNameRequired
	}

	return s.appRepository.UpdateName(ctx, account.TenantID, appID, name)
}

// UpdateIcon replaces the app icon. Local only, same as UpdateName.
func (s *appService) UpdateIcon(ctx context.Context, account models.Account, appID string, icon, iconBackground string) (models.App, error) {
	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}

	return s.appRepository.UpdateIcon(ctx, account.TenantID, appID, icon, iconBackground)
}

// UpdateSiteStatus toggles the app's published web UI. Local only, same as
// UpdateName.
func (s *appService) UpdateSiteStatus(ctx context.Context, account models.Account, appID string, enabled bool) (models.App, error) {
	if !account.IsEditor() {
		return models.App{}, ErrForbidden
	}

	return s.appRepository.UpdateSiteStatus(ctx, account.TenantID, appID, enabled)
}

// UpdateAPIStatus toggles the app's service API. Disabling the API cuts off
// every issued key at once, so the toggle is held to admins and owners.
func (s *appService) UpdateAPIStatus(ctx context.Context, account models.Account, appID string, enabled bool) (models.App, error) {
	if !account.IsAdminOrOwner() {
		return models.App{}, ErrForbidden
	}

	return s.appRepository.UpdateAPIStatus(ctx, account.TenantID, appID, enabled)
}

// SetDefaultApp pins the app as the workspace default in the cache.
func (s *appService) SetDefaultApp(ctx context.Context, account models.Account, appID string) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}

	app, err := s.appRepository.Get(ctx, account.TenantID, appID)
	if err != nil {
		return err
	}

	setting := models.DefaultAppSetting{
		AppID: app.ID,
		Mode:  string(app.Mode),
	}
	if err := s.defaultApp.Set(ctx, setting); err != nil {
		log.Err(err).Str("app_id", appID).Msg("error pinning default app")
		return fmt.Errorf("error pinning default app: %w", err)
	}

	return nil
}

func (s *appService) GetDefaultApp(ctx context.Context, account models.Account) (models.DefaultAppSetting, error) {
	return s.defaultApp.Get(ctx)
}
