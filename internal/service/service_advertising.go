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

// advertisingService owns platform-wide promotional banners. Banners are not
// tenant-scoped; any editor may manage them.
type advertisingService struct {
	advertisingRepository store.AdvertisingRepository
	notifier              consumer.Notifier

	logger *logger.Logger
}

func NewAdvertisingService(advertisingRepository store.AdvertisingRepository, notifier consumer.Notifier, logger *logger.Logger) AdvertisingService {
	return &advertisingService{
		advertisingRepository: advertisingRepository,
		notifier:              notifier,
		logger:                logger,
	}
}

func (s *advertisingService) List(ctx context.Context, account models.Account, page int, limit int) (models.Page[models.Advertising], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.advertisingRepository.List(ctx, page, limit)
}

func (s *advertisingService) Get(ctx context.Context, account models.Account, adID string) (models.Advertising, error) {
	return s.advertisingRepository.Get(ctx, adID)
}

// Create persists a new banner with status "normal" and syncs the full
// record.
func (s *advertisingService) Create(ctx context.Context, account models.Account, req models.CreateAdvertisingRequest) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.Advertising{}, ErrForbidden
	}
	if req.Name == "" {
		return models.Advertising{}, ErrValidationNameRequired
	}

	ad := models.Advertising{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Weigh:       req.Weigh,
		Icon:        req.Icon,
		IconType:    models.IconType(req.IconType),
		StartedTime: req.StartedTime,
		EndedTime:   req.EndedTime,
		RedirectURL: req.RedirectURL,
		Status:      models.AppStatusNormal,
		CreatedBy:   account.AccountID,
	}
	if ad.IconType == "" {
		ad.IconType = models.IconTypeImage
	}

	created, err := s.advertisingRepository.Create(ctx, ad)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("advertising creation ended with error")
		return models.Advertising{}, fmt.Errorf("advertising creation ended with error: %w", err)
	}

	s.notifier.SyncAdvertising(ctx, created, models.SyncOpCreate)

	return created, nil
}

// Update replaces the banner's editable fields and syncs the full record.
func (s *advertisingService) Update(ctx context.Context, account models.Account, adID string, req models.UpdateAdvertisingRequest) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.Advertising{}, ErrForbidden
	}
	if req.Name == "" {
		return models.Advertising{}, ErrValidationNameRequired
	}

	updated, err := s.advertisingRepository.Update(ctx, models.Advertising{
		ID:          adID,
		Name:        req.Name,
		Weigh:       req.Weigh,
		Icon:        req.Icon,
		StartedTime: req.StartedTime,
		EndedTime:   req.EndedTime,
		RedirectURL: req.RedirectURL,
		UpdatedBy:   account.AccountID,
	})
	if err != nil {
		log.Err(err).Str("ad_id", adID).Msg("advertising update ended with error")
		return models.Advertising{}, fmt.Errorf("advertising update ended with error: %w", err)
	}

	s.notifier.SyncAdvertising(ctx, updated, models.SyncOpUpdate)

	return updated, nil
}

// UpdateStatus toggles the banner and syncs only the new status.
func (s *advertisingService) UpdateStatus(ctx context.Context, account models.Account, adID string, status string) (models.Advertising, error) {
	if !account.IsEditor() {
		return models.Advertising{}, ErrForbidden
	}
	if status != models.AppStatusNormal && status != models.AppStatusAbnormal {
		return models.Advertising{}, ErrValidationInvalidStatus
	}

	updated, err := s.advertisingRepository.UpdateStatus(ctx, adID, status)
	if err != nil {
		return models.Advertising{}, err
	}

	s.notifier.SyncAdvertisingStatus(ctx, updated.ID, updated.Status)

	return updated, nil
}

// Delete removes the banner; the removal sync carries only the id.
func (s *advertisingService) Delete(ctx context.Context, account models.Account, adID string) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}

	if err := s.advertisingRepository.Delete(ctx, adID); err != nil {
		log.Err(err).Str("ad_id", adID).Msg("advertising deletion ended with error")
		return err
	}

	s.notifier.RemoveAdvertising(ctx, adID)

	return nil
}
