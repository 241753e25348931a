package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

type advertisingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAdvertisingRepository constructs an [AdvertisingRepository] over the
// advertising table. Banners are platform-wide and carry no tenant scope.
func NewAdvertisingRepository(db *DB, logger *logger.Logger) AdvertisingRepository {
	logger.Debug().Msg("creating advertising repository")
	return &advertisingRepository{
		db:     db,
		logger: logger,
	}
}

func scanAdvertising(row interface{ Scan(...any) error }) (models.Advertising, error) {
	var ad models.Advertising
	err := row.Scan(
		&ad.ID, &ad.Name, &ad.Weigh, &ad.Icon, &ad.IconType,
		&ad.StartedTime, &ad.EndedTime, &ad.RedirectURL, &ad.Status,
		&ad.CreatedBy, &ad.UpdatedBy, &ad.CreatedAt, &ad.UpdatedAt,
	)
	return ad, err
}

func (r *advertisingRepository) List(ctx context.Context, page int, limit int) (models.Page[models.Advertising], error) {
	log := logger.FromContext(ctx)

	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, listAdvertising, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*advertisingRepository.List").Msg("error listing advertising")
		return models.Page[models.Advertising]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ads := make([]models.Advertising, 0, limit)
	for rows.Next() {
		ad, err := scanAdvertising(rows)
		if err != nil {
			log.Err(err).Str("func", "*advertisingRepository.List").Msg("error scanning advertising row")
			return models.Page[models.Advertising]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return models.Page[models.Advertising]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countAdvertising).Scan(&total); err != nil {
		log.Err(err).Str("func", "*advertisingRepository.List").Msg("error counting advertising")
		return models.Page[models.Advertising]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Page[models.Advertising]{
		Data:    ads,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(page*limit) < total,
	}, nil
}

func (r *advertisingRepository) Get(ctx context.Context, adID string) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	ad, err := scanAdvertising(r.db.QueryRowContext(ctx, getAdvertising, adID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advertising{}, ErrAdvertisingNotFound
		}
		log.Err(err).Str("func", "*advertisingRepository.Get").Msg("error scanning advertising row")
		return models.Advertising{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return ad, nil
}

func (r *advertisingRepository) Create(ctx context.Context, ad models.Advertising) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	created, err := scanAdvertising(r.db.QueryRowContext(ctx, createAdvertising,
		ad.ID, ad.Name, ad.Weigh, ad.Icon, ad.IconType,
		ad.StartedTime, ad.EndedTime, ad.RedirectURL, ad.Status, ad.CreatedBy,
	))
	if err != nil {
		log.Err(err).Str("func", "*advertisingRepository.Create").Msg("error creating advertising")
		return models.Advertising{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *advertisingRepository) Update(ctx context.Context, ad models.Advertising) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	updated, err := scanAdvertising(r.db.QueryRowContext(ctx, updateAdvertising,
		ad.ID, ad.Name, ad.Weigh, ad.Icon,
		ad.StartedTime, ad.EndedTime, ad.RedirectURL, ad.UpdatedBy,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advertising{}, ErrAdvertisingNotFound
		}
		log.Err(err).Str("func", "*advertisingRepository.Update").Msg("error updating advertising")
		return models.Advertising{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *advertisingRepository) UpdateStatus(ctx context.Context, adID string, status string) (models.Advertising, error) {
	log := logger.FromContext(ctx)

	updated, err := scanAdvertising(r.db.QueryRowContext(ctx, updateAdvertisingStatus, adID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advertising{}, ErrAdvertisingNotFound
		}
		log.Err(err).Str("func", "*advertisingRepository.UpdateStatus").Msg("error updating advertising status")
		return models.Advertising{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *advertisingRepository) Delete(ctx context.Context, adID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAdvertising, adID)
	if err != nil {
		log.Err(err).Str("func", "*advertisingRepository.Delete").Msg("error deleting advertising")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAdvertisingNotFound
	}

	return nil
}
