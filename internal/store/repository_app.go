package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

// appRepository is the PostgreSQL-backed implementation of [AppRepository].
// It owns the "apps" table. All methods obtain a context-scoped logger via
// [logger.FromContext] for structured, request-level tracing of database
// interactions.
type appRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAppRepository constructs an [AppRepository] backed by the provided
// database connection and logger.
func NewAppRepository(db *DB, logger *logger.Logger) AppRepository {
	logger.Debug().Msg("creating app repository")
	return &appRepository{
		db:     db,
		logger: logger,
	}
}

func scanApp(row interface{ Scan(...any) error }) (models.App, error) {
	var app models.App
	err := row.Scan(
		&app.ID, &app.TenantID, &app.Name, &app.Mode, &app.Description,
		&app.Status, &app.IsHidden, &app.EnableSite, &app.EnableAPI,
		&app.Icon, &app.IconType, &app.IconBackground,
		&app.CreatedBy, &app.CreatedAt, &app.UpdatedAt,
	)
	return app, err
}

// List returns one page of the tenant's apps matching the filter, together
// with the total match count used for has_more computation.
func (r *appRepository) List(ctx context.Context, tenantID string, filter models.AppFilter) (models.Page[models.App], error) {
	log := logger.FromContext(ctx)

	listSQL, listArgs, err := buildAppListQuery(tenantID, filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*appRepository.List").Msg("error building app list query")
		return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.List").Msg("error executing app list query")
		return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	apps := make([]models.App, 0, filter.Limit)
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			log.Err(err).Str("func", "*appRepository.List").Msg("error scanning app row")
			return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countSQL, countArgs, err := buildAppCountQuery(tenantID, filter).ToSql()
	if err != nil {
		return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*appRepository.List").Msg("error counting apps")
		return models.Page[models.App]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Page[models.App]{
		Data:    apps,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
		HasMore: int64(filter.Page*filter.Limit) < total,
	}, nil
}

// Get retrieves one app scoped to the tenant.
//
// Error handling:
//   - no matching row → [ErrAppNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *appRepository) Get(ctx context.Context, tenantID string, appID string) (models.App, error) {
	log := logger.FromContext(ctx)

	app, err := scanApp(r.db.QueryRowContext(ctx, getApp, tenantID, appID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.App{}, ErrAppNotFound
		}
		log.Err(err).Str("func", "*appRepository.Get").Msg("error scanning app row")
		return models.App{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return app, nil
}

// Create persists a new app and returns the canonical database
// representation including server-assigned timestamps.
func (r *appRepository) Create(ctx context.Context, app models.App) (models.App, error) {
	log := logger.FromContext(ctx)

	created, err := scanApp(r.db.QueryRowContext(ctx, createApp,
		app.ID, app.TenantID, app.Name, app.Mode, app.Description,
		app.Status, app.IsHidden, app.Icon, app.IconType,
		app.IconBackground, app.CreatedBy,
	))
	if err != nil {
		log.Err(err).Str("func", "*appRepository.Create").Msg("error creating app")
		return models.App{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// Update replaces the app's editable fields and returns the updated row.
func (r *appRepository) Update(ctx context.Context, app models.App) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.Update", updateApp,
		app.TenantID, app.ID, app.Name, app.Description, app.Icon, app.IconType, app.IconBackground)
}

// Delete removes the app. Returns [ErrAppNotFound] if no row matched.
func (r *appRepository) Delete(ctx context.Context, tenantID string, appID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteApp, tenantID, appID)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.Delete").Msg("error deleting app")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAppNotFound
	}

	return nil
}

func (r *appRepository) UpdateStatus(ctx context.Context, tenantID string, appID string, status string) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateStatus", updateAppStatus, tenantID, appID, status)
}

func (r *appRepository) UpdateHidden(ctx context.Context, tenantID string, appID string, isHidden string) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateHidden", updateAppHidden, tenantID, appID, isHidden)
}

func (r *appRepository) UpdateName(ctx context.Context, tenantID string, appID string, name string) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateName", updateAppName, tenantID, appID, name)
}

func (r *appRepository) UpdateIcon(ctx context.Context, tenantID string, appID string, icon, iconBackground string) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateIcon", updateAppIcon, tenantID, appID, icon, iconBackground)
}

func (r *appRepository) UpdateSiteStatus(ctx context.Context, tenantID string, appID string, enabled bool) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateSiteStatus", updateAppSiteStatus, tenantID, appID, enabled)
}

func (r *appRepository) UpdateAPIStatus(ctx context.Context, tenantID string, appID string, enabled bool) (models.App, error) {
	return r.updateReturning(ctx, "*appRepository.UpdateAPIStatus", updateAppAPIStatus, tenantID, appID, enabled)
}

// updateReturning runs one UPDATE ... RETURNING statement and maps the empty
// result set to [ErrAppNotFound].
func (r *appRepository) updateReturning(ctx context.Context, funcName string, query string, args ...any) (models.App, error) {
	log := logger.FromContext(ctx)

	app, err := scanApp(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.App{}, ErrAppNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error updating app")
		return models.App{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return app, nil
}
