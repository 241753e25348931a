package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func appRows(apps ...models.App) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "name", "mode", "description", "status", "is_hidden",
		"enable_site", "enable_api", "icon", "icon_type", "icon_background",
		"created_by", "created_at", "updated_at",
	})
	for _, app := range apps {
		rows.AddRow(app.ID, app.TenantID, app.Name, app.Mode, app.Description,
			app.Status, app.IsHidden, app.EnableSite, app.EnableAPI,
			app.Icon, app.IconType, app.IconBackground,
			app.CreatedBy, app.CreatedAt, app.UpdatedAt)
	}
	return rows
}

func TestAppRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		want := models.App{
			ID:       "app-1",
			TenantID: "tenant-1",
			Name:     "support bot",
			Mode:     models.AppModeChat,
			Status:   models.AppStatusNormal,
			IsHidden: models.AppDisplay,
			IconType: models.IconTypeEmoji,
		}

		mock.ExpectQuery(getApp).
			WithArgs("tenant-1", "app-1").
			WillReturnRows(appRows(want))

		got, err := repo.Get(ctx, "tenant-1", "app-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing row maps to sentinel", func(t *testing.T) {
		mock.ExpectQuery(getApp).
			WithArgs("tenant-1", "ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, "tenant-1", "ghost")
		assert.ErrorIs(t, err, ErrAppNotFound)
	})
}

func TestAppRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	now := time.Now()
	app := models.App{
		ID:       "app-1",
		TenantID: "tenant-1",
		Name:     "support bot",
		Mode:     models.AppModeChat,
		Status:   models.AppStatusNormal,
		IsHidden: models.AppDisplay,
		Icon:     "🤖",
		IconType: models.IconTypeEmoji,
	}

	returned := app
	returned.CreatedAt = now
	returned.UpdatedAt = now

	mock.ExpectQuery(createApp).
		WithArgs(app.ID, app.TenantID, app.Name, app.Mode, app.Description,
			app.Status, app.IsHidden, app.Icon, app.IconType,
			app.IconBackground, app.CreatedBy).
		WillReturnRows(appRows(returned))

	created, err := repo.Create(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
}

func TestAppRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	t.Run("removes matching row", func(t *testing.T) {
		mock.ExpectExec(deleteApp).
			WithArgs("tenant-1", "app-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "tenant-1", "app-1"))
	})

	t.Run("zero rows affected maps to sentinel", func(t *testing.T) {
		mock.ExpectExec(deleteApp).
			WithArgs("tenant-1", "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "tenant-1", "ghost"), ErrAppNotFound)
	})
}

func TestAppRepository_UpdateStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	updated := models.App{ID: "app-1", TenantID: "tenant-1", Status: models.AppStatusAbnormal}

	mock.ExpectQuery(updateAppStatus).
		WithArgs("tenant-1", "app-1", models.AppStatusAbnormal).
		WillReturnRows(appRows(updated))

	got, err := repo.UpdateStatus(ctx, "tenant-1", "app-1", models.AppStatusAbnormal)
	require.NoError(t, err)
	assert.Equal(t, models.AppStatusAbnormal, got.Status)
}

func TestAppRepository_UpdateSiteStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	t.Run("toggles the flag", func(t *testing.T) {
		updated := models.App{ID: "app-1", TenantID: "tenant-1", EnableSite: false, EnableAPI: true}

		mock.ExpectQuery(updateAppSiteStatus).
			WithArgs("tenant-1", "app-1", false).
			WillReturnRows(appRows(updated))

		got, err := repo.UpdateSiteStatus(ctx, "tenant-1", "app-1", false)
		require.NoError(t, err)
		assert.False(t, got.EnableSite)
		assert.True(t, got.EnableAPI)
	})

	t.Run("missing row maps to sentinel", func(t *testing.T) {
		mock.ExpectQuery(updateAppAPIStatus).
			WithArgs("tenant-1", "ghost", true).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateAPIStatus(ctx, "tenant-1", "ghost", true)
		assert.ErrorIs(t, err, ErrAppNotFound)
	})
}

func TestAppRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppRepository(db, logger.Nop())
	ctx := context.Background()

	filter := models.AppFilter{Page: 1, Limit: 20, Status: models.AppStatusNormal}

	listSQL, listArgs, err := buildAppListQuery("tenant-1", filter).ToSql()
	require.NoError(t, err)
	countSQL, countArgs, err := buildAppCountQuery("tenant-1", filter).ToSql()
	require.NoError(t, err)

	apps := []models.App{
		{ID: "app-1", TenantID: "tenant-1", Name: "first"},
		{ID: "app-2", TenantID: "tenant-1", Name: "second"},
	}

	mock.ExpectQuery(listSQL).
		WithArgs(driverArgs(listArgs)...).
		WillReturnRows(appRows(apps...))
	mock.ExpectQuery(countSQL).
		WithArgs(driverArgs(countArgs)...).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	page, err := repo.List(ctx, "tenant-1", filter)
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(42), page.Total)
	assert.True(t, page.HasMore, "20 of 42 rows shown")
}

// driverArgs converts squirrel's argument slice into the form sqlmock's
// WithArgs expects.
func driverArgs(args []any) []driver.Value {
	out := make([]driver.Value, 0, len(args))
	for _, a := range args {
		out = append(out, a)
	}
	return out
}
