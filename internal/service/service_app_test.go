package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/mock"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/models"
)

var editorAccount = models.Account{AccountID: "acc-1", TenantID: "tenant-1", Role: models.RoleEditor}

func newAppServiceForTest(t *testing.T) (*mock.MockAppRepository, *mock.MockDefaultAppCache, *mock.MockNotifier, AppService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	appRepo := mock.NewMockAppRepository(ctrl)
	cache := mock.NewMockDefaultAppCache(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	return appRepo, cache, notifier, NewAppService(appRepo, cache, notifier, logger.Nop())
}

func TestAppService_Create_SyncsExactlyOnce(t *testing.T) {
	appRepo, _, notifier, svc := newAppServiceForTest(t)
	ctx := context.Background()

	created := models.App{ID: "app-1", TenantID: "tenant-1", Name: "bot", Mode: models.AppModeChat}

	appRepo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	notifier.EXPECT().SyncApp(ctx, created, models.SyncOpCreate).Return(models.DeliveryResult{Success: true}).Times(1)

	got, err := svc.Create(ctx, editorAccount, models.CreateAppRequest{Name: "bot", Mode: models.AppModeChat})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestAppService_Create_FailedDeliveryDoesNotFailCall(t *testing.T) {
	appRepo, _, notifier, svc := newAppServiceForTest(t)
	ctx := context.Background()

	created := models.App{ID: "app-1", TenantID: "tenant-1", Name: "bot", Mode: models.AppModeChat}

	appRepo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	notifier.EXPECT().SyncApp(ctx, created, models.SyncOpCreate).
		Return(models.DeliveryResult{Success: false, StatusCode: 500, Body: "boom"})

	got, err := svc.Create(ctx, editorAccount, models.CreateAppRequest{Name: "bot", Mode: models.AppModeChat})
	require.NoError(t, err, "consumer failure must never surface to the caller")
	assert.Equal(t, created, got)
}

func TestAppService_Create_StorageErrorSendsNoSync(t *testing.T) {
	appRepo, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	appRepo.EXPECT().Create(ctx, gomock.Any()).Return(models.App{}, store.ErrExecutingQuery)

	_, err := svc.Create(ctx, editorAccount, models.CreateAppRequest{Name: "bot", Mode: models.AppModeChat})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAppService_Create_Validation(t *testing.T) {
	_, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, editorAccount, models.CreateAppRequest{Mode: models.AppModeChat})
		assert.ErrorIs(t, err, ErrValidationNameRequired)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := svc.Create(ctx, editorAccount, models.CreateAppRequest{Name: "bot", Mode: "spreadsheet"})
		assert.ErrorIs(t, err, ErrValidationInvalidMode)
	})

	t.Run("normal role is rejected", func(t *testing.T) {
		viewer := models.Account{AccountID: "acc-2", TenantID: "tenant-1", Role: models.RoleNormal}
		_, err := svc.Create(ctx, viewer, models.CreateAppRequest{Name: "bot", Mode: models.AppModeChat})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAppService_Delete_SyncsSnapshotWithDeleteOp(t *testing.T) {
	appRepo, _, notifier, svc := newAppServiceForTest(t)
	ctx := context.Background()

	app := models.App{ID: "app-1", TenantID: "tenant-1", Name: "bot"}

	gomock.InOrder(
		appRepo.EXPECT().Get(ctx, "tenant-1", "app-1").Return(app, nil),
		appRepo.EXPECT().Delete(ctx, "tenant-1", "app-1").Return(nil),
		notifier.EXPECT().SyncApp(ctx, app, models.SyncOpDelete).Return(models.DeliveryResult{Success: true}),
	)

	require.NoError(t, svc.Delete(ctx, editorAccount, "app-1"))
}

func TestAppService_Delete_NotFoundSendsNoSync(t *testing.T) {
	appRepo, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	appRepo.EXPECT().Get(ctx, "tenant-1", "missing").Return(models.App{}, store.ErrAppNotFound)

	err := svc.Delete(ctx, editorAccount, "missing")
	assert.ErrorIs(t, err, store.ErrAppNotFound)
}

func TestAppService_UpdateStatus(t *testing.T) {
	appRepo, _, notifier, svc := newAppServiceForTest(t)
	ctx := context.Background()

	t.Run("valid status syncs update", func(t *testing.T) {
		updated := models.App{ID: "app-1", TenantID: "tenant-1", Status: models.AppStatusAbnormal}
		appRepo.EXPECT().UpdateStatus(ctx, "tenant-1", "app-1", models.AppStatusAbnormal).Return(updated, nil)
		notifier.EXPECT().SyncApp(ctx, updated, models.SyncOpUpdate).Return(models.DeliveryResult{Success: true})

		got, err := svc.UpdateStatus(ctx, editorAccount, "app-1", models.AppStatusAbnormal)
		require.NoError(t, err)
		assert.Equal(t, models.AppStatusAbnormal, got.Status)
	})

	t.Run("invalid status is rejected before any mutation", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, editorAccount, "app-1", "paused")
		assert.ErrorIs(t, err, ErrValidationInvalidStatus)
	})
}

func TestAppService_UpdateName_IsLocalOnly(t *testing.T) {
	appRepo, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	renamed := models.App{ID: "app-1", TenantID: "tenant-1", Name: "renamed"}
	appRepo.EXPECT().UpdateName(ctx, "tenant-1", "app-1", "renamed").Return(renamed, nil)

	got, err := svc.UpdateName(ctx, editorAccount, "app-1", "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestAppService_UpdateSiteStatus_IsLocalOnly(t *testing.T) {
	appRepo, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	t.Run("editor may toggle the site", func(t *testing.T) {
		updated := models.App{ID: "app-1", TenantID: "tenant-1", EnableSite: false}
		appRepo.EXPECT().UpdateSiteStatus(ctx, "tenant-1", "app-1", false).Return(updated, nil)

		got, err := svc.UpdateSiteStatus(ctx, editorAccount, "app-1", false)
		require.NoError(t, err)
		assert.False(t, got.EnableSite)
	})

	t.Run("normal role is rejected", func(t *testing.T) {
		viewer := models.Account{AccountID: "acc-2", TenantID: "tenant-1", Role: models.RoleNormal}
		_, err := svc.UpdateSiteStatus(ctx, viewer, "app-1", true)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAppService_UpdateAPIStatus_RequiresAdminOrOwner(t *testing.T) {
	appRepo, _, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	t.Run("admin may toggle the api", func(t *testing.T) {
		admin := models.Account{AccountID: "acc-9", TenantID: "tenant-1", Role: models.RoleAdmin}
		updated := models.App{ID: "app-1", TenantID: "tenant-1", EnableAPI: false}
		appRepo.EXPECT().UpdateAPIStatus(ctx, "tenant-1", "app-1", false).Return(updated, nil)

		got, err := svc.UpdateAPIStatus(ctx, admin, "app-1", false)
		require.NoError(t, err)
		assert.False(t, got.EnableAPI)
	})

	t.Run("editor is rejected", func(t *testing.T) {
		_, err := svc.UpdateAPIStatus(ctx, editorAccount, "app-1", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAppService_DefaultApp(t *testing.T) {
	appRepo, cache, _, svc := newAppServiceForTest(t)
	ctx := context.Background()

	t.Run("set pins id and mode", func(t *testing.T) {
		app := models.App{ID: "app-1", TenantID: "tenant-1", Mode: models.AppModeWorkflow}
		appRepo.EXPECT().Get(ctx, "tenant-1", "app-1").Return(app, nil)
		cache.EXPECT().Set(ctx, models.DefaultAppSetting{AppID: "app-1", Mode: "workflow"}).Return(nil)

		require.NoError(t, svc.SetDefaultApp(ctx, editorAccount, "app-1"))
	})

	t.Run("get surfaces unset sentinel", func(t *testing.T) {
		cache.EXPECT().Get(ctx).Return(models.DefaultAppSetting{}, store.ErrDefaultAppNotSet)

		_, err := svc.GetDefaultApp(ctx, editorAccount)
		assert.True(t, errors.Is(err, store.ErrDefaultAppNotSet))
	})
}
