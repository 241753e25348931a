// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/mock"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/models"
)

func newAdvertisingServiceForTest(t *testing.T) (*mock.MockAdvertisingRepository, *mock.MockNotifier, AdvertisingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adRepo := mock.NewMockAdvertisingRepository(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	return adRepo, notifier, NewAdvertisingService(adRepo, notifier, logger.Nop())
}

func TestAdvertisingService_Create_DefaultsAndSyncs(t *testing.T) {
	adRepo, notifier, svc := newAdvertisingServiceForTest(t)
	ctx := context.Background()

	var persisted models.Advertising
	adRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ad models.Advertising) (models.Advertising, error) {
			persisted = ad
			return ad, nil
		})
	notifier.EXPECT().SyncAdvertising(ctx, gomock.Any(), models.SyncOpCreate).
		Return(models.DeliveryResult{Success: true}).Times(1)

	created, err := svc.Create(ctx, editorAccount, models.CreateAdvertisingRequest{
		Name:        "spring promo",
		Weigh:       3,
		Icon:        "https://cdn.example.com/banner.png",
		StartedTime: "2026-03-01 00:00:00",
		EndedTime:   "2026-04-01 00:00:00",
		RedirectURL: "https://example.com/promo",
	})
	require.NoError(t, err)

	assert.Equal(t, persisted, created)
	assert.Equal(t, models.AppStatusNormal, created.Status)
	assert.Equal(t, models.IconTypeImage, created.IconType, "icon type defaults to image")
	assert.NotEmpty(t, created.ID)
}

func TestAdvertisingService_Update_SyncsFullRecord(t *testing.T) {
	adRepo, notifier, svc := newAdvertisingServiceForTest(t)
	ctx := context.Background()

	updated := models.Advertising{ID: "ad-1", Name: "renamed promo", Weigh: 7}

	gomock.InOrder(
		adRepo.EXPECT().Update(ctx, gomock.Any()).Return(updated, nil),
		notifier.EXPECT().SyncAdvertising(ctx, updated, models.SyncOpUpdate).Return(models.DeliveryResult{Success: true}),
	)

	got, err := svc.Update(ctx, editorAccount, "ad-1", models.UpdateAdvertisingRequest{Name: "renamed promo", Weigh: 7})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestAdvertisingService_UpdateStatus(t *testing.T) {
	adRepo, notifier, svc := newAdvertisingServiceForTest(t)
	ctx := context.Background()

	t.Run("valid status syncs status only", func(t *testing.T) {
		updated := models.Advertising{ID: "ad-1", Status: models.AppStatusAbnormal}

		gomock.InOrder(
			adRepo.EXPECT().UpdateStatus(ctx, "ad-1", models.AppStatusAbnormal).Return(updated, nil),
			notifier.EXPECT().SyncAdvertisingStatus(ctx, "ad-1", models.AppStatusAbnormal).Return(models.DeliveryResult{Success: true}),
		)

		got, err := svc.UpdateStatus(ctx, editorAccount, "ad-1", models.AppStatusAbnormal)
		require.NoError(t, err)
		assert.Equal(t, models.AppStatusAbnormal, got.Status)
	})

	t.Run("invalid status is rejected before any mutation", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, editorAccount, "ad-1", "archived")
		assert.ErrorIs(t, err, ErrValidationInvalidStatus)
	})

	t.Run("unknown banner sends no sync", func(t *testing.T) {
		adRepo.EXPECT().UpdateStatus(ctx, "ghost", models.AppStatusNormal).
			Return(models.Advertising{}, store.ErrAdvertisingNotFound)

		_, err := svc.UpdateStatus(ctx, editorAccount, "ghost", models.AppStatusNormal)
		assert.ErrorIs(t, err, store.ErrAdvertisingNotFound)
	})
}

func TestAdvertisingService_Delete_SyncsIDOnly(t *testing.T) {
	adRepo, notifier, svc := newAdvertisingServiceForTest(t)
	ctx := context.Background()

	gomock.InOrder(
		adRepo.EXPECT().Delete(ctx, "ad-1").Return(nil),
		notifier.EXPECT().RemoveAdvertising(ctx, "ad-1").Return(models.DeliveryResult{Success: true}),
	)

	require.NoError(t, svc.Delete(ctx, editorAccount, "ad-1"))
}

func TestAdvertisingService_MutationsRequireEditorRole(t *testing.T) {
	_, _, svc := newAdvertisingServiceForTest(t)
	ctx := context.Background()
	viewer := models.Account{AccountID: "acc-2", TenantID: "tenant-1", Role: models.RoleNormal}

	_, err := svc.Create(ctx, viewer, models.CreateAdvertisingRequest{Name: "promo"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, viewer, "ad-1")
	assert.ErrorIs(t, err, ErrForbidden)
}
