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

func newConversationServiceForTest(t *testing.T) (*mock.MockConversationRepository, *mock.MockAppRepository, *mock.MockNotifier, ConversationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	convRepo := mock.NewMockConversationRepository(ctrl)
	appRepo := mock.NewMockAppRepository(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	return convRepo, appRepo, notifier, NewConversationService(convRepo, appRepo, notifier, logger.Nop())
}

func expectChatApp(ctx context.Context, appRepo *mock.MockAppRepository, appID string) *gomock.Call {
	return appRepo.EXPECT().Get(ctx, "tenant-1", appID).
		Return(models.App{ID: appID, TenantID: "tenant-1", Mode: models.AppModeChat}, nil)
}

func TestConversationService_WorkflowAppHasNoConversations(t *testing.T) {
	_, appRepo, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	workflow := models.App{ID: "app-1", TenantID: "tenant-1", Mode: models.AppModeWorkflow}
	appRepo.EXPECT().Get(ctx, "tenant-1", "app-1").Return(workflow, nil).Times(4)

	_, err := svc.List(ctx, editorAccount, "app-1", "", "", 0)
	assert.ErrorIs(t, err, ErrNotChatApp)

	_, err = svc.Rename(ctx, editorAccount, "app-1", "conv-1", "renamed")
	assert.ErrorIs(t, err, ErrNotChatApp)

	assert.ErrorIs(t, svc.Delete(ctx, editorAccount, "app-1", "conv-1"), ErrNotChatApp)

	_, err = svc.BulkDelete(ctx, editorAccount, "app-1", []string{"conv-1"})
	assert.ErrorIs(t, err, ErrNotChatApp)
}

func TestConversationService_List(t *testing.T) {
	convRepo, appRepo, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	t.Run("defaults are applied before the query runs", func(t *testing.T) {
		page := models.InfiniteScrollPage[models.Conversation]{
			Data:    []models.Conversation{{ID: "conv-1", AppID: "app-1", Name: "first chat"}},
			Limit:   20,
			HasMore: true,
		}

		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().List(ctx, "app-1", "", "-updated_at", 20).Return(page, nil)

		got, err := svc.List(ctx, editorAccount, "app-1", "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, page, got)
	})

	t.Run("cursor and sort are passed through", func(t *testing.T) {
		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().List(ctx, "app-1", "conv-9", "created_at", 50).
			Return(models.InfiniteScrollPage[models.Conversation]{Limit: 50}, nil)

		_, err := svc.List(ctx, editorAccount, "app-1", "conv-9", "created_at", 50)
		require.NoError(t, err)
	})

	t.Run("limit above the cap falls back to the default", func(t *testing.T) {
		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().List(ctx, "app-1", "", "-updated_at", 20).
			Return(models.InfiniteScrollPage[models.Conversation]{Limit: 20}, nil)

		_, err := svc.List(ctx, editorAccount, "app-1", "", "", 500)
		require.NoError(t, err)
	})

	t.Run("unknown sort_by is rejected before any query", func(t *testing.T) {
		_, err := svc.List(ctx, editorAccount, "app-1", "", "name", 20)
		assert.ErrorIs(t, err, ErrValidationInvalidSortBy)
	})

	t.Run("stale cursor surfaces the sentinel", func(t *testing.T) {
		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().List(ctx, "app-1", "ghost", "-updated_at", 20).
			Return(models.InfiniteScrollPage[models.Conversation]{}, store.ErrLastConversationNotFound)

		_, err := svc.List(ctx, editorAccount, "app-1", "ghost", "", 20)
		assert.ErrorIs(t, err, store.ErrLastConversationNotFound)
	})
}

func TestConversationService_Rename_IsLocalOnly(t *testing.T) {
	convRepo, appRepo, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	t.Run("renames and sends no sync", func(t *testing.T) {
		renamed := models.Conversation{ID: "conv-1", AppID: "app-1", Name: "renamed"}

		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().Rename(ctx, "app-1", "conv-1", "renamed").Return(renamed, nil)

		got, err := svc.Rename(ctx, editorAccount, "app-1", "conv-1", "renamed")
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Rename(ctx, editorAccount, "app-1", "conv-1", "")
		assert.ErrorIs(t, err, ErrValidationNameRequired)
	})

	t.Run("normal role is rejected", func(t *testing.T) {
		viewer := models.Account{AccountID: "acc-2", TenantID: "tenant-1", Role: models.RoleNormal}
		_, err := svc.Rename(ctx, viewer, "app-1", "conv-1", "renamed")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown conversation", func(t *testing.T) {
		expectChatApp(ctx, appRepo, "app-1")
		convRepo.EXPECT().Rename(ctx, "app-1", "ghost", "renamed").
			Return(models.Conversation{}, store.ErrConversationNotFound)

		_, err := svc.Rename(ctx, editorAccount, "app-1", "ghost", "renamed")
		assert.ErrorIs(t, err, store.ErrConversationNotFound)
	})
}

func TestConversationService_Delete_SyncsRemoval(t *testing.T) {
	convRepo, appRepo, notifier, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	gomock.InOrder(
		expectChatApp(ctx, appRepo, "app-1"),
		convRepo.EXPECT().Delete(ctx, "app-1", "conv-1").Return(nil),
		notifier.EXPECT().RemoveConversation(ctx, "conv-1").Return(models.DeliveryResult{Success: true}),
	)

	require.NoError(t, svc.Delete(ctx, editorAccount, "app-1", "conv-1"))
}

func TestConversationService_Delete_NotFoundSendsNoSync(t *testing.T) {
	convRepo, appRepo, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	expectChatApp(ctx, appRepo, "app-1")
	convRepo.EXPECT().Delete(ctx, "app-1", "ghost").Return(store.ErrConversationNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, editorAccount, "app-1", "ghost"), store.ErrConversationNotFound)
}

func TestConversationService_Delete_UnknownAppSendsNoSync(t *testing.T) {
	_, appRepo, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	appRepo.EXPECT().Get(ctx, "tenant-1", "ghost").Return(models.App{}, store.ErrAppNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, editorAccount, "ghost", "conv-1"), store.ErrAppNotFound)
}

func TestConversationService_BulkDelete_MixedIDs(t *testing.T) {
	convRepo, appRepo, notifier, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	expectChatApp(ctx, appRepo, "app-1")

	convRepo.EXPECT().Delete(ctx, "app-1", "conv-1").Return(nil)
	notifier.EXPECT().RemoveConversation(ctx, "conv-1").Return(models.DeliveryResult{Success: true})

	convRepo.EXPECT().Delete(ctx, "app-1", "ghost").Return(store.ErrConversationNotFound)

	convRepo.EXPECT().Delete(ctx, "app-1", "conv-2").Return(nil)
	notifier.EXPECT().RemoveConversation(ctx, "conv-2").Return(models.DeliveryResult{Success: false, StatusCode: 502})

	missing, err := svc.BulkDelete(ctx, editorAccount, "app-1", []string{"conv-1", "ghost", "conv-2"})
	require.NoError(t, err, "missing ids and failed deliveries must not fail the bulk call")
	assert.Equal(t, []string{"ghost"}, missing)
}

func TestConversationService_BulkDelete_StorageErrorAborts(t *testing.T) {
	convRepo, appRepo, notifier, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	expectChatApp(ctx, appRepo, "app-1")

	convRepo.EXPECT().Delete(ctx, "app-1", "conv-1").Return(nil)
	notifier.EXPECT().RemoveConversation(ctx, "conv-1").Return(models.DeliveryResult{Success: true})

	convRepo.EXPECT().Delete(ctx, "app-1", "conv-2").Return(store.ErrExecutingQuery)

	_, err := svc.BulkDelete(ctx, editorAccount, "app-1", []string{"conv-1", "conv-2", "conv-3"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestConversationService_BulkDelete_Validation(t *testing.T) {
	_, _, _, svc := newConversationServiceForTest(t)
	ctx := context.Background()

	t.Run("empty id list", func(t *testing.T) {
		_, err := svc.BulkDelete(ctx, editorAccount, "app-1", nil)
		assert.ErrorIs(t, err, ErrValidationNoConversations)
	})

	t.Run("normal role is rejected", func(t *testing.T) {
		viewer := models.Account{AccountID: "acc-2", TenantID: "tenant-1", Role: models.RoleNormal}
		_, err := svc.BulkDelete(ctx, viewer, "app-1", []string{"conv-1"})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
