package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/console-server/models"
)

func TestResolveSyncIcon(t *testing.T) {
	tests := []struct {
		name     string
		icon     string
		iconType models.IconType
		want     string
	}{
		{name: "image icon is propagated", icon: "https://cdn.example.com/icon.png", iconType: models.IconTypeImage, want: "https://cdn.example.com/icon.png"},
		{name: "emoji icon syncs empty", icon: "🤖", iconType: models.IconTypeEmoji, want: ""},
		{name: "unknown icon type syncs empty", icon: "whatever", iconType: models.IconType("sticker"), want: ""},
		{name: "empty image icon stays empty", icon: "", iconType: models.IconTypeImage, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSyncIcon(tt.icon, tt.iconType))
		})
	}
}

func TestBuildAppEnvelope(t *testing.T) {
	app := models.App{
		ID:          "app-1",
		TenantID:    "tenant-1",
		Name:        "support bot",
		Mode:        models.AppModeChat,
		Description: "answers tickets",
		Status:      models.AppStatusNormal,
		IsHidden:    models.AppDisplay,
		Icon:        "🤖",
		IconType:    models.IconTypeEmoji,
	}

	t.Run("update carries full field set without del_flag", func(t *testing.T) {
		env := BuildAppEnvelope(app, models.SyncOpUpdate)

		require.Equal(t, models.SyncResourceApp, env.ResourceType)
		assert.Equal(t, "app-1", env.ResourceID)
		assert.Equal(t, "tenant-1", env.TenantID)
		assert.False(t, env.Deleted)

		payload, ok := env.Fields.(models.AppSyncPayload)
		require.True(t, ok)
		assert.False(t, payload.DelFlag)
		assert.Equal(t, "support bot", payload.Name)
		assert.Equal(t, models.AppModeChat, payload.Mode)
		assert.Empty(t, payload.Icon, "emoji icon must not leave the console")
	})

	t.Run("delete sets del_flag", func(t *testing.T) {
		env := BuildAppEnvelope(app, models.SyncOpDelete)

		assert.True(t, env.Deleted)
		payload, ok := env.Fields.(models.AppSyncPayload)
		require.True(t, ok)
		assert.True(t, payload.DelFlag)
	})

	t.Run("image icon is propagated", func(t *testing.T) {
		imageApp := app
		imageApp.Icon = "https://cdn.example.com/bot.png"
		imageApp.IconType = models.IconTypeImage

		env := BuildAppEnvelope(imageApp, models.SyncOpCreate)
		payload := env.Fields.(models.AppSyncPayload)
		assert.Equal(t, "https://cdn.example.com/bot.png", payload.Icon)
	})
}

func TestBuildAPITokenEnvelope(t *testing.T) {
	token := models.APIToken{
		ID:       "key-1",
		TenantID: "tenant-1",
		AppID:    "app-1",
		Type:     "app",
		Token:    "app-abcdefghijklmnopqrstuvwx",
	}

	env := BuildAPITokenEnvelope(token)

	require.Equal(t, models.SyncResourceAPIToken, env.ResourceType)
	payload, ok := env.Fields.(models.APITokenSyncPayload)
	require.True(t, ok)
	assert.Equal(t, "app-abcdefghijklmnopqrstuvwx", payload.Token, "full secret travels on creation")
	assert.Equal(t, "app-1", payload.AppID)
}

func TestBuildAPITokenRemovalEnvelope(t *testing.T) {
	env := BuildAPITokenRemovalEnvelope("key-1")

	assert.True(t, env.Deleted)
	assert.Equal(t, "key-1", env.ResourceID)
	assert.Nil(t, env.Fields, "removal carries only the id")
}

func TestBuildAdvertisingEnvelope(t *testing.T) {
	ad := models.Advertising{
		ID:          "ad-1",
		Weigh:       5,
		Icon:        "https://cdn.example.com/banner.png",
		IconType:    models.IconTypeImage,
		StartedTime: "2026-01-01 00:00:00",
		EndedTime:   "2026-02-01 00:00:00",
		RedirectURL: "https://example.com",
		Status:      models.AppStatusNormal,
	}

	env := BuildAdvertisingEnvelope(ad, models.SyncOpCreate)

	payload, ok := env.Fields.(models.AdvertisingSyncPayload)
	require.True(t, ok)
	assert.Equal(t, 5, payload.Weigh)
	assert.Equal(t, "https://cdn.example.com/banner.png", payload.Icon)
	assert.Equal(t, "2026-01-01 00:00:00", payload.StartedTime)
}

func TestBuildTagBindingsEnvelope(t *testing.T) {
	t.Run("batch adopts first pair identifiers", func(t *testing.T) {
		pairs := []models.TagSyncPair{
			{
				Tag:        models.TagSyncRecord{ID: "tag-1", Name: "prod", Type: "app", TenantID: "tenant-1"},
				TagBinding: models.TagBindingSyncRecord{ID: "b-1", TargetID: "app-1", TenantID: "tenant-1", TagID: "tag-1"},
			},
			{
				Tag:        models.TagSyncRecord{ID: "tag-2", Name: "beta", Type: "app", TenantID: "tenant-1"},
				TagBinding: models.TagBindingSyncRecord{ID: "b-2", TargetID: "app-1", TenantID: "tenant-1", TagID: "tag-2"},
			},
		}

		env := BuildTagBindingsEnvelope(pairs)

		assert.Equal(t, models.SyncResourceTagBinding, env.ResourceType)
		assert.Equal(t, "app-1", env.ResourceID)
		assert.Equal(t, "tenant-1", env.TenantID)

		got, ok := env.Fields.([]models.TagSyncPair)
		require.True(t, ok)
		assert.Len(t, got, 2)
	})

	t.Run("empty batch builds an addressless envelope", func(t *testing.T) {
		env := BuildTagBindingsEnvelope(nil)
		assert.Empty(t, env.ResourceID)
		assert.Empty(t, env.TenantID)
	})
}

func TestBuildTagBindingRemovalEnvelope(t *testing.T) {
	removal := models.TagBindingRemovalPayload{TagID: "tag-1", Type: "app", TargetID: "app-1"}

	env := BuildTagBindingRemovalEnvelope(removal)

	assert.True(t, env.Deleted)
	assert.Equal(t, removal, env.Fields)
}

func TestBuildConversationRemovalEnvelope(t *testing.T) {
	env := BuildConversationRemovalEnvelope("conv-1")

	assert.True(t, env.Deleted)
	assert.Equal(t, "conv-1", env.ResourceID)
	assert.Nil(t, env.Fields)
}
