package store

import (
	"context"

	"github.com/appforge/console-server/models"
)

type AppRepository interface {
	List(ctx context.Context, tenantID string, filter models.AppFilter) (models.Page[models.App], error)
	Get(ctx context.Context, tenantID string, appID string) (models.App, error)
	Create(ctx context.Context, app models.App) (models.App, error)
	Update(ctx context.Context, app models.App) (models.App, error)
	Delete(ctx context.Context, tenantID string, appID string) error
	UpdateStatus(ctx context.Context, tenantID string, appID string, status string) (models.App, error)
	UpdateHidden(ctx context.Context, tenantID string, appID string, isHidden string) (models.App, error)
	UpdateName(ctx context.Context, tenantID string, appID string, name string) (models.App, error)
	UpdateIcon(ctx context.Context, tenantID string, appID string, icon, iconBackground string) (models.App, error)
	UpdateSiteStatus(ctx context.Context, tenantID string, appID string, enabled bool) (models.App, error)
	UpdateAPIStatus(ctx context.Context, tenantID string, appID string, enabled bool) (models.App, error)
}

type APITokenRepository interface {
	ListByApp(ctx context.Context, appID string, tokenType string) ([]models.APIToken, error)
	CountByApp(ctx context.Context, appID string, tokenType string) (int, error)
	Create(ctx context.Context, token models.APIToken) (models.APIToken, error)
	Get(ctx context.Context, appID string, tokenType string, tokenID string) (models.APIToken, error)
	Delete(ctx context.Context, tokenID string) error
}

type AdvertisingRepository interface {
	List(ctx context.Context, page int, limit int) (models.Page[models.Advertising], error)
	Get(ctx context.Context, adID string) (models.Advertising, error)
	Create(ctx context.Context, ad models.Advertising) (models.Advertising, error)
	Update(ctx context.Context, ad models.Advertising) (models.Advertising, error)
	UpdateStatus(ctx context.Context, adID string, status string) (models.Advertising, error)
	Delete(ctx context.Context, adID string) error
}

type TagRepository interface {
	ListWithBindingCount(ctx context.Context, tenantID string, tagType string, keyword string) ([]models.TagWithBindingCount, error)
	Get(ctx context.Context, tenantID string, tagID string) (models.Tag, error)
	Create(ctx context.Context, tag models.Tag) (models.Tag, error)
	Rename(ctx context.Context, tenantID string, tagID string, name string) (models.Tag, error)
	// DeleteWithBindings removes the tag and all of its bindings in one
	// transaction.
	DeleteWithBindings(ctx context.Context, tenantID string, tagID string) error

	BindingExists(ctx context.Context, tagID string, targetID string) (bool, error)
	CreateBinding(ctx context.Context, binding models.TagBinding) (models.TagBinding, error)
	DeleteBinding(ctx context.Context, tagID string, targetID string) error

	// TargetExists reports whether the binding target (an app or a knowledge
	// dataset, depending on targetType) exists in the tenant.
	TargetExists(ctx context.Context, tenantID string, targetType string, targetID string) (bool, error)
}

type ConversationRepository interface {
	Get(ctx context.Context, appID string, conversationID string) (models.Conversation, error)
	// List returns one keyset page of the app's conversations ordered by
	// sortBy ("created_at", "-created_at", "updated_at", "-updated_at"),
	// starting after the conversation identified by lastID when it is set.
	List(ctx context.Context, appID string, lastID string, sortBy string, limit int) (models.InfiniteScrollPage[models.Conversation], error)
	Rename(ctx context.Context, appID string, conversationID string, name string) (models.Conversation, error)
	Delete(ctx context.Context, appID string, conversationID string) error
}

// DefaultAppCache stores the workspace default-app setting in Redis.
type DefaultAppCache interface {
	Set(ctx context.Context, setting models.DefaultAppSetting) error
	Get(ctx context.Context) (models.DefaultAppSetting, error)
}
