package service

import (
	"context"

	"github.com/appforge/console-server/models"
)

// AuthService verifies bearer tokens issued by the identity service and
// resolves them to the acting account. Token issuance lives outside this
// application.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Account, error)
}

// AppService owns the app lifecycle. Every mutation of a synced field set
// issues exactly one best-effort notification to the consumer service after
// the local write succeeds.
type AppService interface {
	List(ctx context.Context, account models.Account, filter models.AppFilter) (models.Page[models.App], error)
	Get(ctx context.Context, account models.Account, appID string) (models.App, error)
	Create(ctx context.Context, account models.Account, req models.CreateAppRequest) (models.App, error)
	Update(ctx context.Context, account models.Account, appID string, req models.UpdateAppRequest) (models.App, error)
	Delete(ctx context.Context, account models.Account, appID string) error
	UpdateStatus(ctx context.Context, account models.Account, appID string, status string) (models.App, error)
	UpdateHidden(ctx context.Context, account models.Account, appID string, isHidden string) (models.App, error)

	// UpdateName and UpdateIcon are local-only mutations: the consumer
	// service does not track these fields between full syncs.
	UpdateName(ctx context.Context, account models.Account, appID string, name string) (models.App, error)
	UpdateIcon(ctx context.Context, account models.Account, appID string, icon, iconBackground string) (models.App, error)

	// UpdateSiteStatus and UpdateAPIStatus toggle the app's published web
	// UI and its service API. Local-only; toggling the API requires an
	// admin or owner role.
	UpdateSiteStatus(ctx context.Context, account models.Account, appID string, enabled bool) (models.App, error)
	UpdateAPIStatus(ctx context.Context, account models.Account, appID string, enabled bool) (models.App, error)

	SetDefaultApp(ctx context.Context, account models.Account, appID string) error
	GetDefaultApp(ctx context.Context, account models.Account) (models.DefaultAppSetting, error)
}

// APITokenService owns service-API key issuance for apps.
type APITokenService interface {
	List(ctx context.Context, account models.Account, appID string) ([]models.APIToken, error)
	Create(ctx context.Context, account models.Account, appID string) (models.APIToken, error)
	Delete(ctx context.Context, account models.Account, appID string, tokenID string) error
}

// AdvertisingService owns platform-wide promotional banners.
type AdvertisingService interface {
	List(ctx context.Context, account models.Account, page int, limit int) (models.Page[models.Advertising], error)
	Get(ctx context.Context, account models.Account, adID string) (models.Advertising, error)
	Create(ctx context.Context, account models.Account, req models.CreateAdvertisingRequest) (models.Advertising, error)
	Update(ctx context.Context, account models.Account, adID string, req models.UpdateAdvertisingRequest) (models.Advertising, error)
	UpdateStatus(ctx context.Context, account models.Account, adID string, status string) (models.Advertising, error)
	Delete(ctx context.Context, account models.Account, adID string) error
}

// TagService owns tags and their bindings to apps and knowledge datasets.
type TagService interface {
	List(ctx context.Context, account models.Account, tagType string, keyword string) ([]models.TagWithBindingCount, error)
	Create(ctx context.Context, account models.Account, req models.CreateTagRequest) (models.Tag, error)
	Rename(ctx context.Context, account models.Account, tagID string, name string) (models.Tag, error)
	Delete(ctx context.Context, account models.Account, tagID string) error

	SaveBindings(ctx context.Context, account models.Account, req models.SaveTagBindingsRequest) error
	RemoveBinding(ctx context.Context, account models.Account, req models.RemoveTagBindingRequest) error
}

// ConversationService owns end-user conversations of chat-mode apps. Every
// operation verifies that the app belongs to the caller's tenant and that its
// mode keeps conversations at all.
type ConversationService interface {
	// List returns one keyset page of the app's conversations, starting
	// after lastID when it is set. Listing and renaming are local-only; the
	// consumer service learns about conversations only when they are
	// deleted.
	List(ctx context.Context, account models.Account, appID string, lastID string, sortBy string, limit int) (models.InfiniteScrollPage[models.Conversation], error)
	Rename(ctx context.Context, account models.Account, appID string, conversationID string, name string) (models.Conversation, error)
	Delete(ctx context.Context, account models.Account, appID string, conversationID string) error

	// BulkDelete deletes every listed conversation that exists and returns
	// the ids that were not found. Missing ids never fail the call.
	BulkDelete(ctx context.Context, account models.Account, appID string, conversationIDs []string) ([]string, error)
}
