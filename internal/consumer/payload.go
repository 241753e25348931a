package consumer

import (
	"fmt"
	"net/http"

	"github.com/appforge/console-server/models"
)

// route describes one consumer-service endpoint: the HTTP verb, the path
// relative to the configured API prefix, and optional query parameters.
type route struct {
	method string
	path   string
	query  map[string]string
}

func appSyncRoute() route {
	return route{method: http.MethodPost, path: "/admin/apps/sync"}
}

func apiTokenSyncRoute() route {
	return route{method: http.MethodPost, path: "/admin/api_token/sync"}
}

func apiTokenRemoveRoute(tokenID string) route {
	return route{
		method: http.MethodDelete,
		path:   "/admin/api_token/sync/remove",
		query:  map[string]string{"id": tokenID},
	}
}

func advertisingSyncRoute() route {
	return route{method: http.MethodPost, path: "/admin/advertising/sync"}
}

func advertisingStatusRoute(adID string) route {
	return route{method: http.MethodPut, path: fmt.Sprintf("/admin/advertising/sync/%s/status", adID)}
}

func advertisingRemoveRoute(adID string) route {
	return route{method: http.MethodDelete, path: fmt.Sprintf("/admin/advertising/sync/%s/delete", adID)}
}

func tagBindingsSyncRoute() route {
	return route{method: http.MethodPost, path: "/admin/tags/sync"}
}

func tagRemoveRoute(tagID string) route {
	return route{method: http.MethodDelete, path: fmt.Sprintf("/admin/tags/sync/delete/%s", tagID)}
}

func tagBindingRemoveRoute() route {
	return route{method: http.MethodDelete, path: "/admin/tags/sync/delete/binding"}
}

func conversationRemoveRoute(conversationID string) route {
	return route{method: http.MethodDelete, path: fmt.Sprintf("/admin/apps/delete/conversation/%s", conversationID)}
}

// ResolveSyncIcon returns the icon value propagated to the consumer service.
// Only uploaded image icons are shared; any other icon type syncs as an empty
// string regardless of the stored value.
func ResolveSyncIcon(icon string, iconType models.IconType) string {
	if iconType == models.IconTypeImage {
		return icon
	}
	return ""
}

// BuildAppEnvelope maps an app snapshot and operation to its sync envelope.
// Delete operations set del_flag; every other operation carries the full
// current field set with del_flag false.
func BuildAppEnvelope(app models.App, op models.SyncOperation) models.SyncEnvelope {
	deleted := op == models.SyncOpDelete

	return models.SyncEnvelope{
		ResourceType: models.SyncResourceApp,
		Operation:    op,
		ResourceID:   app.ID,
		TenantID:     app.TenantID,
		Deleted:      deleted,
		Fields: models.AppSyncPayload{
			TenantID:    app.TenantID,
			AppID:       app.ID,
			DelFlag:     deleted,
			Name:        app.Name,
			Status:      app.Status,
			IsHidden:    app.IsHidden,
			Icon:        ResolveSyncIcon(app.Icon, app.IconType),
			Description: app.Description,
			Mode:        app.Mode,
		},
	}
}

// BuildAPITokenEnvelope maps a freshly created API token to its sync
// envelope. The secret token value is part of the payload: the consumer
// service needs it to authenticate service-API calls on its side.
func BuildAPITokenEnvelope(token models.APIToken) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceAPIToken,
		Operation:    models.SyncOpCreate,
		ResourceID:   token.ID,
		TenantID:     token.TenantID,
		Fields: models.APITokenSyncPayload{
			ID:       token.ID,
			Type:     token.Type,
			Token:    token.Token,
			TenantID: token.TenantID,
			AppID:    token.AppID,
		},
	}
}

// BuildAPITokenRemovalEnvelope maps a deleted API token id to its sync
// envelope. Only the identifier is carried; the id travels as a query
// parameter, so Fields is nil.
func BuildAPITokenRemovalEnvelope(tokenID string) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceAPIToken,
		Operation:    models.SyncOpDelete,
		ResourceID:   tokenID,
		Deleted:      true,
	}
}

// BuildAdvertisingEnvelope maps a banner snapshot and operation to its sync
// envelope carrying the full record.
func BuildAdvertisingEnvelope(ad models.Advertising, op models.SyncOperation) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceAdvertising,
		Operation:    op,
		ResourceID:   ad.ID,
		Fields: models.AdvertisingSyncPayload{
			ID:          ad.ID,
			Weigh:       ad.Weigh,
			Icon:        ResolveSyncIcon(ad.Icon, ad.IconType),
			StartedTime: ad.StartedTime,
			EndedTime:   ad.EndedTime,
			RedirectURL: ad.RedirectURL,
			Status:      ad.Status,
		},
	}
}

// BuildAdvertisingStatusEnvelope maps a banner status change to its sync
// envelope carrying only the new status.
func BuildAdvertisingStatusEnvelope(adID string, status string) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceAdvertising,
		Operation:    models.SyncOpStatusChange,
		ResourceID:   adID,
		Fields:       models.AdvertisingStatusPayload{Status: status},
	}
}

// BuildAdvertisingRemovalEnvelope maps a deleted banner id to its sync
// envelope. The id travels in the URL path, so Fields is nil.
func BuildAdvertisingRemovalEnvelope(adID string) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceAdvertising,
		Operation:    models.SyncOpDelete,
		ResourceID:   adID,
		Deleted:      true,
	}
}

// BuildTagBindingsEnvelope maps the batch of bindings created within one
// request to a single sync envelope.
func BuildTagBindingsEnvelope(pairs []models.TagSyncPair) models.SyncEnvelope {
	env := models.SyncEnvelope{
		ResourceType: models.SyncResourceTagBinding,
		Operation:    models.SyncOpCreate,
		Fields:       pairs,
	}

	if len(pairs) > 0 {
		env.ResourceID = pairs[0].TagBinding.TargetID
		env.TenantID = pairs[0].Tag.TenantID
	}

	return env
}

// BuildTagRemovalEnvelope maps a deleted tag id to its sync envelope. Binding
// cleanup caused by the cascade is not synced individually.
func BuildTagRemovalEnvelope(tagID string) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceTag,
		Operation:    models.SyncOpDelete,
		ResourceID:   tagID,
		Deleted:      true,
	}
}

// BuildTagBindingRemovalEnvelope maps a single binding removal to its sync
// envelope.
func BuildTagBindingRemovalEnvelope(removal models.TagBindingRemovalPayload) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceTagBinding,
		Operation:    models.SyncOpDelete,
		ResourceID:   removal.TargetID,
		Deleted:      true,
		Fields:       removal,
	}
}

// BuildConversationRemovalEnvelope maps a deleted conversation id to its sync
// envelope. The id travels in the URL path, so Fields is nil.
func BuildConversationRemovalEnvelope(conversationID string) models.SyncEnvelope {
	return models.SyncEnvelope{
		ResourceType: models.SyncResourceConversation,
		Operation:    models.SyncOpDelete,
		ResourceID:   conversationID,
		Deleted:      true,
	}
}
