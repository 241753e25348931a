// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package models

// SyncOperation identifies the kind of local mutation a sync notification
// describes. Together with the resource type it selects the HTTP verb and
// endpoint of the consumer-service call.
type SyncOperation string

const (
	SyncOpCreate       SyncOperation = "create"
	SyncOpUpdate       SyncOperation = "update"
	SyncOpDelete       SyncOperation = "delete"
	SyncOpStatusChange SyncOperation = "status_change"
)

// Resource types carried in sync envelopes.
const (
	SyncResourceApp          = "app"
	SyncResourceAPIToken     = "api_token"
	SyncResourceAdvertising  = "advertising"
	SyncResourceTag          = "tag"
	SyncResourceTagBinding   = "tag_binding"
	SyncResourceConversation = "conversation"
)

// SyncEnvelope is the unit of outbound synchronization. It is built by the
// payload builders strictly after the local mutation has committed, handed to
// the consumer client, and discarded — envelopes are never persisted and
// carry no delivery state.
//
// Fields holds the resource-specific wire body expected by the consumer
// service; for delete operations that address the resource through the URL
// it may be nil.
type SyncEnvelope struct {
	// ResourceType is one of the SyncResource* constants.
	ResourceType string `json:"resource_type"`

	// Operation is the mutation kind that produced this envelope.
	Operation SyncOperation `json:"operation"`

	// ResourceID is the stable identifier of the mutated resource.
	ResourceID string `json:"resource_id"`

	// TenantID scopes the resource to its owning workspace. Empty for
	// tenant-independent resources (advertising).
	TenantID string `json:"tenant_id"`

	// Fields is the wire body sent to the consumer service. Its shape is
	// fixed per resource type; there is no field negotiation.
	Fields any `json:"fields"`

	// Deleted marks envelopes produced by delete operations.
	Deleted bool `json:"deleted"`
}

// DeliveryResult reports the outcome of a single consumer-service call.
// Delivery is best-effort: the caller receives the result for observability
// but the local mutation's response never depends on it.
type DeliveryResult struct {
	// Success is true iff the consumer service answered HTTP 200.
	Success bool

	// StatusCode is the HTTP status of the response, or 0 when the request
	// never reached the consumer (connection error, timeout).
	StatusCode int

	// Body is the raw response body, kept for log inspection only.
	Body string
}

// AppSyncPayload is the wire body for app create/update/delete/status/hidden
// notifications. DelFlag is true only for deletions; Icon is empty unless the
// app uses an image icon.
type AppSyncPayload struct {
	TenantID    string  `json:"tenant_id"`
	AppID       string  `json:"app_id"`
	DelFlag     bool    `json:"del_flag"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	IsHidden    string  `json:"is_hidden"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Mode        AppMode `json:"mode"`
}

// APITokenSyncPayload carries the full token record, including the secret
// token value, to the consumer service on creation.
type APITokenSyncPayload struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Token    string `json:"token"`
	TenantID string `json:"tenant_id"`
	AppID    string `json:"app_id"`
}

// AdvertisingSyncPayload is the wire body for banner create/update
// notifications.
type AdvertisingSyncPayload struct {
	ID          string `json:"id"`
	Weigh       int    `json:"weigh"`
	Icon        string `json:"icon"`
	StartedTime string `json:"started_time"`
	EndedTime   string `json:"ended_time"`
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
}

// AdvertisingStatusPayload is the wire body for banner status changes.
type AdvertisingStatusPayload struct {
	Status string `json:"status"`
}

// TagSyncPair couples a tag with one freshly created binding. Binding
// creation batches every new pair of a request into a single notification.
type TagSyncPair struct {
	Tag        TagSyncRecord        `json:"tag"`
	TagBinding TagBindingSyncRecord `json:"tag_binding"`
}

// TagSyncRecord is the tag part of a TagSyncPair.
type TagSyncRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	TenantID string `json:"tenant_id"`
}

// TagBindingSyncRecord is the binding part of a TagSyncPair.
type TagBindingSyncRecord struct {
	ID       string `json:"id"`
	TargetID string `json:"target_id"`
	TenantID string `json:"tenant_id"`
	TagID    string `json:"tag_id"`
}

// TagBindingRemovalPayload is the wire body for a single binding removal.
type TagBindingRemovalPayload struct {
	TagID    string `json:"tag_id"`
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
}
