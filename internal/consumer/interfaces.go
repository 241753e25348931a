package consumer

import (
	"context"

	"github.com/appforge/console-server/models"
)

// Notifier delivers sync notifications to the consumer admin service.
//
// Implementations never return an error: delivery failures of any kind are
// absorbed into the returned [models.DeliveryResult] and logged. Callers must
// not let the result influence the response of the mutation that produced the
// notification.
type Notifier interface {
	SyncApp(ctx context.Context, app models.App, op models.SyncOperation) models.DeliveryResult

	SyncAPIToken(ctx context.Context, token models.APIToken) models.DeliveryResult
	RemoveAPIToken(ctx context.Context, tokenID string) models.DeliveryResult

	SyncAdvertising(ctx context.Context, ad models.Advertising, op models.SyncOperation) models.DeliveryResult
	SyncAdvertisingStatus(ctx context.Context, adID string, status string) models.DeliveryResult
	RemoveAdvertising(ctx context.Context, adID string) models.DeliveryResult

	SyncTagBindings(ctx context.Context, pairs []models.TagSyncPair) models.DeliveryResult
	RemoveTag(ctx context.Context, tagID string) models.DeliveryResult
	RemoveTagBinding(ctx context.Context, removal models.TagBindingRemovalPayload) models.DeliveryResult

	RemoveConversation(ctx context.Context, conversationID string) models.DeliveryResult
}
