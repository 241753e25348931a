package consumer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
	"github.com/go-resty/resty/v2"
)

type httpNotifier struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPNotifier constructs the resty-backed [Notifier] from an explicit
// consumer configuration. The base URL, bearer token, and request timeout are
// fixed at construction time; the client never reads ambient process state.
//
// Returns an error if cfg.APIPrefix is empty or cannot be parsed as a valid
// URL.
func NewHTTPNotifier(cfg config.Consumer, logger *logger.Logger) (Notifier, error) {
	baseURL, err := normalizeBaseURL(cfg.APIPrefix)
	if err != nil {
		return nil, fmt.Errorf("invalid consumer api prefix: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json; charset=UTF-8")

	logger.Info().Str("base_url", baseURL).Msg("consumer notifier created")

	return &httpNotifier{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// notify performs one delivery attempt and classifies the outcome.
//
// Success is HTTP 200 exactly. Everything else — transport errors, timeouts,
// and any other status — produces one ERROR log record and a failed
// [models.DeliveryResult]. No error is ever returned to the caller.
func (n *httpNotifier) notify(ctx context.Context, rt route, env models.SyncEnvelope) models.DeliveryResult {
	log := logger.FromContext(ctx)

	req := n.client.R().SetContext(ctx)
	if env.Fields != nil {
		req.SetBody(env.Fields)
	}
	if rt.query != nil {
		req.SetQueryParams(rt.query)
	}

	resp, err := req.Execute(rt.method, rt.path)
	if err != nil {
		log.Error().
			Err(err).
			Str("resource_type", env.ResourceType).
			Str("operation", string(env.Operation)).
			Str("resource_id", env.ResourceID).
			Str("path", rt.path).
			Msg("sync delivery failed")
		return models.DeliveryResult{}
	}

	result := models.DeliveryResult{
		Success:    resp.StatusCode() == http.StatusOK,
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}

	if result.Success {
		log.Info().
			Str("resource_type", env.ResourceType).
			Str("operation", string(env.Operation)).
			Str("resource_id", env.ResourceID).
			Msg("sync delivered")
	} else {
		log.Error().
			Int("status", result.StatusCode).
			Str("resource_type", env.ResourceType).
			Str("operation", string(env.Operation)).
			Str("resource_id", env.ResourceID).
			Str("body", result.Body).
			Msg("sync rejected by consumer")
	}

	return result
}

// SyncApp implements [Notifier]. All app operations, deletion included, go to
// the same endpoint; deletion is signalled by del_flag in the payload.
func (n *httpNotifier) SyncApp(ctx context.Context, app models.App, op models.SyncOperation) models.DeliveryResult {
	return n.notify(ctx, appSyncRoute(), BuildAppEnvelope(app, op))
}

// SyncAPIToken implements [Notifier].
func (n *httpNotifier) SyncAPIToken(ctx context.Context, token models.APIToken) models.DeliveryResult {
	return n.notify(ctx, apiTokenSyncRoute(), BuildAPITokenEnvelope(token))
}

// RemoveAPIToken implements [Notifier]. The key id is carried as a query
// parameter; no body is sent.
func (n *httpNotifier) RemoveAPIToken(ctx context.Context, tokenID string) models.DeliveryResult {
	return n.notify(ctx, apiTokenRemoveRoute(tokenID), BuildAPITokenRemovalEnvelope(tokenID))
}

// SyncAdvertising implements [Notifier].
func (n *httpNotifier) SyncAdvertising(ctx context.Context, ad models.Advertising, op models.SyncOperation) models.DeliveryResult {
	return n.notify(ctx, advertisingSyncRoute(), BuildAdvertisingEnvelope(ad, op))
}

// SyncAdvertisingStatus implements [Notifier].
func (n *httpNotifier) SyncAdvertisingStatus(ctx context.Context, adID string, status string) models.DeliveryResult {
	return n.notify(ctx, advertisingStatusRoute(adID), BuildAdvertisingStatusEnvelope(adID, status))
}

// RemoveAdvertising implements [Notifier].
func (n *httpNotifier) RemoveAdvertising(ctx context.Context, adID string) models.DeliveryResult {
	return n.notify(ctx, advertisingRemoveRoute(adID), BuildAdvertisingRemovalEnvelope(adID))
}

// SyncTagBindings implements [Notifier]. All pairs created within one request
// travel in a single call.
func (n *httpNotifier) SyncTagBindings(ctx context.Context, pairs []models.TagSyncPair) models.DeliveryResult {
	return n.notify(ctx, tagBindingsSyncRoute(), BuildTagBindingsEnvelope(pairs))
}

// RemoveTag implements [Notifier].
func (n *httpNotifier) RemoveTag(ctx context.Context, tagID string) models.DeliveryResult {
	return n.notify(ctx, tagRemoveRoute(tagID), BuildTagRemovalEnvelope(tagID))
}

// RemoveTagBinding implements [Notifier].
func (n *httpNotifier) RemoveTagBinding(ctx context.Context, removal models.TagBindingRemovalPayload) models.DeliveryResult {
	return n.notify(ctx, tagBindingRemoveRoute(), BuildTagBindingRemovalEnvelope(removal))
}

// RemoveConversation implements [Notifier].
func (n *httpNotifier) RemoveConversation(ctx context.Context, conversationID string) models.DeliveryResult {
	return n.notify(ctx, conversationRemoveRoute(conversationID), BuildConversationRemovalEnvelope(conversationID))
}
