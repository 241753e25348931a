package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/models"
)

// conversationSortValues are the accepted sort_by arguments of the
// conversation list; a leading "-" flips the order to descending.
var conversationSortValues = map[string]struct{}{
	"created_at":  {},
	"-created_at": {},
	"updated_at":  {},
	"-updated_at": {},
}

const defaultConversationSort = "-updated_at"

// conversationService manages end-user conversations of chat-mode apps.
// Every operation resolves the app within the caller's tenant first and
// rejects modes without conversations. Deletions are followed by one
// best-effort removal sync; listing and renaming stay local. Bulk deletion is
// lenient and reports overall success even when some ids were never there.
type conversationService struct {
	conversationRepository store.ConversationRepository
	appRepository          store.AppRepository
	notifier               consumer.Notifier

	logger *logger.Logger
}

func NewConversationService(conversationRepository store.ConversationRepository, appRepository store.AppRepository, notifier consumer.Notifier, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversationRepository: conversationRepository,
		appRepository:          appRepository,
		notifier:               notifier,
		logger:                 logger,
	}
}

// chatModeApp resolves the app in the caller's tenant and verifies that its
// mode keeps conversations. Workflow and completion apps have none, so every
// conversation route answers [ErrNotChatApp] for them.
func (s *conversationService) chatModeApp(ctx context.Context, account models.Account, appID string) (models.App, error) {
	app, err := s.appRepository.Get(ctx, account.TenantID, appID)
	if err != nil {
		return models.App{}, err
	}
	if _, ok := models.ChatModes[app.Mode]; !ok {
		return models.App{}, ErrNotChatApp
	}
	return app, nil
}

func (s *conversationService) List(ctx context.Context, account models.Account, appID string, lastID string, sortBy string, limit int) (models.InfiniteScrollPage[models.Conversation], error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if sortBy == "" {
		sortBy = defaultConversationSort
	}
	if _, ok := conversationSortValues[sortBy]; !ok {
		return models.InfiniteScrollPage[models.Conversation]{}, ErrValidationInvalidSortBy
	}

	if _, err := s.chatModeApp(ctx, account, appID); err != nil {
		return models.InfiniteScrollPage[models.Conversation]{}, err
	}

	return s.conversationRepository.List(ctx, appID, lastID, sortBy, limit)
}

// Rename changes the conversation's display name. The consumer service does
// not track conversation names, so no notification is sent.
func (s *conversationService) Rename(ctx context.Context, account models.Account, appID string, conversationID string, name string) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.Conversation{}, ErrForbidden
	}
	if name == "" {
		return models.Conversation{}, ErrValidationNameRequired
	}

	if _, err := s.chatModeApp(ctx, account, appID); err != nil {
		return models.Conversation{}, err
	}

	renamed, err := s.conversationRepository.Rename(ctx, appID, conversationID, name)
	if err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			return models.Conversation{}, err
		}
		log.Err(err).Str("conversation_id", conversationID).Msg("conversation rename ended with error")
		return models.Conversation{}, fmt.Errorf("conversation rename ended with error: %w", err)
	}

	return renamed, nil
}

func (s *conversationService) Delete(ctx context.Context, account models.Account, appID string, conversationID string) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}

	if _, err := s.chatModeApp(ctx, account, appID); err != nil {
		return err
	}

	if err := s.conversationRepository.Delete(ctx, appID, conversationID); err != nil {
		log.Err(err).Str("conversation_id", conversationID).Msg("conversation deletion ended with error")
		return err
	}

	s.notifier.RemoveConversation(ctx, conversationID)

	return nil
}

// BulkDelete removes every listed conversation that exists and returns the
// ids that were not found. Missing ids are collected, not failed on; only an
// unexpected storage error aborts the loop.
func (s *conversationService) BulkDelete(ctx context.Context, account models.Account, appID string, conversationIDs []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return nil, ErrForbidden
	}
	if len(conversationIDs) == 0 {
		return nil, ErrValidationNoConversations
	}

	if _, err := s.chatModeApp(ctx, account, appID); err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for _, id := range conversationIDs {
		err := s.conversationRepository.Delete(ctx, appID, id)
		if errors.Is(err, store.ErrConversationNotFound) {
			log.Info().Str("conversation_id", id).Msg("conversation not found during bulk deletion")
			missing = append(missing, id)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.notifier.RemoveConversation(ctx, id)
	}

	return missing, nil
}
