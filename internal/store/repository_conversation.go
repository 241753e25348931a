package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewConversationRepository constructs a [ConversationRepository] over the
// conversations table.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

func scanConversation(row interface{ Scan(...any) error }) (models.Conversation, error) {
	var conv models.Conversation
	err := row.Scan(&conv.ID, &conv.AppID, &conv.Name, &conv.FromUser, &conv.CreatedAt, &conv.UpdatedAt)
	return conv, err
}

// Get retrieves one conversation scoped to its app. Returns
// [ErrConversationNotFound] if no row matched.
func (r *conversationRepository) Get(ctx context.Context, appID string, conversationID string) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	conv, err := scanConversation(r.db.QueryRowContext(ctx, getConversation, appID, conversationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Conversation{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.Get").Msg("error scanning conversation row")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return conv, nil
}

// List returns one keyset page of the app's conversations. When lastID is
// set, the page starts after that conversation in the requested order; a
// lastID that matches no row maps to [ErrLastConversationNotFound]. One row
// beyond the limit is fetched to compute has_more.
func (r *conversationRepository) List(ctx context.Context, appID string, lastID string, sortBy string, limit int) (models.InfiniteScrollPage[models.Conversation], error) {
	log := logger.FromContext(ctx)

	var pivot *models.Conversation
	if lastID != "" {
		last, err := r.Get(ctx, appID, lastID)
		if errors.Is(err, ErrConversationNotFound) {
			return models.InfiniteScrollPage[models.Conversation]{}, ErrLastConversationNotFound
		}
		if err != nil {
			return models.InfiniteScrollPage[models.Conversation]{}, err
		}
		pivot = &last
	}

	listSQL, listArgs, err := buildConversationListQuery(appID, sortBy, pivot, limit).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.List").Msg("error building conversation list query")
		return models.InfiniteScrollPage[models.Conversation]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.List").Msg("error executing conversation list query")
		return models.InfiniteScrollPage[models.Conversation]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0, limit)
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			log.Err(err).Str("func", "*conversationRepository.List").Msg("error scanning conversation row")
			return models.InfiniteScrollPage[models.Conversation]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return models.InfiniteScrollPage[models.Conversation]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	hasMore := len(conversations) > limit
	if hasMore {
		conversations = conversations[:limit]
	}

	return models.InfiniteScrollPage[models.Conversation]{
		Data:    conversations,
		Limit:   limit,
		HasMore: hasMore,
	}, nil
}

// Rename replaces the conversation's name and returns the updated row.
// Returns [ErrConversationNotFound] if no row matched.
func (r *conversationRepository) Rename(ctx context.Context, appID string, conversationID string, name string) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	conv, err := scanConversation(r.db.QueryRowContext(ctx, renameConversation, appID, conversationID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Conversation{}, ErrConversationNotFound
		}
		log.Err(err).Str("func", "*conversationRepository.Rename").Msg("error renaming conversation")
		return models.Conversation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return conv, nil
}

// Delete removes one conversation scoped to its app. Returns
// [ErrConversationNotFound] if no row matched so the service layer can
// collect missing ids during bulk deletion.
func (r *conversationRepository) Delete(ctx context.Context, appID string, conversationID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteConversation, appID, conversationID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.Delete").Msg("error deleting conversation")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrConversationNotFound
	}

	return nil
}
