// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/store"
	"github.com/appforge/console-server/models"
)

// tagService owns tags and their bindings. Tag creation and renaming are
// local-only; the consumer service learns about a tag the first time one of
// its bindings is synced. Binding creation is idempotent per (tag, target)
// pair and batches every new binding of a request into a single sync call.
type tagService struct {
	tagRepository store.TagRepository
	notifier      consumer.Notifier

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, notifier consumer.Notifier, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		notifier:      notifier,
		logger:        logger,
	}
}

func validTagType(tagType string) bool {
	return tagType == models.TagTypeApp || tagType == models.TagTypeKnowledge
}

func (s *tagService) List(ctx context.Context, account models.Account, tagType string, keyword string) ([]models.TagWithBindingCount, error) {
	if !validTagType(tagType) {
		return nil, ErrValidationInvalidTagType
	}

	return s.tagRepository.ListWithBindingCount(ctx, account.TenantID, tagType, keyword)
}

func (s *tagService) Create(ctx context.Context, account models.Account, req models.CreateTagRequest) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return models.Tag{}, ErrForbidden
	}
	if req.Name == "" {
		return models.Tag{}, ErrValidationNameRequired
	}
	if !validTagType(req.Type) {
		return models.Tag{}, ErrValidationInvalidTagType
	}

	created, err := s.tagRepository.Create(ctx, models.Tag{
		ID:        uuid.NewString(),
		TenantID:  account.TenantID,
		Name:      req.Name,
		Type:      req.Type,
		CreatedBy: account.AccountID,
	})
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return created, nil
}

func (s *tagService) Rename(ctx context.Context, account models.Account, tagID string, name string) (models.Tag, error) {
	if !account.IsEditor() {
		return models.Tag{}, ErrForbidden
	}
	if name == "" {
		return models.Tag{}, ErrValidationNameRequired
	}

	return s.tagRepository.Rename(ctx, account.TenantID, tagID, name)
}

// Delete cascades the tag's bindings locally in one transaction, then issues
// a single tag removal sync. Cascaded bindings are not synced individually.
func (s *tagService) Delete(ctx context.Context, account models.Account, tagID string) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}

	if err := s.tagRepository.DeleteWithBindings(ctx, account.TenantID, tagID); err != nil {
		log.Err(err).Str("tag_id", tagID).Msg("tag deletion ended with error")
		return err
	}

	s.notifier.RemoveTag(ctx, tagID)

	return nil
}

// SaveBindings attaches the requested tags to one target resource.
//
// Pairs that already exist are skipped silently and never re-synced. All
// bindings actually created are batched into exactly one sync call; if every
// pair already existed, no call is made at all.
func (s *tagService) SaveBindings(ctx context.Context, account models.Account, req models.SaveTagBindingsRequest) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}
	if len(req.TagIDs) == 0 {
		return ErrValidationNoTagIDs
	}
	if !validTagType(req.Type) {
		return ErrValidationInvalidTagType
	}

	exists, err := s.tagRepository.TargetExists(ctx, account.TenantID, req.Type, req.TargetID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrTargetNotFound
	}

	pairs := make([]models.TagSyncPair, 0, len(req.TagIDs))
	for _, tagID := range req.TagIDs {
		tag, err := s.tagRepository.Get(ctx, account.TenantID, tagID)
		if err != nil {
			return err
		}

		bound, err := s.tagRepository.BindingExists(ctx, tag.ID, req.TargetID)
		if err != nil {
			return err
		}
		if bound {
			continue
		}

		binding, err := s.tagRepository.CreateBinding(ctx, models.TagBinding{
			ID:        uuid.NewString(),
			TenantID:  account.TenantID,
			TagID:     tag.ID,
			TargetID:  req.TargetID,
			CreatedBy: account.AccountID,
		})
		if errors.Is(err, store.ErrTagBindingExists) {
			// a concurrent request created the same pair between the existence
			// check and the insert; treat it like any pre-existing binding
			continue
		}
		if err != nil {
			log.Err(err).Str("tag_id", tag.ID).Msg("tag binding creation ended with error")
			return fmt.Errorf("tag binding creation ended with error: %w", err)
		}

		pairs = append(pairs, models.TagSyncPair{
			Tag: models.TagSyncRecord{
				ID:       tag.ID,
				Name:     tag.Name,
				Type:     tag.Type,
				TenantID: tag.TenantID,
			},
			TagBinding: models.TagBindingSyncRecord{
				ID:       binding.ID,
				TargetID: binding.TargetID,
				TenantID: binding.TenantID,
				TagID:    binding.TagID,
			},
		})
	}

	if len(pairs) > 0 {
		s.notifier.SyncTagBindings(ctx, pairs)
	}

	return nil
}

// RemoveBinding detaches one tag from one target and syncs the removal.
func (s *tagService) RemoveBinding(ctx context.Context, account models.Account, req models.RemoveTagBindingRequest) error {
	log := logger.FromContext(ctx)

	if !account.IsEditor() {
		return ErrForbidden
	}
	if !validTagType(req.Type) {
		return ErrValidationInvalidTagType
	}

	if _, err := s.tagRepository.Get(ctx, account.TenantID, req.TagID); err != nil {
		return err
	}

	if err := s.tagRepository.DeleteBinding(ctx, req.TagID, req.TargetID); err != nil {
		log.Err(err).Str("tag_id", req.TagID).Str("target_id", req.TargetID).Msg("tag binding deletion ended with error")
		return err
	}

	s.notifier.RemoveTagBinding(ctx, models.TagBindingRemovalPayload{
		TagID:    req.TagID,
		Type:     req.Type,
		TargetID: req.TargetID,
	})

	return nil
}
