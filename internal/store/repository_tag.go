// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

type tagRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] over the tags and
// tag_bindings tables.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

func scanTag(row interface{ Scan(...any) error }) (models.Tag, error) {
	var tag models.Tag
	err := row.Scan(&tag.ID, &tag.TenantID, &tag.Name, &tag.Type, &tag.CreatedBy, &tag.CreatedAt)
	return tag, err
}

// ListWithBindingCount returns the tenant's tags of the given type together
// with the number of resources each tag is bound to.
func (r *tagRepository) ListWithBindingCount(ctx context.Context, tenantID string, tagType string, keyword string) ([]models.TagWithBindingCount, error) {
	log := logger.FromContext(ctx)

	listSQL, args, err := buildTagListQuery(tenantID, tagType, keyword).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListWithBindingCount").Msg("error building tag list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListWithBindingCount").Msg("error listing tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.TagWithBindingCount, 0)
	for rows.Next() {
		var tag models.TagWithBindingCount
		err := rows.Scan(&tag.ID, &tag.TenantID, &tag.Name, &tag.Type,
			&tag.CreatedBy, &tag.CreatedAt, &tag.BindingCount)
		if err != nil {
			log.Err(err).Str("func", "*tagRepository.ListWithBindingCount").Msg("error scanning tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func (r *tagRepository) Get(ctx context.Context, tenantID string, tagID string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag, err := scanTag(r.db.QueryRowContext(ctx, getTag, tenantID, tagID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}
		log.Err(err).Str("func", "*tagRepository.Get").Msg("error scanning tag row")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	created, err := scanTag(r.db.QueryRowContext(ctx, createTag,
		tag.ID, tag.TenantID, tag.Name, tag.Type, tag.CreatedBy,
	))
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.Create").Msg("error creating tag")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *tagRepository) Rename(ctx context.Context, tenantID string, tagID string, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag, err := scanTag(r.db.QueryRowContext(ctx, renameTag, tenantID, tagID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}
		log.Err(err).Str("func", "*tagRepository.Rename").Msg("error renaming tag")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

// DeleteWithBindings removes the tag and every binding that references it in
// one transaction. Returns [ErrTagNotFound] if the tag row did not exist;
// bindings are only removed when the tag deletion itself succeeds.
func (r *tagRepository) DeleteWithBindings(ctx context.Context, tenantID string, tagID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteWithBindings").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteTagBindingsByTag, tagID); err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteWithBindings").Msg("error deleting tag bindings")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, deleteTag, tenantID, tagID)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteWithBindings").Msg("error deleting tag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteWithBindings").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *tagRepository) BindingExists(ctx context.Context, tagID string, targetID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, tagBindingExists, tagID, targetID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*tagRepository.BindingExists").Msg("error checking tag binding")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *tagRepository) CreateBinding(ctx context.Context, binding models.TagBinding) (models.TagBinding, error) {
	log := logger.FromContext(ctx)

	var created models.TagBinding
	err := r.db.QueryRowContext(ctx, createTagBinding,
		binding.ID, binding.TenantID, binding.TagID, binding.TargetID, binding.CreatedBy,
	).Scan(&created.ID, &created.TenantID, &created.TagID, &created.TargetID, &created.CreatedBy, &created.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.TagBinding{}, ErrTagBindingExists
		}
		log.Err(err).Str("func", "*tagRepository.CreateBinding").Msg("error creating tag binding")
		return models.TagBinding{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *tagRepository) DeleteBinding(ctx context.Context, tagID string, targetID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTagBinding, tagID, targetID)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteBinding").Msg("error deleting tag binding")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTagBindingNotFound
	}

	return nil
}

// TargetExists checks the referenced binding target against the table that
// corresponds to the binding type.
func (r *tagRepository) TargetExists(ctx context.Context, tenantID string, targetType string, targetID string) (bool, error) {
	log := logger.FromContext(ctx)

	query := appTargetExists
	if targetType == models.TagTypeKnowledge {
		query = datasetTargetExists
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, tenantID, targetID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*tagRepository.TargetExists").Msg("error checking binding target")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
