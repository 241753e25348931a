// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/models"
)

func TestTagRepository_DeleteWithBindings(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades bindings and commits", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTagRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec(deleteTagBindingsByTag).
			WithArgs("tag-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(deleteTag).
			WithArgs("tenant-1", "tag-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteWithBindings(ctx, "tenant-1", "tag-1"))
	})

	t.Run("missing tag rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTagRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec(deleteTagBindingsByTag).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(deleteTag).
			WithArgs("tenant-1", "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeleteWithBindings(ctx, "tenant-1", "ghost"), ErrTagNotFound)
	})

	t.Run("binding deletion failure rolls back before touching the tag", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTagRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec(deleteTagBindingsByTag).
			WithArgs("tag-1").
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeleteWithBindings(ctx, "tenant-1", "tag-1"), ErrExecutingQuery)
	})
}

func TestTagRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTagRepository(db, logger.Nop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(getTag).
			WithArgs("tenant-1", "tag-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "type", "created_by", "created_at"}).
				AddRow("tag-1", "tenant-1", "prod", models.TagTypeApp, "acc-1", time.Now()))

		tag, err := repo.Get(ctx, "tenant-1", "tag-1")
		require.NoError(t, err)
		assert.Equal(t, "prod", tag.Name)
	})

	t.Run("missing row maps to sentinel", func(t *testing.T) {
		mock.ExpectQuery(getTag).
			WithArgs("tenant-1", "ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, "tenant-1", "ghost")
		assert.ErrorIs(t, err, ErrTagNotFound)
	})
}

func TestTagRepository_BindingExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTagRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery(tagBindingExists).
		WithArgs("tag-1", "app-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.BindingExists(ctx, "tag-1", "app-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTagRepository_TargetExists_PicksTableByType(t *testing.T) {
	ctx := context.Background()

	t.Run("app binding checks apps", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTagRepository(db, logger.Nop())

		mock.ExpectQuery(appTargetExists).
			WithArgs("tenant-1", "app-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.TargetExists(ctx, "tenant-1", models.TagTypeApp, "app-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("knowledge binding checks datasets", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewTagRepository(db, logger.Nop())

		mock.ExpectQuery(datasetTargetExists).
			WithArgs("tenant-1", "ds-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.TargetExists(ctx, "tenant-1", models.TagTypeKnowledge, "ds-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTagRepository_DeleteBinding(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewTagRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectExec(deleteTagBinding).
		WithArgs("tag-1", "app-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteBinding(ctx, "tag-1", "app-1"), ErrTagBindingNotFound)
}
