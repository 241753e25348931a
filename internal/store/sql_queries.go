package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/appforge/console-server/models"
)

const (
	appColumns = `id, tenant_id, name, mode, description, status, is_hidden, enable_site, enable_api, icon, icon_type, icon_background, created_by, created_at, updated_at`

	createApp = `INSERT INTO apps (id, tenant_id, name, mode, description, status, is_hidden, icon, icon_type, icon_background, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + appColumns + `;`

	getApp = `SELECT ` + appColumns + `
    FROM apps
    WHERE tenant_id = $1 AND id = $2;`

	updateApp = `UPDATE apps
    SET name = $3, description = $4, icon = $5, icon_type = $6, icon_background = $7, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	deleteApp = `DELETE FROM apps
    WHERE tenant_id = $1 AND id = $2;`

	updateAppStatus = `UPDATE apps
    SET status = $3, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	updateAppHidden = `UPDATE apps
    SET is_hidden = $3, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	updateAppName = `UPDATE apps
    SET name = $3, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	updateAppIcon = `UPDATE apps
    SET icon = $3, icon_background = $4, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	updateAppSiteStatus = `UPDATE apps
    SET enable_site = $3, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`

	updateAppAPIStatus = `UPDATE apps
    SET enable_api = $3, updated_at = NOW()
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + appColumns + `;`
)

const (
	apiTokenColumns = `id, tenant_id, app_id, type, token, last_used_at, created_at`

	listAPITokens = `SELECT ` + apiTokenColumns + `
    FROM api_tokens
    WHERE app_id = $1 AND type = $2
    ORDER BY created_at DESC;`

	countAPITokens = `SELECT COUNT(*)
    FROM api_tokens
    WHERE app_id = $1 AND type = $2;`

	createAPIToken = `INSERT INTO api_tokens (id, tenant_id, app_id, type, token)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + apiTokenColumns + `;`

	getAPIToken = `SELECT ` + apiTokenColumns + `
    FROM api_tokens
    WHERE app_id = $1 AND type = $2 AND id = $3;`

	deleteAPIToken = `DELETE FROM api_tokens
    WHERE id = $1;`
)

const (
	advertisingColumns = `id, name, weigh, icon, icon_type, started_time, ended_time, redirect_url, status, created_by, updated_by, created_at, updated_at`

	listAdvertising = `SELECT ` + advertisingColumns + `
    FROM advertising
    ORDER BY id DESC
    LIMIT $1 OFFSET $2;`

	countAdvertising = `SELECT COUNT(*) FROM advertising;`

	getAdvertising = `SELECT ` + advertisingColumns + `
    FROM advertising
    WHERE id = $1;`

	createAdvertising = `INSERT INTO advertising (id, name, weigh, icon, icon_type, started_time, ended_time, redirect_url, status, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + advertisingColumns + `;`

	updateAdvertising = `UPDATE advertising
    SET name = $2, weigh = $3, icon = $4, started_time = $5, ended_time = $6, redirect_url = $7, updated_by = $8, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + advertisingColumns + `;`

	updateAdvertisingStatus = `UPDATE advertising
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + advertisingColumns + `;`

	deleteAdvertising = `DELETE FROM advertising
    WHERE id = $1;`
)

const (
	tagColumns = `id, tenant_id, name, type, created_by, created_at`

	getTag = `SELECT ` + tagColumns + `
    FROM tags
    WHERE tenant_id = $1 AND id = $2;`

	createTag = `INSERT INTO tags (id, tenant_id, name, type, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + tagColumns + `;`

	renameTag = `UPDATE tags
    SET name = $3
    WHERE tenant_id = $1 AND id = $2
    RETURNING ` + tagColumns + `;`

	deleteTagBindingsByTag = `DELETE FROM tag_bindings
    WHERE tag_id = $1;`

	deleteTag = `DELETE FROM tags
    WHERE tenant_id = $1 AND id = $2;`

	tagBindingExists = `SELECT EXISTS (
        SELECT 1 FROM tag_bindings WHERE tag_id = $1 AND target_id = $2
    );`

	createTagBinding = `INSERT INTO tag_bindings (id, tenant_id, tag_id, target_id, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, tenant_id, tag_id, target_id, created_by, created_at;`

	deleteTagBinding = `DELETE FROM tag_bindings
    WHERE tag_id = $1 AND target_id = $2;`

	appTargetExists = `SELECT EXISTS (
        SELECT 1 FROM apps WHERE tenant_id = $1 AND id = $2
    );`

	datasetTargetExists = `SELECT EXISTS (
        SELECT 1 FROM datasets WHERE tenant_id = $1 AND id = $2
    );`
)

const (
	conversationColumns = `id, app_id, name, from_user, created_at, updated_at`

	getConversation = `SELECT ` + conversationColumns + `
    FROM conversations
    WHERE app_id = $1 AND id = $2;`

	renameConversation = `UPDATE conversations
    SET name = $3, updated_at = NOW()
    WHERE app_id = $1 AND id = $2
    RETURNING ` + conversationColumns + `;`

	deleteConversation = `DELETE FROM conversations
    WHERE app_id = $1 AND id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. Used for queries whose shape depends on request
// filters and cannot be expressed as a fixed constant.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildAppListQuery assembles the filtered, paginated app list query.
// Zero-valued filter fields add no predicate; a tag filter joins the
// tag_bindings table and deduplicates apps bound to several of the tags.
func buildAppListQuery(tenantID string, filter models.AppFilter) sq.SelectBuilder {
	query := psql.
		Select("a.id", "a.tenant_id", "a.name", "a.mode", "a.description", "a.status", "a.is_hidden",
			"a.enable_site", "a.enable_api", "a.icon", "a.icon_type", "a.icon_background",
			"a.created_by", "a.created_at", "a.updated_at").
		From("apps a").
		Where(sq.Eq{"a.tenant_id": tenantID})

	query = applyAppFilter(query, filter)
	if len(filter.TagIDs) > 0 {
		query = query.Distinct()
	}

	offset := (filter.Page - 1) * filter.Limit

	return query.
		OrderBy("a.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))
}

// buildAppCountQuery assembles the matching COUNT query for the same filter.
func buildAppCountQuery(tenantID string, filter models.AppFilter) sq.SelectBuilder {
	query := psql.
		Select("COUNT(DISTINCT a.id)").
		From("apps a").
		Where(sq.Eq{"a.tenant_id": tenantID})

	return applyAppFilter(query, filter)
}

func applyAppFilter(query sq.SelectBuilder, filter models.AppFilter) sq.SelectBuilder {
	if filter.Status != "" {
		query = query.Where(sq.Eq{"a.status": filter.Status})
	}
	if filter.IsHidden != "" {
		query = query.Where(sq.Eq{"a.is_hidden": filter.IsHidden})
	}
	if filter.Mode != "" && filter.Mode != "all" {
		query = query.Where(sq.Eq{"a.mode": string(filter.Mode)})
	}
	if filter.Name != "" {
		query = query.Where(sq.ILike{"a.name": "%" + filter.Name + "%"})
	}
	if len(filter.TagIDs) > 0 {
		query = query.
			Join("tag_bindings tb ON tb.target_id = a.id").
			Where(sq.Eq{"tb.tag_id": filter.TagIDs})
	}

	return query
}

// buildConversationListQuery assembles the keyset-paginated conversation
// list query. The pivot row, when present, anchors the page after the
// caller's last seen conversation; one extra row is fetched so the caller
// can compute has_more.
func buildConversationListQuery(appID string, sortBy string, pivot *models.Conversation, limit int) sq.SelectBuilder {
	column := strings.TrimPrefix(sortBy, "-")
	descending := strings.HasPrefix(sortBy, "-")

	query := psql.
		Select("id", "app_id", "name", "from_user", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"app_id": appID})

	if pivot != nil {
		value := pivot.CreatedAt
		if column == "updated_at" {
			value = pivot.UpdatedAt
		}
		if descending {
			query = query.Where(sq.Lt{column: value})
		} else {
			query = query.Where(sq.Gt{column: value})
		}
	}

	direction := " ASC"
	if descending {
		direction = " DESC"
	}

	return query.
		OrderBy(column + direction).
		Limit(uint64(limit) + 1)
}

// buildTagListQuery assembles the tag index query with per-tag binding
// counts and an optional case-insensitive name filter.
func buildTagListQuery(tenantID string, tagType string, keyword string) sq.SelectBuilder {
	query := psql.
		Select("t.id", "t.tenant_id", "t.name", "t.type", "t.created_by", "t.created_at",
			"COUNT(tb.id) AS binding_count").
		From("tags t").
		LeftJoin("tag_bindings tb ON tb.tag_id = t.id").
		Where(sq.Eq{"t.tenant_id": tenantID, "t.type": tagType})

	if keyword != "" {
		query = query.Where(sq.ILike{"t.name": "%" + keyword + "%"})
	}

	return query.
		GroupBy("t.id", "t.tenant_id", "t.name", "t.type", "t.created_by", "t.created_at").
		OrderBy("t.created_at DESC")
}
