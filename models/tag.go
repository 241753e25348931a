package models

import "time"

// Tag binding target types. A binding attaches a tag either to an app or to
// a knowledge dataset.
const (
	TagTypeApp       = "app"
	TagTypeKnowledge = "knowledge"
)

// Tag is a tenant-scoped label that can be bound to apps and datasets.
type Tag struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TagWithBindingCount is the list projection returned by the tag index
// endpoint: the tag plus the number of resources currently bound to it.
type TagWithBindingCount struct {
	Tag
	BindingCount int `json:"binding_count"`
}

// TagBinding attaches one Tag to one target resource. The (tag_id, target_id)
// pair is unique; re-binding an already bound pair is an idempotent no-op.
type TagBinding struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	TagID    string `json:"tag_id"`
	TargetID string `json:"target_id"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}

// TableName returns the name of the database table
// associated with the TagBinding model.
func (b TagBinding) TableName() string {
	return "tag_bindings"
}
