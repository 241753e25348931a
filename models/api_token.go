package models

import "time"

// APIToken is a secret credential granting service-API access to a single
// resource (currently only apps). The Token value is generated once at
// creation time and never rotated.
type APIToken struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	AppID    string `json:"app_id"`
	Type     string `json:"type"`
	Token    string `json:"token"`

	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the APIToken model.
func (t APIToken) TableName() string {
	return "api_tokens"
}
