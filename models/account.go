package models

// Account roles as assigned by the workspace membership table. Authentication
// itself happens in a separate identity service; the console only consumes
// the claims carried by the bearer token.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleNormal = "normal"
)

// Account is the authenticated operator acting on a request. It is decoded
// from the bearer token by the auth middleware and stored in the request
// context.
type Account struct {
	AccountID string `json:"account_id"`
	TenantID  string `json:"tenant_id"`
	Role      string `json:"role"`
}

// IsEditor reports whether the account may create and modify resources.
func (a Account) IsEditor() bool {
	return a.Role == RoleOwner || a.Role == RoleAdmin || a.Role == RoleEditor
}

// IsAdminOrOwner reports whether the account may perform destructive
// operations such as API key deletion.
func (a Account) IsAdminOrOwner() bool {
	return a.Role == RoleOwner || a.Role == RoleAdmin
}
