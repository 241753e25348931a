package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set of bearer tokens issued by the identity
// service. The subject carries the account id; tenant and role travel as
// private claims.
type TokenClaims struct {
	jwt.RegisteredClaims

	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// Account maps the claims to the account acting on a request.
func (c TokenClaims) Account() Account {
	return Account{
		AccountID: c.Subject,
		TenantID:  c.TenantID,
		Role:      c.Role,
	}
}
