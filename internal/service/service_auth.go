// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package service

import (
	"context"

	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

// authService resolves bearer tokens to accounts. Tokens are issued by a
// separate identity service; this service only verifies signatures and claims
// against the configured key and issuer.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens with any other issuer
	// are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the verification
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates a raw JWT string and maps its claims to the acting
// account.
//
// Any validation failure (expired, wrong issuer, malformed, missing subject)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Account, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Account{}, ErrTokenIsExpiredOrInvalid
	}

	return claims.Account(), nil
}
