package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/console-server/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "appforge-identity"
)

func signedToken(t *testing.T, claims models.TokenClaims, signKey string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	require.NoError(t, err)
	return signed
}

func validClaims() models.TokenClaims {
	return models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "acc-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TenantID: "tenant-1",
		Role:     "editor",
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	t.Run("valid token round-trips claims", func(t *testing.T) {
		tokenString := signedToken(t, validClaims(), testSignKey)

		claims, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		require.NoError(t, err)

		assert.Equal(t, "acc-1", claims.Subject)
		assert.Equal(t, "tenant-1", claims.TenantID)
		assert.Equal(t, "editor", claims.Role)

		account := claims.Account()
		assert.Equal(t, "acc-1", account.AccountID)
		assert.Equal(t, "tenant-1", account.TenantID)
		assert.Equal(t, "editor", account.Role)
	})

	t.Run("wrong sign key is rejected", func(t *testing.T) {
		tokenString := signedToken(t, validClaims(), "another-key")

		_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		claims := validClaims()
		claims.Issuer = "someone-else"
		tokenString := signedToken(t, claims, testSignKey)

		_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		tokenString := signedToken(t, claims, testSignKey)

		_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("empty subject is rejected", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = ""
		tokenString := signedToken(t, claims, testSignKey)

		_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty subject")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
		assert.Error(t, err)
	})
}
