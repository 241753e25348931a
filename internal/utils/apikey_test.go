package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	t.Run("prefix and length", func(t *testing.T) {
		key, err := GenerateAPIKey("app-", 24)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(key, "app-"))
		assert.Len(t, key, len("app-")+24)
	})

	t.Run("only alphabet characters after the prefix", func(t *testing.T) {
		key, err := GenerateAPIKey("app-", 64)
		require.NoError(t, err)

		for _, c := range key[len("app-"):] {
			assert.Contains(t, apiKeyAlphabet, string(c))
		}
	})

	t.Run("keys do not repeat", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			key, err := GenerateAPIKey("app-", 24)
			require.NoError(t, err)

			_, dup := seen[key]
			require.False(t, dup, "generated a duplicate key")
			seen[key] = struct{}{}
		}
	})

	t.Run("empty prefix and zero length", func(t *testing.T) {
		key, err := GenerateAPIKey("", 0)
		require.NoError(t, err)
		assert.Empty(t, key)
	})
}
