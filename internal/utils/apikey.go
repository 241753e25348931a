package utils

import (
	"crypto/rand"
	"math/big"
)

const apiKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAPIKey produces a new API key of the form "<prefix><random>", where
// random is n characters drawn from a URL-safe alphabet using crypto/rand.
func GenerateAPIKey(prefix string, n int) (string, error) {
	key := make([]byte, n)
	max := big.NewInt(int64(len(apiKeyAlphabet)))

	for i := range key {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		key[i] = apiKeyAlphabet[idx.Int64()]
	}

	return prefix + string(key), nil
}
