package pkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// TokenCost is the bcrypt cost used for API token hashes.
const TokenCost = 12

// HashToken returns the bcrypt hash of an API token. Only the hash is kept
// in the server environment.
func HashToken(token string, cost int) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", fmt.Errorf("hash token: %w", err)
	}
	return string(hash), nil
}

func TokenMatches(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
