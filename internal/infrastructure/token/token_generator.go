package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// PrefixWebhook marks webhook bearer tokens
	PrefixWebhook = "whk_"
)

// 32 random bytes gives 256 bits of entropy, well past the 128-bit floor.
const tokenRandomBytes = 32

// Generator issues opaque bearer tokens. Tokens are stored by value and
// resolved through an indexed lookup, so verification never compares
// strings byte by byte in application code.
type Generator interface {
	Generate(prefix string) (string, error)
}

type generator struct{}

func NewGenerator() Generator {
	return &generator{}
}

func (g *generator) Generate(prefix string) (string, error) {
	randomBytes := make([]byte, tokenRandomBytes)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return prefix + hex.EncodeToString(randomBytes), nil
}
