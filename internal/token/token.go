// Package token derives the opaque per-game API credentials handed to
// external game clients.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const separator = "."

// Generate produces "<gameID>.<hex sha256 digest>". The digest mixes the
// game id with the current time and 16 bytes of fresh randomness, so two
// calls for the same id never collide in practice.
func Generate(gameID string) (string, error) {
	random := make([]byte, 16)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("token randomness: %w", err)
	}
	data := fmt.Sprintf("%s:%d:%s", gameID, time.Now().UnixMilli(), hex.EncodeToString(random))
	sum := sha256.Sum256([]byte(data))
	return gameID + separator + hex.EncodeToString(sum[:]), nil
}

// ExtractGameID returns the game id embedded in a token, or "" when the
// token does not split into exactly two parts. This is structural parsing
// only; it proves nothing about authenticity.
func ExtractGameID(token string) string {
	parts := strings.Split(token, separator)
	if len(parts) != 2 {
		return ""
	}
	return parts[0]
}

// Verify reports whether the token embeds the expected game id. The real
// security boundary is the lookup endpoint's exact comparison against the
// parent's stored token; this only checks the embedded identifier.
func Verify(token, expectedGameID string) bool {
	id := ExtractGameID(token)
	return id != "" && id == expectedGameID
}
