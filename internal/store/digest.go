package store

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Digest keys an input by the hex BLAKE2b-256 of its trimmed text, so
// trailing newlines and surrounding blank lines do not change the key.
func Digest(text string) string {
	sum := blake2b.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}
