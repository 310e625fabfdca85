package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKey returns a stable hex digest suitable for cache and storage keys.
func HashKey(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
