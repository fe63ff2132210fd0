// Package cache stores extracted source text between runs so repeated
// scans of the same page skip the network.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with per-entry TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a source reference (URL or path)
func Key(ref string) string {
	sum := sha256.Sum256([]byte(ref))
	return "stylerules:v1:" + hex.EncodeToString(sum[:])
}
