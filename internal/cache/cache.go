package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for result caching. The pipeline is
// deterministic, so a cache hit on the same transcript and settings is
// always a valid answer.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from transcript text and a configuration
// fingerprint. Any setting that changes pipeline output must be part of
// the fingerprint.
func Key(transcript, fingerprint string) string {
	hash := sha256.Sum256([]byte(fingerprint + "\x00" + transcript))
	return "reqscribe:v1:" + hex.EncodeToString(hash[:])
}
