package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
)

// Key derives a deterministic cache key from the identity parts of an
// artifact (graph fingerprint, visualization kind, format, options). Each
// part is length-prefixed before hashing, so ("ab", "c") and ("a", "bc")
// can never collide.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = io.WriteString(h, strconv.Itoa(len(p)))
		_, _ = h.Write([]byte{':'})
		_, _ = io.WriteString(h, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Sum fingerprints one blob, such as a canonical graph serialization.
// Returns the full 64-character hex digest.
func Sum(data []byte) string {
	h := sha256.New()
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
