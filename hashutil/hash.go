package hashutil

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Result carries one normalized value together with both digest encodings.
// It is derived state: recompute it instead of caching or mutating it.
type Result struct {
	Normalized string
	SHA256     string // 64 lowercase hex characters
	Base64     string // standard Base64 of the raw digest bytes, 44 characters
}

// SHA256Hex returns the SHA-256 digest of value as lowercase hex.
// Empty input yields an empty string, not the digest of "".
func SHA256Hex(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// SHA256Base64 encodes the raw SHA-256 digest bytes as standard Base64
// with padding. Note: the digest bytes, not the hex rendering.
func SHA256Base64(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// HashValue computes both digest encodings for an already-normalized value.
func HashValue(normalized string) Result {
	return Result{
		Normalized: normalized,
		SHA256:     SHA256Hex(normalized),
		Base64:     SHA256Base64(normalized),
	}
}
