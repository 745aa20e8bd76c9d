package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPrefix marks a canonical fact hash rendered for the chain side.
const HashPrefix = "0x"

// HashBytes computes the content hash of already canonicalized bytes,
// rendered as 0x-prefixed lowercase hex.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return HashPrefix + hex.EncodeToString(sum[:])
}

// Hash canonicalizes v and returns its content hash.
func Hash(v any) (string, error) {
	b, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	return HashBytes(b), nil
}

// HashJSON canonicalizes a raw JSON document and returns its content hash.
func HashJSON(raw []byte) (string, error) {
	b, err := CanonicalizeJSON(raw)
	if err != nil {
		return "", err
	}
	return HashBytes(b), nil
}

// HashesEqual compares two hashes ignoring the 0x prefix and character case.
// The prefix convention differs between the on-chain and off-chain
// renderings, so raw string comparison is never correct.
func HashesEqual(h1, h2 string) bool {
	return normalizeHash(h1) == normalizeHash(h2)
}

// EnsurePrefix returns h with the 0x prefix, lowercased.
func EnsurePrefix(h string) string {
	return HashPrefix + normalizeHash(h)
}

func normalizeHash(h string) string {
	return strings.TrimPrefix(strings.ToLower(h), HashPrefix)
}
