package pagination

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashQuery returns the SHA-256 digest of the query text as 64 lowercase
// hex characters. Leading and trailing whitespace is stripped before
// hashing so outer formatting does not change the digest; internal
// whitespace is significant.
//
// The input must be the caller-supplied query without any pagination clause
// appended. The offset lives in the cursor and is intentionally not part of
// the hash, so the same logical query hashes identically across pages.
func HashQuery(query string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(query)))
	return hex.EncodeToString(sum[:])
}
