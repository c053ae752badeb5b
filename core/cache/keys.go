package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/adalundhe/restyle/core/style"
)

const (
	keyPrefix      = "interpret"
	keySeparator   = ":"
	maxKeyLength   = 256
	truncateLength = 64
)

// Key derives the cache key for one interpretation. The instruction is
// normalized (lowercased, whitespace collapsed) and combined with the
// snapshot, since relative phrases resolve against the snapshot's current
// values. Same instruction, different baseline, different key.
func Key(instruction string, snapshot style.Snapshot) string {
	normalized := normalizeForKey(instruction)
	encoded, _ := json.Marshal(snapshot)

	return keyPrefix + keySeparator + hashKey(normalized+keySeparator+string(encoded))
}

func normalizeForKey(instruction string) string {
	normalized := strings.ToLower(strings.TrimSpace(instruction))

	normalized = strings.Join(strings.Fields(normalized), " ")

	if len(normalized) > maxKeyLength {
		normalized = normalized[:maxKeyLength]
	}

	return normalized
}

func hashKey(combined string) string {
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:])[:truncateLength]
}
