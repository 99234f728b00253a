package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint is the deterministic identity of an evaluation request.
// Identical inputs always produce identical fingerprints, so repeated
// submissions of the same test can be recognized in logs.
type Fingerprint Hash

// String returns the string representation
func (f Fingerprint) String() string { return Hash(f).String() }

// ComputeFingerprint hashes an ordered set of labeled parts. Float parts
// are rendered with full precision so no two distinct inputs collide
// through formatting.
func ComputeFingerprint(kind string, params map[string]float64, keys []string, series ...[]float64) Fingerprint {
	var data strings.Builder
	data.WriteString(kind)
	for _, key := range keys {
		data.WriteString("|")
		data.WriteString(key)
		data.WriteString("=")
		data.WriteString(strconv.FormatFloat(params[key], 'g', -1, 64))
	}
	for i, values := range series {
		data.WriteString(fmt.Sprintf("|s%d:", i))
		for _, v := range values {
			data.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			data.WriteString(",")
		}
	}
	return Fingerprint(NewHash([]byte(data.String())))
}
