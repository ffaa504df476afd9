package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes the SHA-256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// PayloadHash returns the hex SHA-256 of the compacted JSON payload, so
// whitespace added or dropped by an encoder does not change the result.
func PayloadHash(payload json.RawMessage) (string, error) {
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, payload); err != nil {
		return "", err
	}
	return hex.EncodeToString(Hash(compacted.Bytes())), nil
}
