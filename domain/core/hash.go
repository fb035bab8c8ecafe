package core

import (
	"crypto/sha256"
	"encoding/hex"
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

// TableHash identifies a column-table revision in the run manifest.
type TableHash Hash

// NewTableHash hashes the raw bytes of a column-table file.
func NewTableHash(data []byte) TableHash { return TableHash(NewHash(data)) }

func (h TableHash) String() string { return Hash(h).String() }

// ComputeHeaderHash hashes an ordered header list. Order is part of the
// identity: two datasets with the same columns in different order are
// different inputs.
func ComputeHeaderHash(headers []string) Hash {
	var data strings.Builder
	for _, h := range headers {
		data.WriteString(h)
		data.WriteByte(0)
	}
	return NewHash([]byte(data.String()))
}
