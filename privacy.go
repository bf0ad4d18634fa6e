package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ipHasher turns client addresses into stable pseudonyms for logging.
// The salt lives only as long as the process, so hashes cannot be joined
// across restarts.
type ipHasher struct {
	salt string
}

func newIPHasher() (*ipHasher, error) {
	salt, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &ipHasher{salt: salt}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Hash returns a truncated salted SHA-256 of ip.
func (h *ipHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}
