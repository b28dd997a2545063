package bet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

const (
	RoomIDBytes   = 8
	PlayerIDBytes = 4

	maxTokenAttempts = 256
)

var ErrTokenExhausted = errors.New("exhausted attempts to generate a unique token")

// UniqueToken generates a random hex token of n bytes that taken reports
// as free. Collisions are retried up to a fixed cap so a full identifier
// space surfaces as an error instead of spinning forever.
func UniqueToken(n int, taken func(string) bool) (string, error) {
	for i := 0; i < maxTokenAttempts; i++ {
		b := make([]byte, n)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}
		tok := hex.EncodeToString(b)
		if !taken(tok) {
			return tok, nil
		}
	}
	return "", ErrTokenExhausted
}
