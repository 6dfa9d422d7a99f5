package service

import (
	"crypto/rand"
	"fmt"
)

const (
	referralCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	referralCodeLength   = 6
)

// generateReferralCode returns a short shareable code for a new user.
// Uniqueness is enforced by the database constraint, not here.
func generateReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = referralCodeAlphabet[int(b)%len(referralCodeAlphabet)]
	}

	return string(buf), nil
}
