package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := generateReferralCode()
		require.NoError(t, err)

		assert.Len(t, code, referralCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(referralCodeAlphabet, c), "unexpected character %q", c)
		}

		seen[code] = true
	}

	// 100 draws from a 36^6 space colliding down to a handful would
	// indicate broken randomness
	assert.Greater(t, len(seen), 90)
}
