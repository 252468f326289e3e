package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationTokenGenerator_NewToken(t *testing.T) {
	gen := NewVerificationTokenGenerator()

	token, err := gen.NewToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// URL-safe: decodes back to the full 32 random bytes.
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, verificationTokenBytes)
}

func TestVerificationTokenGenerator_TokensAreUnique(t *testing.T) {
	gen := NewVerificationTokenGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		token, err := gen.NewToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generator produced a duplicate token")
		seen[token] = struct{}{}
	}
}
