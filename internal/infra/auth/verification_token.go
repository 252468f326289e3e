// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"

	"catalog/internal/domain/service"
)

// verificationTokenBytes gives 256 bits of entropy per token.
const verificationTokenBytes = 32

// randomTokenGenerator issues opaque verification tokens from crypto/rand.
type randomTokenGenerator struct{}

// NewVerificationTokenGenerator is the constructor for randomTokenGenerator.
func NewVerificationTokenGenerator() service.VerificationTokenGenerator {
	return &randomTokenGenerator{}
}

// NewToken returns a URL-safe random token suitable for a verification link.
func (g *randomTokenGenerator) NewToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for verification token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
