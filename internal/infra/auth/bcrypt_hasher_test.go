package auth

import (
	"testing"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := testHasher()

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := testHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_HashUniqueness(t *testing.T) {
	hasher := testHasher()

	// Each hash gets a fresh salt, so identical passwords hash differently.
	hash1, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)
	hash2, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check("StrongPass123", hash1))
	assert.True(t, hasher.Check("StrongPass123", hash2))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := testHasher()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "StrongPass123", false},
		{"too short", "Sp1", true},
		{"no uppercase", "weakpass123", true},
		{"no lowercase", "WEAKPASS123", true},
		{"no digit", "WeakPassword", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_PolicyDefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123"))
}
