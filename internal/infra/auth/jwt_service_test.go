package auth

import (
	"testing"

	"catalog/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testTokenService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	gotFromAccess, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, gotFromAccess)

	gotFromRefresh, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, gotFromRefresh)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc := testTokenService(t)

	access, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// A refresh token must not pass as an access token, and vice versa.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageAndWrongKey(t *testing.T) {
	svc := testTokenService(t)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.Error(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "different-access-secret"
	otherCfg.SecretKey.Refresh = "different-refresh-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := testTokenService(t)

	hash1 := svc.HashToken("some-refresh-token")
	hash2 := svc.HashToken("some-refresh-token")
	hash3 := svc.HashToken("another-token")

	// SHA-256 hex digest: deterministic, 64 chars, never the raw token.
	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, hash3)
	assert.Len(t, hash1, 64)
	assert.NotContains(t, hash1, "some-refresh-token")
}
