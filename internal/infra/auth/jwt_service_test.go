package auth

import (
	"testing"
	"time"

	"bakery/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(42, "anna@bakery.test", "baker")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "anna@bakery.test", claims.Email)
	assert.Equal(t, "baker", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, jwtService.AccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))

	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestJWTConfig("secret")
	cfg.Auth = nil

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTTL, jwtService.AccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("invalid.token.string")

	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(1, "a@b.c", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokens, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)
	svc := tokens.(*jwtService)

	issuedAt := time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.GenerateAccessToken(1, "a@b.c", "barista")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": 1, "iss": "bakery"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(unsigned)

	assert.Error(t, err)
}
