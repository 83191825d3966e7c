package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "parkpilot.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	podiumID := int64(3)
	locationID := int64(7)

	token, err := svc.GenerateToken(42, "valet01", 1, &podiumID, &locationID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "valet01", claims.Username)
	assert.Equal(t, int64(1), claims.RoleID)
	assert.Equal(t, int64(3), *claims.PodiumID)
	assert.Equal(t, int64(7), *claims.LocationID)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateToken(42, "valet01", 1, nil, nil)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testService(time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testService(time.Hour).GenerateToken(42, "valet01", 1, nil, nil)
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic something")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
