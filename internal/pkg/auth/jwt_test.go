package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "coachdesk.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "Ravi Kumar", "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.StudentID)
	assert.Equal(t, "Ravi Kumar", claims.StudentName)
	assert.Equal(t, "9876543210", claims.MobileNumber)
	assert.Equal(t, "coachdesk.test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(42, "Ravi Kumar", "9876543210")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken(42, "Ravi Kumar", "9876543210")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsNonPositiveStudentID(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, _, err := svc.GenerateToken(0, "Nobody", "0000000000")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Token abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
