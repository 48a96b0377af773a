package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	orgID := "org-1"
	empID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", &empID, &orgID, user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "org-1", claims["organization_id"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilOptionalClaims(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateAccessToken("user-1", "admin@example.com", nil, nil, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.Nil(t, claims["employee_id"])
	assert.Nil(t, claims["organization_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestDecodeToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)
	other := NewJWTService("a-different-secret-entirely", testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = other.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	_, err := svc.DecodeToken("not.a.jwt")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	cookie := svc.RefreshTokenCookie("some-token", 1767225600)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
