package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()
	workerID := "worker-1"

	tokenStr, expiresAt, err := svc.GenerateAccessToken("user-1", "foreman@example.com", &workerID, user.RoleSupervisor)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "foreman@example.com", claims["email"])
	assert.Equal(t, "worker-1", claims["worker_id"])
	assert.Equal(t, "supervisor", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilWorkerID(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "clerk@example.com", nil, user.RoleClerk)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["worker_id"])
}

func TestRefreshToken_Type(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenStr, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "x@example.com", nil, user.RoleWorker)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(tokenStr)
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenStr))
	svc.RevokeToken(tokenStr)
	assert.True(t, svc.IsTokenRevoked(tokenStr))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
