package jwt

import (
	"testing"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestJWTService_AccessTokenClaims(t *testing.T) {
	svc := newTestJWTService()
	u := user.User{
		ID:          "u-1",
		Username:    "jdoe",
		Role:        user.RoleManager,
		IsSuperuser: true,
	}

	tokenString, expiresAt, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claim := func(name string) interface{} {
		v, ok := token.Get(name)
		require.True(t, ok, name)
		return v
	}
	assert.Equal(t, "u-1", claim("user_id"))
	assert.Equal(t, "jdoe", claim("username"))
	assert.Equal(t, "manager", claim("role"))
	assert.Equal(t, true, claim("is_superuser"))
	assert.Equal(t, "access", claim("type"))
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestJWTService_ValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestJWTService()

	accessToken, _, err := svc.GenerateAccessToken(user.User{ID: "u-1", Role: user.RoleEmployee})
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	require.Error(t, err)
}

func TestJWTService_ValidateRefreshToken_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateRefreshToken("not.a.token")
	require.Error(t, err)
}

func TestJWTService_Revocation(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestJWTService_RefreshTokenCookie(t *testing.T) {
	svc := newTestJWTService()

	cookie := svc.RefreshTokenCookie("token-value", 1790000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
