package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/middleware"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/jwt"
	authService "github.com/Chaithanyaistharla/hrm/internal/service/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

type authTestEnv struct {
	users      *fakeUserRepo
	jwtService jwt.Service
	handler    AuthHandler
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	users := newFakeUserRepo()
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	svc := authService.NewAuthService(users, jwtService)
	return &authTestEnv{
		users:      users,
		jwtService: jwtService,
		handler:    NewAuthHandler(jwtService, svc),
	}
}

func (e *authTestEnv) seedUser(t *testing.T, username, password string, active bool) user.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{
		ID:           "u-" + username,
		Username:     username,
		Role:         user.RoleEmployee,
		PasswordHash: string(hashed),
		IsActive:     active,
	}
	_, err = e.users.Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestAuthHandler_Login_Success(t *testing.T) {
	env := newAuthTestEnv(t)
	env.seedUser(t, "jdoe", "password123", true)

	body, _ := json.Marshal(map[string]string{
		"username": "jdoe",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	env.handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	// Refresh token also arrives as a cookie.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := newAuthTestEnv(t)
	env.seedUser(t, "jdoe", "password123", true)

	body, _ := json.Marshal(map[string]string{
		"username": "jdoe",
		"password": "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	env.handler.Login(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	env := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	env.handler.Login(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RefreshToken_FromCookie(t *testing.T) {
	env := newAuthTestEnv(t)
	env.seedUser(t, "jdoe", "password123", true)

	refreshToken, expiresAt, err := env.jwtService.GenerateRefreshToken("u-jdoe")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(env.jwtService.RefreshTokenCookie(refreshToken, expiresAt))
	w := httptest.NewRecorder()

	env.handler.RefreshToken(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
}

func TestAuthHandler_RefreshToken_Missing(t *testing.T) {
	env := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	w := httptest.NewRecorder()

	env.handler.RefreshToken(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// protectedRouter mounts /me behind the same middleware chain the real
// router uses.
func protectedRouter(env *authTestEnv) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(env.jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(env.jwtService.JWTAuth(), env.users))
		r.Get("/me", env.handler.Me)
	})
	return r
}

func TestAuthHandler_Me_WithBearerToken(t *testing.T) {
	env := newAuthTestEnv(t)
	u := env.seedUser(t, "jdoe", "password123", true)

	accessToken, _, err := env.jwtService.GenerateAccessToken(u)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()

	protectedRouter(env).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "jdoe", data["username"])
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	env := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()

	protectedRouter(env).ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_InactiveUserDenied(t *testing.T) {
	env := newAuthTestEnv(t)
	u := env.seedUser(t, "jdoe", "password123", false)

	accessToken, _, err := env.jwtService.GenerateAccessToken(u)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()

	protectedRouter(env).ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_RefreshTokenRejectedAsAccessToken(t *testing.T) {
	env := newAuthTestEnv(t)
	env.seedUser(t, "jdoe", "password123", true)

	refreshToken, _, err := env.jwtService.GenerateRefreshToken("u-jdoe")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	w := httptest.NewRecorder()

	protectedRouter(env).ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
