package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/auth"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.Service
}

func NewAuthHandler(jwtService jwt.Service, authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokens, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	slog.Info("User logged in", "username", loginReq.Username)
	response.SuccessWithMessage(w, "Login successful", tokens)
}

// refreshTokenFrom reads the refresh token from the cookie, falling back to
// the request body for clients that do not use cookies.
func refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	var body auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshReq := auth.RefreshTokenRequest{RefreshToken: refreshTokenFrom(r)}

	if err := refreshReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFrom(r)

	if err := a.authService.Logout(r.Context(), token); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie.
	expired := a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var changeReq auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := changeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), actor, changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password changed", "user_id", actor.ID)
	response.SuccessWithMessage(w, "Password changed", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	response.Success(w, user.ToResponse(actor))
}
