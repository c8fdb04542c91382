package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chaithanyaistharla/hrm/internal/domain/auth"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	users      user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(users user.UserRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, jwtService: jwtService}
}

// Login verifies the credentials and issues an access/refresh token pair.
// A missing username and a wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.IsActive {
		return auth.AccessTokenResponse{}, user.ErrUserInactive
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Logout revokes the refresh token; the short-lived access token simply
// expires.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, actor user.User, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, actor.ID, string(hashed))
}
