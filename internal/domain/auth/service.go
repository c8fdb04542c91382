package auth

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, actor user.User, req ChangePasswordRequest) error
}
