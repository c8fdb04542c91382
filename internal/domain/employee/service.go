package employee

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	GetOwn(ctx context.Context, actor user.User) (Profile, error)
	UpdateOwn(ctx context.Context, actor user.User, req UpdateProfileRequest) (Profile, error)
	Get(ctx context.Context, actor user.User, employeeUserID string) (Profile, error)
	Directory(ctx context.Context, actor user.User, filter DirectoryFilter) ([]Profile, int64, error)
	Team(ctx context.Context, actor user.User) ([]Profile, error)
	SetManager(ctx context.Context, actor user.User, req SetManagerRequest) error
}
