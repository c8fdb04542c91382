package attendance

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	ClockIn(ctx context.Context, actor user.User, req ClockInRequest) (Record, error)
	ClockOut(ctx context.Context, actor user.User) (Record, error)
	Today(ctx context.Context, actor user.User) (Record, error)
	ListOwn(ctx context.Context, actor user.User, filter ListFilter) ([]Record, int64, error)
	ListTeam(ctx context.Context, actor user.User, filter ListFilter) ([]Record, int64, error)
}
