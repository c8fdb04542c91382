package leave

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	Submit(ctx context.Context, actor user.User, req SubmitRequest) (Request, error)
	Decide(ctx context.Context, approver user.User, req DecideRequest) (Request, error)
	Cancel(ctx context.Context, actor user.User, requestID string) error
	ListOwn(ctx context.Context, actor user.User, filter RequestFilter) ([]Request, int64, error)
	ListPending(ctx context.Context, approver user.User, filter RequestFilter) ([]Request, int64, error)
	Balances(ctx context.Context, actor user.User, employeeUserID string, year int) ([]BalanceSummary, error)
}
