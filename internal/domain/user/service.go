package user

import "context"

type Service interface {
	Get(ctx context.Context, actor User, id string) (User, error)
	List(ctx context.Context, actor User, filter ListFilter) ([]User, int64, error)
	AssignRole(ctx context.Context, actor User, req AssignRoleRequest) (User, error)
	SetActive(ctx context.Context, actor User, req SetActiveRequest) error
}
