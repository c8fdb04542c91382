package project

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, actor user.User, req CreateProjectRequest) (Project, error)
	Update(ctx context.Context, actor user.User, req UpdateProjectRequest) (Project, error)
	Get(ctx context.Context, actor user.User, id string) (Project, error)
	List(ctx context.Context, actor user.User, filter ListFilter) ([]Project, int64, error)
	ListOwn(ctx context.Context, actor user.User) ([]Project, error)
	AddMember(ctx context.Context, actor user.User, projectID string, req AddMemberRequest) (Member, error)
	RemoveMember(ctx context.Context, actor user.User, projectID string, employeeID string) error
	ListMembers(ctx context.Context, actor user.User, projectID string) ([]Member, error)
}
