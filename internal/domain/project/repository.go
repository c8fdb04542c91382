package project

import "context"

// Repository - interface for projects and project_members tables
type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) error
	List(ctx context.Context, filter ListFilter) ([]Project, int64, error)

	AddMember(ctx context.Context, m Member) (Member, error)
	RemoveMember(ctx context.Context, projectID, employeeID string) error
	ListMembers(ctx context.Context, projectID string) ([]Member, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
}
