package project

import (
	"context"
	"fmt"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/project"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
)

type ProjectServiceImpl struct {
	projects project.Repository
	users    user.UserRepository
	gate     *access.Gate
}

func NewProjectService(projects project.Repository, users user.UserRepository, gate *access.Gate) *ProjectServiceImpl {
	return &ProjectServiceImpl{projects: projects, users: users, gate: gate}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, actor user.User, req project.CreateProjectRequest) (project.Project, error) {
	if err := s.gate.Require(actor, user.OperationManageProject); err != nil {
		return project.Project{}, err
	}
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	p := project.Project{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		StartDate:   req.ParsedStart,
		EndDate:     req.ParsedEnd,
		Status:      req.Status,
	}
	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, actor user.User, req project.UpdateProjectRequest) (project.Project, error) {
	if err := s.gate.Require(actor, user.OperationManageProject); err != nil {
		return project.Project{}, err
	}
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		return project.Project{}, err
	}
	if err := s.projects.Update(ctx, req); err != nil {
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return s.projects.GetByID(ctx, req.ProjectID)
}

func (s *ProjectServiceImpl) Get(ctx context.Context, actor user.User, id string) (project.Project, error) {
	if err := s.gate.Require(actor, user.OperationViewProjects); err != nil {
		return project.Project{}, err
	}
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) List(ctx context.Context, actor user.User, filter project.ListFilter) ([]project.Project, int64, error) {
	if err := s.gate.Require(actor, user.OperationViewProjects); err != nil {
		return nil, 0, err
	}
	return s.projects.List(ctx, filter)
}

// ListOwn returns projects the actor is a member of.
func (s *ProjectServiceImpl) ListOwn(ctx context.Context, actor user.User) ([]project.Project, error) {
	if err := s.gate.Require(actor, user.OperationViewProjects); err != nil {
		return nil, err
	}
	return s.projects.ListByEmployee(ctx, actor.ID)
}

func (s *ProjectServiceImpl) AddMember(ctx context.Context, actor user.User, projectID string, req project.AddMemberRequest) (project.Member, error) {
	if err := s.gate.Require(actor, user.OperationManageProject); err != nil {
		return project.Member{}, err
	}
	if err := req.Validate(); err != nil {
		return project.Member{}, err
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return project.Member{}, err
	}
	if _, err := s.users.GetByID(ctx, req.EmployeeID); err != nil {
		return project.Member{}, err
	}

	roleLabel := req.RoleLabel
	if validator.IsEmpty(roleLabel) {
		roleLabel = "member"
	}
	return s.projects.AddMember(ctx, project.Member{
		ProjectID:  projectID,
		EmployeeID: req.EmployeeID,
		RoleLabel:  roleLabel,
		JoinedOn:   validator.TruncateToDay(time.Now()),
	})
}

func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, actor user.User, projectID string, employeeID string) error {
	if err := s.gate.Require(actor, user.OperationManageProject); err != nil {
		return err
	}
	return s.projects.RemoveMember(ctx, projectID, employeeID)
}

func (s *ProjectServiceImpl) ListMembers(ctx context.Context, actor user.User, projectID string) ([]project.Member, error) {
	if err := s.gate.Require(actor, user.OperationViewProjects); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projects.ListMembers(ctx, projectID)
}
