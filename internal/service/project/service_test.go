package project

import (
	"context"
	"fmt"
	"testing"

	"github.com/Chaithanyaistharla/hrm/internal/domain/project"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	seq      int
	projects map[string]project.Project
	members  map[string][]project.Member
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[string]project.Project),
		members:  make(map[string][]project.Member),
	}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	f.seq++
	p.ID = fmt.Sprintf("proj-%d", f.seq)
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	p.MemberCount = len(f.members[id])
	return p, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	p, ok := f.projects[req.ProjectID]
	if !ok {
		return project.ErrProjectNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ManagerID != nil {
		p.ManagerID = req.ManagerID
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	f.projects[req.ProjectID] = p
	return nil
}

func (f *fakeProjectRepo) List(ctx context.Context, filter project.ListFilter) ([]project.Project, int64, error) {
	var out []project.Project
	for _, p := range f.projects {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProjectRepo) AddMember(ctx context.Context, m project.Member) (project.Member, error) {
	for _, existing := range f.members[m.ProjectID] {
		if existing.EmployeeID == m.EmployeeID {
			return project.Member{}, project.ErrMemberExists
		}
	}
	f.seq++
	m.ID = fmt.Sprintf("member-%d", f.seq)
	f.members[m.ProjectID] = append(f.members[m.ProjectID], m)
	return m, nil
}

func (f *fakeProjectRepo) RemoveMember(ctx context.Context, projectID, employeeID string) error {
	members := f.members[projectID]
	for i, m := range members {
		if m.EmployeeID == employeeID {
			f.members[projectID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return project.ErrMemberNotFound
}

func (f *fakeProjectRepo) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	return f.members[projectID], nil
}

func (f *fakeProjectRepo) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	var out []project.Project
	for id, members := range f.members {
		for _, m := range members {
			if m.EmployeeID == employeeID {
				out = append(out, f.projects[id])
				break
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error { return nil }

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

func newTestService() (*ProjectServiceImpl, *fakeProjectRepo, *fakeUserRepo) {
	projects := newFakeProjectRepo()
	users := &fakeUserRepo{users: make(map[string]user.User)}
	return NewProjectService(projects, users, access.NewGate()), projects, users
}

func hrUser() user.User {
	return user.User{ID: "hr-1", Role: user.RoleHR, IsActive: true}
}

func empUser(id string) user.User {
	return user.User{ID: id, Role: user.RoleEmployee, IsActive: true}
}

func TestProjectService_Create(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{
		Name: "Payroll revamp",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// Status defaults to active when omitted.
	assert.Equal(t, project.StatusActive, created.Status)
}

func TestProjectService_Create_EmployeeDenied(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), empUser("emp-1"), project.CreateProjectRequest{
		Name: "Payroll revamp",
	})
	require.ErrorIs(t, err, user.ErrNotPermitted)
}

func TestProjectService_Create_EndBeforeStart(t *testing.T) {
	svc, _, _ := newTestService()

	start := "2026-05-01"
	end := "2026-04-01"
	_, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{
		Name:      "Payroll revamp",
		StartDate: &start,
		EndDate:   &end,
	})
	require.Error(t, err)
}

func TestProjectService_Update(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "Old name"})
	require.NoError(t, err)

	newName := "New name"
	completed := project.StatusCompleted
	updated, err := svc.Update(context.Background(), hrUser(), project.UpdateProjectRequest{
		ProjectID: created.ID,
		Name:      &newName,
		Status:    &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, project.StatusCompleted, updated.Status)
}

func TestProjectService_AddMember(t *testing.T) {
	svc, _, users := newTestService()
	users.users["emp-1"] = user.User{ID: "emp-1", Role: user.RoleEmployee}

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	member, err := svc.AddMember(context.Background(), hrUser(), created.ID, project.AddMemberRequest{
		EmployeeID: "emp-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "member", member.RoleLabel)
	assert.False(t, member.JoinedOn.IsZero())

	_, err = svc.AddMember(context.Background(), hrUser(), created.ID, project.AddMemberRequest{
		EmployeeID: "emp-1",
	})
	require.ErrorIs(t, err, project.ErrMemberExists)
}

func TestProjectService_AddMember_UnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	_, err = svc.AddMember(context.Background(), hrUser(), created.ID, project.AddMemberRequest{
		EmployeeID: "ghost",
	})
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestProjectService_RemoveMember(t *testing.T) {
	svc, _, users := newTestService()
	users.users["emp-1"] = user.User{ID: "emp-1", Role: user.RoleEmployee}

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)
	_, err = svc.AddMember(context.Background(), hrUser(), created.ID, project.AddMemberRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(context.Background(), hrUser(), created.ID, "emp-1"))
	err = svc.RemoveMember(context.Background(), hrUser(), created.ID, "emp-1")
	require.ErrorIs(t, err, project.ErrMemberNotFound)
}

func TestProjectService_ListOwn(t *testing.T) {
	svc, _, users := newTestService()
	users.users["emp-1"] = user.User{ID: "emp-1", Role: user.RoleEmployee}

	first, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "Not mine"})
	require.NoError(t, err)
	_, err = svc.AddMember(context.Background(), hrUser(), first.ID, project.AddMemberRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	own, err := svc.ListOwn(context.Background(), empUser("emp-1"))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Mine", own[0].Name)
}

func TestProjectService_Get_MembersVisibleToEmployees(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), hrUser(), project.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), empUser("emp-1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
