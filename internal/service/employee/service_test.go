package employee

import (
	"context"
	"sync"
	"testing"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]employee.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]employee.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == "" {
		profile.ID = "prof-" + profile.UserID
	}
	f.profiles[profile.UserID] = profile
	return profile, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, profile := range f.profiles {
		if profile.ID == id {
			return profile, nil
		}
	}
	return employee.Profile{}, employee.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return employee.Profile{}, employee.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, req employee.UpdateProfileRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for userID, profile := range f.profiles {
		if profile.ID != req.ProfileID {
			continue
		}
		if req.PersonalEmail != nil {
			profile.PersonalEmail = req.PersonalEmail
		}
		if req.City != nil {
			profile.City = req.City
		}
		f.profiles[userID] = profile
		return nil
	}
	return employee.ErrProfileNotFound
}

func (f *fakeProfileRepo) SetManager(ctx context.Context, profileID string, managerID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for userID, profile := range f.profiles {
		if profile.ID == profileID {
			profile.ManagerID = managerID
			f.profiles[userID] = profile
			return nil
		}
	}
	return employee.ErrProfileNotFound
}

func (f *fakeProfileRepo) Search(ctx context.Context, filter employee.DirectoryFilter) ([]employee.Profile, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Profile
	for _, profile := range f.profiles {
		out = append(out, profile)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProfileRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Profile
	for _, profile := range f.profiles {
		if profile.ManagerID != nil && *profile.ManagerID == managerID {
			out = append(out, profile)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	f.users[id] = u
	return nil
}

type env struct {
	svc      *EmployeeServiceImpl
	profiles *fakeProfileRepo
	users    *fakeUserRepo
}

func newEnv() *env {
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()
	return &env{
		svc:      NewEmployeeService(profiles, users, access.NewGate()),
		profiles: profiles,
		users:    users,
	}
}

func (e *env) addUser(id string, role user.Role, managerID *string) user.User {
	u := user.User{ID: id, Username: id, Role: role, IsActive: true}
	_, _ = e.users.Create(context.Background(), u)
	_, _ = e.profiles.Create(context.Background(), employee.Profile{
		UserID:    id,
		ManagerID: managerID,
		IsActive:  true,
	})
	return u
}

func TestEmployeeService_GetOwn(t *testing.T) {
	e := newEnv()
	emp := e.addUser("emp-1", user.RoleEmployee, nil)

	profile, err := e.svc.GetOwn(context.Background(), emp)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, profile.UserID)
}

func TestEmployeeService_UpdateOwn(t *testing.T) {
	e := newEnv()
	emp := e.addUser("emp-1", user.RoleEmployee, nil)

	email := "me@example.com"
	profile, err := e.svc.UpdateOwn(context.Background(), emp, employee.UpdateProfileRequest{
		PersonalEmail: &email,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.PersonalEmail)
	assert.Equal(t, email, *profile.PersonalEmail)
}

func TestEmployeeService_Get_ManagerScopedToReports(t *testing.T) {
	e := newEnv()
	manager := e.addUser("mgr-1", user.RoleManager, nil)
	e.addUser("emp-1", user.RoleEmployee, &manager.ID)
	e.addUser("emp-2", user.RoleEmployee, nil)

	_, err := e.svc.Get(context.Background(), manager, "emp-1")
	require.NoError(t, err)

	_, err = e.svc.Get(context.Background(), manager, "emp-2")
	require.ErrorIs(t, err, user.ErrNotPermitted)

	hr := e.addUser("hr-1", user.RoleHR, nil)
	_, err = e.svc.Get(context.Background(), hr, "emp-2")
	require.NoError(t, err)
}

func TestEmployeeService_Directory_EmployeeDenied(t *testing.T) {
	e := newEnv()
	emp := e.addUser("emp-1", user.RoleEmployee, nil)

	_, _, err := e.svc.Directory(context.Background(), emp, employee.DirectoryFilter{})
	require.ErrorIs(t, err, user.ErrNotPermitted)
}

func TestEmployeeService_SetManager_Success(t *testing.T) {
	e := newEnv()
	hr := e.addUser("hr-1", user.RoleHR, nil)
	e.addUser("mgr-1", user.RoleManager, nil)
	e.addUser("emp-1", user.RoleEmployee, nil)

	managerID := "mgr-1"
	err := e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "emp-1",
		ManagerUserID:  &managerID,
	})
	require.NoError(t, err)

	profile, err := e.profiles.GetByUserID(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, profile.ManagerID)
	assert.Equal(t, managerID, *profile.ManagerID)
}

func TestEmployeeService_SetManager_SelfManagementRejected(t *testing.T) {
	e := newEnv()
	hr := e.addUser("hr-1", user.RoleHR, nil)
	e.addUser("emp-1", user.RoleEmployee, nil)

	self := "emp-1"
	err := e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "emp-1",
		ManagerUserID:  &self,
	})
	require.ErrorIs(t, err, employee.ErrManagerCycle)
}

func TestEmployeeService_SetManager_CycleRejected(t *testing.T) {
	e := newEnv()
	hr := e.addUser("hr-1", user.RoleHR, nil)
	a := e.addUser("user-a", user.RoleManager, nil)
	e.addUser("user-b", user.RoleManager, &a.ID)
	bID := "user-b"
	e.addUser("user-c", user.RoleEmployee, &bID)

	// a <- b <- c exists; making c the manager of a closes the loop.
	cID := "user-c"
	err := e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "user-a",
		ManagerUserID:  &cID,
	})
	require.ErrorIs(t, err, employee.ErrManagerCycle)

	// An unrelated manager is fine.
	e.addUser("user-d", user.RoleManager, nil)
	dID := "user-d"
	err = e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "user-a",
		ManagerUserID:  &dID,
	})
	require.NoError(t, err)
}

func TestEmployeeService_SetManager_ClearManager(t *testing.T) {
	e := newEnv()
	hr := e.addUser("hr-1", user.RoleHR, nil)
	manager := e.addUser("mgr-1", user.RoleManager, nil)
	e.addUser("emp-1", user.RoleEmployee, &manager.ID)

	err := e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "emp-1",
		ManagerUserID:  nil,
	})
	require.NoError(t, err)

	profile, err := e.profiles.GetByUserID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Nil(t, profile.ManagerID)
}

func TestEmployeeService_SetManager_UnknownManager(t *testing.T) {
	e := newEnv()
	hr := e.addUser("hr-1", user.RoleHR, nil)
	e.addUser("emp-1", user.RoleEmployee, nil)

	ghost := "nobody"
	err := e.svc.SetManager(context.Background(), hr, employee.SetManagerRequest{
		EmployeeUserID: "emp-1",
		ManagerUserID:  &ghost,
	})
	require.ErrorIs(t, err, employee.ErrManagerNotFound)
}

func TestEmployeeService_SetManager_RequiresManageGate(t *testing.T) {
	e := newEnv()
	manager := e.addUser("mgr-1", user.RoleManager, nil)
	e.addUser("emp-1", user.RoleEmployee, nil)

	managerID := manager.ID
	err := e.svc.SetManager(context.Background(), manager, employee.SetManagerRequest{
		EmployeeUserID: "emp-1",
		ManagerUserID:  &managerID,
	})
	require.ErrorIs(t, err, user.ErrNotPermitted)
}
