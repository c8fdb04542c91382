package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
)

// maxManagerChainDepth bounds the cycle walk in SetManager so a corrupted
// chain cannot loop forever.
const maxManagerChainDepth = 100

type EmployeeServiceImpl struct {
	profiles employee.ProfileRepository
	users    user.UserRepository
	gate     *access.Gate
}

func NewEmployeeService(profiles employee.ProfileRepository, users user.UserRepository, gate *access.Gate) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{profiles: profiles, users: users, gate: gate}
}

func (s *EmployeeServiceImpl) GetOwn(ctx context.Context, actor user.User) (employee.Profile, error) {
	if err := s.gate.Require(actor, user.OperationViewOwnProfile); err != nil {
		return employee.Profile{}, err
	}
	return s.profiles.GetByUserID(ctx, actor.ID)
}

func (s *EmployeeServiceImpl) UpdateOwn(ctx context.Context, actor user.User, req employee.UpdateProfileRequest) (employee.Profile, error) {
	if err := s.gate.Require(actor, user.OperationEditOwnProfile); err != nil {
		return employee.Profile{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.Profile{}, err
	}

	profile, err := s.profiles.GetByUserID(ctx, actor.ID)
	if err != nil {
		return employee.Profile{}, err
	}
	req.ProfileID = profile.ID
	if err := s.profiles.Update(ctx, req); err != nil {
		return employee.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.profiles.GetByUserID(ctx, actor.ID)
}

// Get returns another employee's profile. Managers only see their direct
// reports; HR, admins, and superusers see anyone.
func (s *EmployeeServiceImpl) Get(ctx context.Context, actor user.User, employeeUserID string) (employee.Profile, error) {
	if employeeUserID == actor.ID {
		return s.GetOwn(ctx, actor)
	}
	if err := s.gate.Require(actor, user.OperationViewEmployeeDetail); err != nil {
		return employee.Profile{}, err
	}

	profile, err := s.profiles.GetByUserID(ctx, employeeUserID)
	if err != nil {
		return employee.Profile{}, err
	}
	if actor.IsManager() && !actor.IsSuperuser {
		if profile.ManagerID == nil || *profile.ManagerID != actor.ID {
			return employee.Profile{}, user.ErrNotPermitted
		}
	}
	return profile, nil
}

func (s *EmployeeServiceImpl) Directory(ctx context.Context, actor user.User, filter employee.DirectoryFilter) ([]employee.Profile, int64, error) {
	if err := s.gate.Require(actor, user.OperationViewDirectory); err != nil {
		return nil, 0, err
	}
	return s.profiles.Search(ctx, filter)
}

// Team lists the actor's direct reports.
func (s *EmployeeServiceImpl) Team(ctx context.Context, actor user.User) ([]employee.Profile, error) {
	if err := s.gate.Require(actor, user.OperationViewDirectory); err != nil {
		return nil, err
	}
	return s.profiles.ListByManager(ctx, actor.ID)
}

// SetManager assigns (or clears, with a nil manager) an employee's manager.
// The proposed manager's chain is walked upward first; if it reaches the
// employee the assignment would create a reporting cycle and is rejected.
// Self-management is the one-hop case of the same rule.
func (s *EmployeeServiceImpl) SetManager(ctx context.Context, actor user.User, req employee.SetManagerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.gate.Require(actor, user.OperationManageEmployees); err != nil {
		return err
	}

	profile, err := s.profiles.GetByUserID(ctx, req.EmployeeUserID)
	if err != nil {
		return err
	}

	if req.ManagerUserID != nil {
		if _, err := s.users.GetByID(ctx, *req.ManagerUserID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return employee.ErrManagerNotFound
			}
			return err
		}
		if err := s.checkManagerCycle(ctx, req.EmployeeUserID, *req.ManagerUserID); err != nil {
			return err
		}
	}

	return s.profiles.SetManager(ctx, profile.ID, req.ManagerUserID)
}

func (s *EmployeeServiceImpl) checkManagerCycle(ctx context.Context, employeeUserID, managerUserID string) error {
	current := managerUserID
	for depth := 0; depth < maxManagerChainDepth; depth++ {
		if current == employeeUserID {
			return employee.ErrManagerCycle
		}
		profile, err := s.profiles.GetByUserID(ctx, current)
		if err != nil {
			if errors.Is(err, employee.ErrProfileNotFound) {
				// Manager without a profile terminates the chain.
				return nil
			}
			return err
		}
		if profile.ManagerID == nil {
			return nil
		}
		current = *profile.ManagerID
	}
	return employee.ErrManagerCycle
}
