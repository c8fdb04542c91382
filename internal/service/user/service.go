package user

import (
	"context"
	"fmt"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
)

type UserServiceImpl struct {
	users user.UserRepository
	gate  *access.Gate
}

func NewUserService(users user.UserRepository, gate *access.Gate) *UserServiceImpl {
	return &UserServiceImpl{users: users, gate: gate}
}

func (s *UserServiceImpl) Get(ctx context.Context, actor user.User, id string) (user.User, error) {
	if id != actor.ID {
		if err := s.gate.Require(actor, user.OperationManageUsers); err != nil {
			return user.User{}, err
		}
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context, actor user.User, filter user.ListFilter) ([]user.User, int64, error) {
	if err := s.gate.Require(actor, user.OperationManageUsers); err != nil {
		return nil, 0, err
	}
	return s.users.List(ctx, filter)
}

// AssignRole changes a user's role. Self-demotion of the last admin is not
// guarded here; the superuser flag remains the escape hatch.
func (s *UserServiceImpl) AssignRole(ctx context.Context, actor user.User, req user.AssignRoleRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	if err := s.gate.Require(actor, user.OperationAssignRoles); err != nil {
		return user.User{}, err
	}

	target, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return user.User{}, err
	}
	if err := s.users.UpdateRole(ctx, target.ID, req.Role); err != nil {
		return user.User{}, fmt.Errorf("failed to update role: %w", err)
	}
	return s.users.GetByID(ctx, target.ID)
}

func (s *UserServiceImpl) SetActive(ctx context.Context, actor user.User, req user.SetActiveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.gate.Require(actor, user.OperationManageUsers); err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	return s.users.SetActive(ctx, target.ID, req.Active)
}
