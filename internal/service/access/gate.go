package access

import (
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

// Gate answers authorization questions for handlers and services.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// Permitted reports whether the user may perform the operation.
func (g *Gate) Permitted(u user.User, op user.Operation) bool {
	return user.Permitted(u, op)
}

// Require returns ErrNotPermitted when the operation is denied.
func (g *Gate) Require(u user.User, op user.Operation) error {
	if !user.Permitted(u, op) {
		return user.ErrNotPermitted
	}
	return nil
}

// CanManageLeave reports whether the approver may decide a leave request whose
// owner reports to ownerManagerID. HR, admins, and superusers may decide any
// request. Managers are scoped to their direct reports: the owner's manager
// field must equal the approver's ID. No reporting-chain walk happens here.
func (g *Gate) CanManageLeave(approver user.User, ownerManagerID *string) bool {
	if approver.IsSuperuser || approver.IsHR() || approver.IsAdmin() {
		return true
	}
	if !approver.IsManager() {
		return false
	}
	return ownerManagerID != nil && *ownerManagerID == approver.ID
}
