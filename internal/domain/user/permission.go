package user

// Operation names a protected action in the system. Access checks always go
// through the catalog below; handlers never compare role strings directly.
type Operation string

const (
	// Self Management
	OperationViewOwnDashboard Operation = "dashboard.view_own"
	OperationViewOwnProfile   Operation = "profile.view_own"
	OperationEditOwnProfile   Operation = "profile.edit_own"

	// Leave Management
	OperationApplyLeave     Operation = "leave.apply"
	OperationCancelOwnLeave Operation = "leave.cancel_own"
	OperationViewOwnLeave   Operation = "leave.view_own"
	OperationApproveLeave   Operation = "leave.approve"
	OperationViewTeamLeave  Operation = "leave.view_team"

	// Attendance Management
	OperationClockInOut         Operation = "attendance.clock"
	OperationViewOwnAttendance  Operation = "attendance.view_own"
	OperationViewTeamAttendance Operation = "attendance.view_team"

	// Employee Management
	OperationViewDirectory      Operation = "employee.view_directory"
	OperationViewEmployeeDetail Operation = "employee.view_detail"
	OperationManageEmployees    Operation = "employee.manage"

	// Project Management
	OperationViewProjects  Operation = "project.view"
	OperationManageProject Operation = "project.manage"

	// Payroll
	OperationViewOwnPayslips Operation = "payroll.view_own"
	OperationManagePayroll   Operation = "payroll.manage"

	// User Management (admin-exclusive)
	OperationManageUsers Operation = "user.manage"
	OperationAssignRoles Operation = "user.assign_roles"
)

type accessRule struct {
	roles map[Role]bool
	// ops is the operation set the rule grants. A nil set grants every
	// operation; except narrows a nil set.
	ops    map[Operation]bool
	except map[Operation]bool
}

func operationSet(ops ...Operation) map[Operation]bool {
	set := make(map[Operation]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

var selfOperations = operationSet(
	OperationViewOwnDashboard,
	OperationViewOwnProfile,
	OperationEditOwnProfile,
	OperationApplyLeave,
	OperationCancelOwnLeave,
	OperationViewOwnLeave,
	OperationClockInOut,
	OperationViewOwnAttendance,
	OperationViewProjects,
	OperationViewOwnPayslips,
)

var teamOperations = operationSet(
	OperationApproveLeave,
	OperationViewTeamLeave,
	OperationViewTeamAttendance,
	OperationViewDirectory,
	OperationViewEmployeeDetail,
)

var adminExclusiveOperations = operationSet(
	OperationManageUsers,
	OperationAssignRoles,
)

func union(sets ...map[Operation]bool) map[Operation]bool {
	merged := make(map[Operation]bool)
	for _, set := range sets {
		for op := range set {
			merged[op] = true
		}
	}
	return merged
}

// accessRules is evaluated first-match-wins, most privileged role first.
var accessRules = []accessRule{
	{roles: map[Role]bool{RoleAdmin: true}},
	{roles: map[Role]bool{RoleHR: true}, except: adminExclusiveOperations},
	{roles: map[Role]bool{RoleManager: true}, ops: union(selfOperations, teamOperations)},
	{roles: map[Role]bool{RoleEmployee: true}, ops: selfOperations},
}

// Permitted reports whether the user may perform the operation. A superuser
// flag short-circuits every rule; otherwise the ordered rule table decides.
// Denial is a plain false, never an error.
func Permitted(u User, op Operation) bool {
	if u.IsSuperuser {
		return true
	}
	for _, rule := range accessRules {
		if !rule.roles[u.Role] {
			continue
		}
		if rule.ops == nil {
			return !rule.except[op]
		}
		if rule.ops[op] {
			return true
		}
		return false
	}
	return false
}
