package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee, self-scoped access
	RoleManager  Role = "manager"  // Approves leave for direct reports
	RoleHR       Role = "hr"       // Full HR access except admin-exclusive operations
	RoleAdmin    Role = "admin"    // Full access
)

// Roles lists every valid role value.
var Roles = []Role{RoleEmployee, RoleManager, RoleHR, RoleAdmin}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	// IsSuperuser is an orthogonal capability override, independent of Role.
	IsSuperuser  bool
	Department   string
	EmployeeCode *string
	PhoneNumber  *string
	HireDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if user is in the HR role.
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsManager checks if user is a manager.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsAdmin checks if user is in the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
