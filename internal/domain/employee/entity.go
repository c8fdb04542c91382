package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Profile struct {
	ID     string
	UserID string

	// Personal Information
	DateOfBirth   *time.Time
	Gender        Gender
	MaritalStatus MaritalStatus
	Nationality   *string
	PersonalEmail *string

	// Emergency contact
	EmergencyContactName         *string
	EmergencyContactPhone        *string
	EmergencyContactRelationship *string

	// Address
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string

	// Employment
	Designation      string
	Department       string
	DateOfJoining    *time.Time
	EmploymentStatus EmploymentStatus
	// ManagerID references the manager's user id. At most one manager;
	// cycle prevention happens at assignment time, not in the data model.
	ManagerID *string

	// Compensation (confidential)
	Salary         *decimal.Decimal
	SalaryCurrency string

	Balances LeaveBalances

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for responses
	FullName    *string
	ManagerName *string
}

// LeaveBalances holds the per-type day counters stored on the profile row.
// Unpaid and other leave are unmetered and have no counter.
type LeaveBalances struct {
	Annual       int
	Sick         int
	Maternity    int
	Paternity    int
	Emergency    int
	Compensatory int
}

// DefaultLeaveBalances are granted when a profile is first created.
func DefaultLeaveBalances() LeaveBalances {
	return LeaveBalances{
		Annual:       20,
		Sick:         10,
		Maternity:    90,
		Paternity:    15,
		Emergency:    5,
		Compensatory: 0,
	}
}

type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderOther       Gender = "O"
	GenderUndisclosed Gender = "P"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "S"
	MaritalMarried  MaritalStatus = "M"
	MaritalDivorced MaritalStatus = "D"
	MaritalWidowed  MaritalStatus = "W"
	MaritalOther    MaritalStatus = "O"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusProbation  EmploymentStatus = "probation"
)
