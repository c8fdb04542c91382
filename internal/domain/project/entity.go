package project

import "time"

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPlanning, StatusActive, StatusOnHold, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields for responses
	ManagerName *string
	MemberCount int
}

// Member links an employee to a project. (project_id, employee_id) is unique.
type Member struct {
	ID         string
	ProjectID  string
	EmployeeID string
	RoleLabel  string
	JoinedOn   time.Time

	// Join fields for responses
	EmployeeName *string
}
