package project

import (
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
)

type ListFilter struct {
	Status *Status
	Search *string
	Page   int
	Limit  int
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      Status  `json:"status"`

	ParsedStart *time.Time `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Project name is required"})
	}
	if r.Status == "" {
		r.Status = StatusActive
	} else if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Unknown project status"})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		start, ok := validator.IsValidDate(*r.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Date must be in YYYY-MM-DD format"})
		} else {
			r.ParsedStart = &start
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Date must be in YYYY-MM-DD format"})
		} else {
			r.ParsedEnd = &end
		}
	}
	if r.ParsedStart != nil && r.ParsedEnd != nil && r.ParsedEnd.Before(*r.ParsedStart) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date is before start date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ProjectID   string
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ManagerID   *string `json:"manager_id"`
	Status      *Status `json:"status"`
}

func (r UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Project name cannot be empty"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Unknown project status"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddMemberRequest struct {
	EmployeeID string `json:"employee_id"`
	RoleLabel  string `json:"role"`
}

func (r AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	RoleLabel    string  `json:"role"`
	JoinedOn     string  `json:"joined_on"`
}

func ToMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		RoleLabel:    m.RoleLabel,
		JoinedOn:     m.JoinedOn.Format("2006-01-02"),
	}
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      Status  `json:"status"`
	MemberCount int     `json:"member_count"`
}

func ToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ManagerID:   p.ManagerID,
		ManagerName: p.ManagerName,
		Status:      p.Status,
		MemberCount: p.MemberCount,
	}
	if p.StartDate != nil {
		start := p.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
