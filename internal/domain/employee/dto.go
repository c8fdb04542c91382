package employee

import (
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
)

type DirectoryFilter struct {
	Search     *string
	Department *string
	Page       int
	Limit      int
}

// UpdateProfileRequest carries the self-service editable fields. Nil means
// "leave unchanged", matching the partial-update SQL in the repository.
type UpdateProfileRequest struct {
	ProfileID string

	PersonalEmail *string `json:"personal_email"`
	DateOfBirth   *string `json:"date_of_birth"`
	Gender        *string `json:"gender"`
	MaritalStatus *string `json:"marital_status"`
	Nationality   *string `json:"nationality"`

	EmergencyContactName         *string `json:"emergency_contact_name"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship"`

	AddressLine1 *string `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`

	// Parsed by Validate.
	ParsedDateOfBirth *time.Time `json:"-"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonalEmail != nil && *r.PersonalEmail != "" && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{Field: "personal_email", Message: "Invalid email address"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, ok := validator.IsValidDate(*r.DateOfBirth)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "Date must be in YYYY-MM-DD format"})
		} else {
			r.ParsedDateOfBirth = &dob
		}
	}
	if r.Gender != nil && *r.Gender != "" && !validator.IsInSlice(*r.Gender, []string{"M", "F", "O", "P"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "Gender must be one of M, F, O, P"})
	}
	if r.MaritalStatus != nil && *r.MaritalStatus != "" && !validator.IsInSlice(*r.MaritalStatus, []string{"S", "M", "D", "W", "O"}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "Marital status must be one of S, M, D, W, O"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetManagerRequest struct {
	EmployeeUserID string  `json:"employee_user_id"`
	ManagerUserID  *string `json:"manager_user_id"`
}

func (r SetManagerRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeUserID) {
		errs = append(errs, validator.ValidationError{Field: "employee_user_id", Message: "Employee user ID is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	FullName         string        `json:"full_name,omitempty"`
	Designation      string        `json:"designation,omitempty"`
	Department       string        `json:"department,omitempty"`
	EmploymentStatus string        `json:"employment_status"`
	DateOfJoining    *string       `json:"date_of_joining,omitempty"`
	ManagerID        *string       `json:"manager_id,omitempty"`
	ManagerName      *string       `json:"manager_name,omitempty"`
	Balances         LeaveBalances `json:"leave_balances"`
}

func ToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Designation:      p.Designation,
		Department:       p.Department,
		EmploymentStatus: string(p.EmploymentStatus),
		ManagerID:        p.ManagerID,
		ManagerName:      p.ManagerName,
		Balances:         p.Balances,
	}
	if p.FullName != nil {
		resp.FullName = *p.FullName
	}
	if p.DateOfJoining != nil {
		doj := p.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &doj
	}
	return resp
}
