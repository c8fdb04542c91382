package user

import "github.com/Chaithanyaistharla/hrm/internal/pkg/validator"

type ListFilter struct {
	Search     *string
	Department *string
	Role       *Role
	Page       int
	Limit      int
}

type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (r AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "User ID is required"})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role must be one of employee, manager, hr, admin"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetActiveRequest struct {
	UserID string `json:"user_id"`
	Active bool   `json:"active"`
}

func (r SetActiveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "User ID is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Role         Role    `json:"role"`
	Department   string  `json:"department,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	IsActive     bool    `json:"is_active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		Department:   u.Department,
		EmployeeCode: u.EmployeeCode,
		IsActive:     u.IsActive,
	}
}
