package response

import (
	"errors"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/attendance"
	"github.com/Chaithanyaistharla/hrm/internal/domain/auth"
	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/domain/payroll"
	"github.com/Chaithanyaistharla/hrm/internal/domain/project"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)

	// User domain errors
	case errors.Is(err, user.ErrNotPermitted):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrManagerCycle):
		Conflict(w, "Assignment would create a reporting cycle")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrMemberNotFound):
		NotFound(w, "Project member not found")
	case errors.Is(err, project.ErrMemberExists):
		Conflict(w, "Employee is already a member of this project")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipExists):
		Conflict(w, "Payslip already exists for this period")
	case errors.Is(err, payroll.ErrPayslipFinal):
		Conflict(w, "Payslip is already finalized")
	case errors.Is(err, payroll.ErrNoSalary):
		BadRequest(w, "Employee has no salary configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
