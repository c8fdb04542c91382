package payroll

import (
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ListFilter struct {
	Year  *int
	Page  int
	Limit int
}

type GeneratePayslipRequest struct {
	EmployeeUserID string `json:"employee_user_id"`
	Period         string `json:"period"` // "YYYY-MM"
	Allowances     string `json:"allowances"`
	Deductions     string `json:"deductions"`

	ParsedYear       int             `json:"-"`
	ParsedMonth      time.Month      `json:"-"`
	ParsedAllowances decimal.Decimal `json:"-"`
	ParsedDeductions decimal.Decimal `json:"-"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUserID) {
		errs = append(errs, validator.ValidationError{Field: "employee_user_id", Message: "Employee user ID is required"})
	}
	year, month, ok := validator.IsValidYearMonth(r.Period)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "Period must be in YYYY-MM format"})
	} else {
		r.ParsedYear = year
		r.ParsedMonth = month
	}

	r.ParsedAllowances = decimal.Zero
	if !validator.IsEmpty(r.Allowances) {
		allowances, err := decimal.NewFromString(r.Allowances)
		if err != nil || allowances.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "allowances", Message: "Allowances must be a non-negative amount"})
		} else {
			r.ParsedAllowances = allowances
		}
	}
	r.ParsedDeductions = decimal.Zero
	if !validator.IsEmpty(r.Deductions) {
		deductions, err := decimal.NewFromString(r.Deductions)
		if err != nil || deductions.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions", Message: "Deductions must be a non-negative amount"})
		} else {
			r.ParsedDeductions = deductions
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	Period              string  `json:"period"`
	BaseSalary          string  `json:"base_salary"`
	Allowances          string  `json:"allowances"`
	Deductions          string  `json:"deductions"`
	UnpaidLeaveDays     int     `json:"unpaid_leave_days"`
	UnpaidLeaveDeducted string  `json:"unpaid_leave_deducted"`
	NetPay              string  `json:"net_pay"`
	Currency            string  `json:"currency"`
	Status              string  `json:"status"`
}

func ToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:                  p.ID,
		EmployeeID:          p.EmployeeID,
		EmployeeName:        p.EmployeeName,
		Period:              time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		BaseSalary:          p.BaseSalary.StringFixed(2),
		Allowances:          p.Allowances.StringFixed(2),
		Deductions:          p.Deductions.StringFixed(2),
		UnpaidLeaveDays:     p.UnpaidLeaveDays,
		UnpaidLeaveDeducted: p.UnpaidLeaveDeducted.StringFixed(2),
		NetPay:              p.NetPay.StringFixed(2),
		Currency:            p.Currency,
		Status:              string(p.Status),
	}
}
