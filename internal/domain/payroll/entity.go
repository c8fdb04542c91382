package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayslipStatus string

const (
	PayslipStatusDraft PayslipStatus = "draft"
	PayslipStatusFinal PayslipStatus = "final"
)

// Payslip is one employee's pay statement for a (year, month) period.
// (employee_id, year, month) is unique.
type Payslip struct {
	ID         string
	EmployeeID string
	Year       int
	Month      time.Month

	BaseSalary          decimal.Decimal
	Allowances          decimal.Decimal
	Deductions          decimal.Decimal
	UnpaidLeaveDays     int
	UnpaidLeaveDeducted decimal.Decimal
	NetPay              decimal.Decimal
	Currency            string

	Status      PayslipStatus
	GeneratedBy string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields for responses
	EmployeeName *string
}
