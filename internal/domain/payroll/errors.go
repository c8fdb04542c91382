package payroll

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrPayslipExists   = errors.New("payslip for this period already exists")
	ErrNoSalary        = errors.New("employee has no salary configured")
	ErrPayslipFinal    = errors.New("payslip is already finalized")
)
