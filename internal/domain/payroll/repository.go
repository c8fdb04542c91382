package payroll

import "context"

// PayslipRepository - interface for payslips table
type PayslipRepository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Payslip, int64, error)
	Finalize(ctx context.Context, id string) error
}
