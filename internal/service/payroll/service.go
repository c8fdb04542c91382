package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/domain/payroll"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
	"github.com/shopspring/decimal"
)

// LeaveUsageSource is the slice of the leave repository payroll needs.
type LeaveUsageSource interface {
	SumApprovedDaysInMonth(ctx context.Context, employeeID string, t leave.Type, year int, month time.Month) (int, error)
}

type PayrollServiceImpl struct {
	payslips payroll.PayslipRepository
	profiles employee.ProfileRepository
	leaves   LeaveUsageSource
	gate     *access.Gate

	now func() time.Time
}

func NewPayrollService(
	payslips payroll.PayslipRepository,
	profiles employee.ProfileRepository,
	leaves LeaveUsageSource,
	gate *access.Gate,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payslips: payslips,
		profiles: profiles,
		leaves:   leaves,
		gate:     gate,
		now:      time.Now,
	}
}

// Generate computes a draft payslip for one employee and period. Approved
// unpaid leave starting in the period is deducted at the daily rate
// (monthly salary / calendar days in the month).
func (s *PayrollServiceImpl) Generate(ctx context.Context, actor user.User, req payroll.GeneratePayslipRequest) (payroll.Payslip, error) {
	if err := s.gate.Require(actor, user.OperationManagePayroll); err != nil {
		return payroll.Payslip{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.Payslip{}, err
	}

	profile, err := s.profiles.GetByUserID(ctx, req.EmployeeUserID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if profile.Salary == nil {
		return payroll.Payslip{}, payroll.ErrNoSalary
	}

	unpaidDays, err := s.leaves.SumApprovedDaysInMonth(ctx, req.EmployeeUserID, leave.TypeUnpaid, req.ParsedYear, req.ParsedMonth)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to sum unpaid leave days: %w", err)
	}

	baseSalary := *profile.Salary
	daysInMonth := time.Date(req.ParsedYear, req.ParsedMonth+1, 0, 0, 0, 0, 0, time.UTC).Day()
	dailyRate := baseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	unpaidDeduction := dailyRate.Mul(decimal.NewFromInt(int64(unpaidDays))).Round(2)

	netPay := baseSalary.
		Add(req.ParsedAllowances).
		Sub(req.ParsedDeductions).
		Sub(unpaidDeduction).
		Round(2)

	return s.payslips.Create(ctx, payroll.Payslip{
		EmployeeID:          req.EmployeeUserID,
		Year:                req.ParsedYear,
		Month:               req.ParsedMonth,
		BaseSalary:          baseSalary,
		Allowances:          req.ParsedAllowances,
		Deductions:          req.ParsedDeductions,
		UnpaidLeaveDays:     unpaidDays,
		UnpaidLeaveDeducted: unpaidDeduction,
		NetPay:              netPay,
		Currency:            profile.SalaryCurrency,
		Status:              payroll.PayslipStatusDraft,
		GeneratedBy:         actor.ID,
		CreatedAt:           s.now(),
		UpdatedAt:           s.now(),
	})
}

func (s *PayrollServiceImpl) Finalize(ctx context.Context, actor user.User, payslipID string) (payroll.Payslip, error) {
	if err := s.gate.Require(actor, user.OperationManagePayroll); err != nil {
		return payroll.Payslip{}, err
	}

	payslip, err := s.payslips.GetByID(ctx, payslipID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if payslip.Status == payroll.PayslipStatusFinal {
		return payroll.Payslip{}, payroll.ErrPayslipFinal
	}
	if err := s.payslips.Finalize(ctx, payslip.ID); err != nil {
		return payroll.Payslip{}, err
	}
	return s.payslips.GetByID(ctx, payslip.ID)
}

func (s *PayrollServiceImpl) Get(ctx context.Context, actor user.User, payslipID string) (payroll.Payslip, error) {
	payslip, err := s.payslips.GetByID(ctx, payslipID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if payslip.EmployeeID != actor.ID {
		if err := s.gate.Require(actor, user.OperationManagePayroll); err != nil {
			return payroll.Payslip{}, err
		}
	}
	return payslip, nil
}

func (s *PayrollServiceImpl) ListOwn(ctx context.Context, actor user.User, filter payroll.ListFilter) ([]payroll.Payslip, int64, error) {
	if err := s.gate.Require(actor, user.OperationViewOwnPayslips); err != nil {
		return nil, 0, err
	}
	return s.payslips.ListByEmployee(ctx, actor.ID, filter)
}

func (s *PayrollServiceImpl) RenderPDF(ctx context.Context, actor user.User, payslipID string) ([]byte, error) {
	payslip, err := s.Get(ctx, actor, payslipID)
	if err != nil {
		return nil, err
	}
	return renderPayslipPDF(payslip)
}
