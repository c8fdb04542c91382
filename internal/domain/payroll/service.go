package payroll

import (
	"context"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
)

type Service interface {
	Generate(ctx context.Context, actor user.User, req GeneratePayslipRequest) (Payslip, error)
	Finalize(ctx context.Context, actor user.User, payslipID string) (Payslip, error)
	Get(ctx context.Context, actor user.User, payslipID string) (Payslip, error)
	ListOwn(ctx context.Context, actor user.User, filter ListFilter) ([]Payslip, int64, error)
	RenderPDF(ctx context.Context, actor user.User, payslipID string) ([]byte, error)
}
