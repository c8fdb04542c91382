package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chaithanyaistharla/hrm/internal/domain/payroll"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

const payslipColumns = `ps.id, ps.employee_id, ps.year, ps.month,
	ps.base_salary, ps.allowances, ps.deductions, ps.unpaid_leave_days, ps.unpaid_leave_deducted,
	ps.net_pay, ps.currency, ps.status, ps.generated_by, ps.created_at, ps.updated_at,
	u.full_name AS employee_name`

const payslipJoins = `
	FROM payslips ps
	JOIN users u ON ps.employee_id = u.id`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Year,
		&p.Month,
		&p.BaseSalary,
		&p.Allowances,
		&p.Deductions,
		&p.UnpaidLeaveDays,
		&p.UnpaidLeaveDeducted,
		&p.NetPay,
		&p.Currency,
		&p.Status,
		&p.GeneratedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
	)
	return p, err
}

// Create implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, year, month, base_salary, allowances, deductions,
			unpaid_leave_days, unpaid_leave_deducted, net_pay, currency, status, generated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		p.EmployeeID,
		p.Year,
		int(p.Month),
		p.BaseSalary,
		p.Allowances,
		p.Deductions,
		p.UnpaidLeaveDays,
		p.UnpaidLeaveDeducted,
		p.NetPay,
		p.Currency,
		p.Status,
		p.GeneratedBy,
	).Scan(&createdID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payslip{}, payroll.ErrPayslipExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + payslipJoins + ` WHERE ps.id = $1`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

// ListByEmployee implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter payroll.ListFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"ps.employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("ps.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", payslipJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE %s
		ORDER BY ps.year DESC, ps.month DESC
		LIMIT $%d OFFSET $%d
	`, payslipColumns, payslipJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return payslips, total, nil
}

// Finalize implements payroll.PayslipRepository. The draft guard makes the
// transition one-way.
func (r *payslipRepositoryImpl) Finalize(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payslips SET status = 'final', updated_at = NOW() WHERE id = $1 AND status = 'draft'`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to finalize payslip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}
