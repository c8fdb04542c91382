package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date, lr.reason,
	lr.status, lr.approver_id, lr.rejection_reason, lr.applied_at, lr.decided_at,
	lr.created_at, lr.updated_at,
	e.full_name AS employee_name, a.full_name AS approver_name`

const leaveRequestJoins = `
	FROM leave_requests lr
	JOIN users e ON lr.employee_id = e.id
	LEFT JOIN users a ON lr.approver_id = a.id`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID,
		&r.EmployeeID,
		&r.Type,
		&r.FromDate,
		&r.ToDate,
		&r.Reason,
		&r.Status,
		&r.ApproverID,
		&r.RejectionReason,
		&r.AppliedAt,
		&r.DecidedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.EmployeeName,
		&r.ApproverName,
	)
	return r, err
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, from_date, to_date, reason, status, applied_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		request.EmployeeID,
		request.Type,
		request.FromDate,
		request.ToDate,
		request.Reason,
		request.Status,
		request.AppliedAt,
	).Scan(&createdID)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, conditions []string, args []interface{}, argIdx int, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("lr.from_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("lr.to_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", leaveRequestJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		ORDER BY lr.applied_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, leaveRequestJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListByEmployee implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	conditions := []string{"lr.employee_id = $1"}
	args := []interface{}{employeeID}
	return r.list(ctx, conditions, args, 2, filter)
}

// ListPending implements leave.RequestRepository. A non-nil managerID narrows
// the result to requests from that manager's direct reports.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context, managerID *string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	pending := leave.StatusPending
	filter.Status = &pending

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1
	if managerID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"lr.employee_id IN (SELECT user_id FROM employee_profiles WHERE manager_id = $%d)", argIdx))
		args = append(args, *managerID)
		argIdx++
	}
	return r.list(ctx, conditions, args, argIdx, filter)
}

// FindOverlapping implements leave.RequestRepository. Ranges are inclusive on
// both ends, so two requests overlap when neither ends before the other starts.
func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, employeeID string, from, to time.Time) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		  AND lr.status IN ('pending', 'approved')
		  AND lr.from_date <= $2
		  AND lr.to_date >= $3
		ORDER BY lr.from_date ASC
		LIMIT 1`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, employeeID, to, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find overlapping leave request: %w", err)
	}
	return &request, nil
}

// SumApprovedDays implements leave.RequestRepository. A request counts toward
// the year its start date falls in.
func (r *leaveRequestRepositoryImpl) SumApprovedDays(ctx context.Context, employeeID string, t leave.Type, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(to_date - from_date + 1), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM from_date) = $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, t, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	return total, nil
}

// SumApprovedDaysInMonth implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) SumApprovedDaysInMonth(ctx context.Context, employeeID string, t leave.Type, year int, month time.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(to_date - from_date + 1), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM from_date) = $3
		  AND EXTRACT(MONTH FROM from_date) = $4
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, t, year, int(month)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days for month: %w", err)
	}
	return total, nil
}

// Decide implements leave.RequestRepository. The pending guard makes the
// status transition first-decision-wins: a second decision touches no rows.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, approverID string, decidedAt time.Time, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approver_id = $2, decided_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`

	result, err := q.Exec(ctx, query, status, approverID, decidedAt, rejectionReason, id)
	if err != nil {
		return fmt.Errorf("failed to decide leave request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// Cancel implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to cancel leave request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}
	return nil
}
