package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/attendance"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `ar.id, ar.employee_id, ar.date, ar.clock_in, ar.clock_out,
	ar.ip, ar.device_info, ar.location, ar.created_at, ar.updated_at,
	u.full_name AS employee_name`

const attendanceJoins = `
	FROM attendance_records ar
	JOIN users u ON ar.employee_id = u.id`

func scanAttendanceRecord(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID,
		&r.EmployeeID,
		&r.Date,
		&r.ClockIn,
		&r.ClockOut,
		&r.IP,
		&r.DeviceInfo,
		&r.Location,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.EmployeeName,
	)
	return r, err
}

// Create implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, clock_in, clock_out, ip, device_info, location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	id := uuid.New().String()
	var createdID string
	err := q.QueryRow(ctx, query,
		id,
		record.EmployeeID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.IP,
		record.DeviceInfo,
		record.Location,
	).Scan(&createdID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return r.getByID(ctx, createdID)
}

func (r *attendanceRepositoryImpl) getByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE ar.id = $1`

	record, err := scanAttendanceRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE ar.employee_id = $1 AND ar.date = $2`

	record, err := scanAttendanceRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by date: %w", err)
	}
	return record, nil
}

// SetClockOut implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE attendance_records SET clock_out = $1, updated_at = NOW() WHERE id = $2`

	result, err := q.Exec(ctx, query, clockOut, id)
	if err != nil {
		return fmt.Errorf("failed to set clock out: %w", err)
	}
	if result.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, conditions []string, args []interface{}, argIdx int, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", attendanceJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
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
		ORDER BY ar.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		record, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByEmployee implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	conditions := []string{"ar.employee_id = $1"}
	args := []interface{}{employeeID}
	return r.list(ctx, conditions, args, 2, filter)
}

// ListTeam implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListTeam(ctx context.Context, managerID *string, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1
	if managerID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"ar.employee_id IN (SELECT user_id FROM employee_profiles WHERE manager_id = $%d)", argIdx))
		args = append(args, *managerID)
		argIdx++
	}
	return r.list(ctx, conditions, args, argIdx, filter)
}
