package attendance

import (
	"context"
	"time"
)

// RecordRepository - interface for attendance_records table
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time) error
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Record, int64, error)
	// ListTeam returns records for a manager's direct reports; a nil
	// managerID returns records for every employee (HR/Admin view).
	ListTeam(ctx context.Context, managerID *string, filter ListFilter) ([]Record, int64, error)
}
