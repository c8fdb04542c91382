package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string, filter RequestFilter) ([]Request, int64, error)
	// ListPending returns pending requests; when managerID is non-nil only
	// requests owned by that manager's direct reports are returned.
	ListPending(ctx context.Context, managerID *string, filter RequestFilter) ([]Request, int64, error)
	// FindOverlapping returns the first pending/approved request of the
	// employee whose inclusive range intersects [from, to], or nil.
	FindOverlapping(ctx context.Context, employeeID string, from, to time.Time) (*Request, error)
	// SumApprovedDays totals DurationDays over approved requests of the type
	// whose start date falls in the given calendar year.
	SumApprovedDays(ctx context.Context, employeeID string, t Type, year int) (int, error)
	// SumApprovedDaysInMonth is like SumApprovedDays but partitioned by the
	// start date's month; used by payroll for unpaid-leave deductions.
	SumApprovedDaysInMonth(ctx context.Context, employeeID string, t Type, year int, month time.Month) (int, error)
	// Decide sets the terminal status, approver and decision timestamp, but
	// only while the row is still pending; returns ErrAlreadyProcessed when
	// another decision won the race.
	Decide(ctx context.Context, id string, status Status, approverID string, decidedAt time.Time, rejectionReason *string) error
	// Cancel flips a pending request to cancelled; returns
	// ErrAlreadyProcessed if it is no longer pending.
	Cancel(ctx context.Context, id string) error
}

// BalanceStore reads and debits the per-type day counters kept on the
// employee profile row. Debit is guarded: it must never let the counter go
// negative, even under concurrent approvals.
type BalanceStore interface {
	Balance(ctx context.Context, employeeID string, t Type) (int, error)
	// Debit subtracts days from the counter iff the remainder is >= 0,
	// returning ErrInsufficientBalance otherwise.
	Debit(ctx context.Context, employeeID string, t Type, days int) error
}
