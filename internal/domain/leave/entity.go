package leave

import "time"

type Type string

const (
	TypeAnnual       Type = "annual"
	TypeSick         Type = "sick"
	TypeMaternity    Type = "maternity"
	TypePaternity    Type = "paternity"
	TypeEmergency    Type = "emergency"
	TypeUnpaid       Type = "unpaid"
	TypeCompensatory Type = "compensatory"
	TypeOther        Type = "other"
)

// Types lists every valid leave type value.
var Types = []Type{
	TypeAnnual, TypeSick, TypeMaternity, TypePaternity,
	TypeEmergency, TypeUnpaid, TypeCompensatory, TypeOther,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// BalanceTracked reports whether the type debits a finite yearly allowance.
// Unpaid and other leave are unmetered.
func (t Type) BalanceTracked() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeMaternity, TypePaternity, TypeEmergency, TypeCompensatory:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Request is a leave request over an inclusive [FromDate, ToDate] range.
// Status moves Pending -> Approved | Rejected | Cancelled exactly once.
type Request struct {
	ID         string
	EmployeeID string
	Type       Type

	FromDate time.Time
	ToDate   time.Time
	Reason   string

	Status          Status
	ApproverID      *string
	RejectionReason *string

	AppliedAt time.Time
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for responses
	EmployeeName *string
	ApproverName *string
}

// DurationDays is the inclusive day count of the range.
func (r Request) DurationDays() int {
	return int(r.ToDate.Sub(r.FromDate).Hours()/24) + 1
}

// BalanceYear is the calendar year the request's usage counts against.
// A range spanning a year boundary is counted entirely in the start year.
func (r Request) BalanceYear() int {
	return r.FromDate.Year()
}
