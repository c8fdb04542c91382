package leave

import (
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
)

type RequestFilter struct {
	Type     *Type
	Status   *Status
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}

type SubmitRequest struct {
	Type     Type   `json:"leave_type"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Reason   string `json:"reason"`

	// Parsed by Validate.
	ParsedFrom time.Time `json:"-"`
	ParsedTo   time.Time `json:"-"`
}

// Validate checks shape only: known type, parseable dates. Rule evaluation
// (past dates, ordering, overlap, balance) happens in the service so that the
// documented precedence holds.
func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Unknown leave type"})
	}
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "From date is required"})
	} else if from, ok := validator.IsValidDate(r.FromDate); ok {
		r.ParsedFrom = from
	} else {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "To date is required"})
	} else if to, ok := validator.IsValidDate(r.ToDate); ok {
		r.ParsedTo = to
	} else {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "Date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	RequestID       string   `json:"request_id"`
	Decision        Decision `json:"decision"`
	RejectionReason string   `json:"rejection_reason"`
}

func (r DecideRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "Request ID is required"})
	}
	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "Decision must be approve or reject"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Type            Type    `json:"leave_type"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	DurationDays    int     `json:"duration_days"`
	Reason          string  `json:"reason,omitempty"`
	Status          Status  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	ApproverName    *string `json:"approver_name,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	AppliedAt       string  `json:"applied_at"`
	DecidedAt       *string `json:"decided_at,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Type:            r.Type,
		FromDate:        r.FromDate.Format("2006-01-02"),
		ToDate:          r.ToDate.Format("2006-01-02"),
		DurationDays:    r.DurationDays(),
		Reason:          r.Reason,
		Status:          r.Status,
		ApproverID:      r.ApproverID,
		ApproverName:    r.ApproverName,
		RejectionReason: r.RejectionReason,
		AppliedAt:       r.AppliedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		decided := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

type BalanceSummary struct {
	Type      Type `json:"leave_type"`
	Balance   int  `json:"balance"`
	UsedDays  int  `json:"used_days"`
	Available int  `json:"available"`
}
