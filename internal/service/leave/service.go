package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/database"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
)

// trackedTypes is the display order of the balance summary.
var trackedTypes = []leave.Type{
	leave.TypeAnnual,
	leave.TypeSick,
	leave.TypeMaternity,
	leave.TypePaternity,
	leave.TypeEmergency,
	leave.TypeCompensatory,
}

type LeaveServiceImpl struct {
	tx       database.Transactor
	requests leave.RequestRepository
	balances leave.BalanceStore
	profiles employee.ProfileRepository
	gate     *access.Gate

	// now is swappable so "today" is deterministic in tests.
	now func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	requests leave.RequestRepository,
	balances leave.BalanceStore,
	profiles employee.ProfileRepository,
	gate *access.Gate,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		tx:       tx,
		requests: requests,
		balances: balances,
		profiles: profiles,
		gate:     gate,
		now:      time.Now,
	}
}

// Submit validates a new leave request and persists it as pending. The rules
// run in a fixed precedence: past start date, past end date, inverted range,
// overlap with an existing pending/approved request, then balance. Only the
// first violation is reported. No balance is touched here.
func (l *LeaveServiceImpl) Submit(ctx context.Context, actor user.User, req leave.SubmitRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}
	if err := l.gate.Require(actor, user.OperationApplyLeave); err != nil {
		return leave.Request{}, err
	}

	today := validator.TruncateToDay(l.now())
	from := validator.TruncateToDay(req.ParsedFrom)
	to := validator.TruncateToDay(req.ParsedTo)

	if from.Before(today) {
		return leave.Request{}, validator.ValidationErrors{
			{Field: "from_date", Message: "start date is in the past"},
		}
	}
	if to.Before(today) {
		return leave.Request{}, validator.ValidationErrors{
			{Field: "to_date", Message: "end date is in the past"},
		}
	}
	if to.Before(from) {
		return leave.Request{}, validator.ValidationErrors{
			{Field: "to_date", Message: "end date is before start date"},
		}
	}

	conflicting, err := l.requests.FindOverlapping(ctx, actor.ID, from, to)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if conflicting != nil {
		return leave.Request{}, &leave.OverlapError{Conflicting: *conflicting}
	}

	request := leave.Request{
		EmployeeID: actor.ID,
		Type:       req.Type,
		FromDate:   from,
		ToDate:     to,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedAt:  l.now(),
	}

	if req.Type.BalanceTracked() {
		balance, err := l.balances.Balance(ctx, actor.ID, req.Type)
		if err != nil {
			return leave.Request{}, fmt.Errorf("failed to read leave balance: %w", err)
		}
		used, err := l.requests.SumApprovedDays(ctx, actor.ID, req.Type, request.BalanceYear())
		if err != nil {
			return leave.Request{}, fmt.Errorf("failed to sum approved leave days: %w", err)
		}
		available := balance - used
		if requested := request.DurationDays(); requested > available {
			return leave.Request{}, &leave.BalanceError{
				Type:      req.Type,
				Available: available,
				Requested: requested,
			}
		}
	}

	created, err := l.requests.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Decide approves or rejects a pending request. Approving a balance-tracked
// type debits the owner's counter and flips the status in one transaction,
// with the debit guarded against going negative. A request that is no longer
// pending reports ErrAlreadyProcessed and nothing is debited twice.
func (l *LeaveServiceImpl) Decide(ctx context.Context, approver user.User, req leave.DecideRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}
	if err := l.gate.Require(approver, user.OperationApproveLeave); err != nil {
		return leave.Request{}, err
	}

	request, err := l.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.Request{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrAlreadyProcessed
	}

	profile, err := l.profiles.GetByUserID(ctx, request.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return leave.Request{}, fmt.Errorf("leave request owner has no profile: %w", err)
		}
		return leave.Request{}, fmt.Errorf("failed to load request owner profile: %w", err)
	}
	if !l.gate.CanManageLeave(approver, profile.ManagerID) {
		return leave.Request{}, user.ErrNotPermitted
	}

	decidedAt := l.now()

	if req.Decision == leave.DecisionReject {
		var reason *string
		if !validator.IsEmpty(req.RejectionReason) {
			reason = &req.RejectionReason
		}
		if err := l.requests.Decide(ctx, request.ID, leave.StatusRejected, approver.ID, decidedAt, reason); err != nil {
			return leave.Request{}, err
		}
		return l.requests.GetByID(ctx, request.ID)
	}

	if request.Type.BalanceTracked() {
		err = l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := l.balances.Debit(txCtx, request.EmployeeID, request.Type, request.DurationDays()); err != nil {
				return err
			}
			return l.requests.Decide(txCtx, request.ID, leave.StatusApproved, approver.ID, decidedAt, nil)
		})
	} else {
		err = l.requests.Decide(ctx, request.ID, leave.StatusApproved, approver.ID, decidedAt, nil)
	}
	if err != nil {
		return leave.Request{}, err
	}

	return l.requests.GetByID(ctx, request.ID)
}

// Cancel withdraws the actor's own request while it is still pending.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, actor user.User, requestID string) error {
	if err := l.gate.Require(actor, user.OperationCancelOwnLeave); err != nil {
		return err
	}

	request, err := l.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.EmployeeID != actor.ID {
		return user.ErrNotPermitted
	}

	return l.requests.Cancel(ctx, request.ID)
}

func (l *LeaveServiceImpl) ListOwn(ctx context.Context, actor user.User, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	if err := l.gate.Require(actor, user.OperationViewOwnLeave); err != nil {
		return nil, 0, err
	}
	return l.requests.ListByEmployee(ctx, actor.ID, filter)
}

// ListPending returns the requests awaiting the approver's decision. Managers
// see only their direct reports; HR, admins, and superusers see everything.
func (l *LeaveServiceImpl) ListPending(ctx context.Context, approver user.User, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	if err := l.gate.Require(approver, user.OperationViewTeamLeave); err != nil {
		return nil, 0, err
	}

	var managerID *string
	if approver.IsManager() && !approver.IsSuperuser {
		managerID = &approver.ID
	}
	return l.requests.ListPending(ctx, managerID, filter)
}

// Balances reports, per balance-tracked type, the stored counter, the days of
// approved leave starting in the given year, and the difference the submit
// check would apply.
func (l *LeaveServiceImpl) Balances(ctx context.Context, actor user.User, employeeUserID string, year int) ([]leave.BalanceSummary, error) {
	if employeeUserID == actor.ID {
		if err := l.gate.Require(actor, user.OperationViewOwnDashboard); err != nil {
			return nil, err
		}
	} else if err := l.gate.Require(actor, user.OperationViewEmployeeDetail); err != nil {
		return nil, err
	}

	summaries := make([]leave.BalanceSummary, 0, len(trackedTypes))
	for _, t := range trackedTypes {
		balance, err := l.balances.Balance(ctx, employeeUserID, t)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s balance: %w", t, err)
		}
		used, err := l.requests.SumApprovedDays(ctx, employeeUserID, t, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved %s days: %w", t, err)
		}
		summaries = append(summaries, leave.BalanceSummary{
			Type:      t,
			Balance:   balance,
			UsedDays:  used,
			Available: balance - used,
		})
	}
	return summaries, nil
}
