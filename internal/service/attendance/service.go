package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/attendance"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
	"github.com/Chaithanyaistharla/hrm/internal/service/access"
)

type AttendanceServiceImpl struct {
	records attendance.RecordRepository
	gate    *access.Gate

	now func() time.Time
}

func NewAttendanceService(records attendance.RecordRepository, gate *access.Gate) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		records: records,
		gate:    gate,
		now:     time.Now,
	}
}

// ClockIn opens today's attendance record. One record per employee per day;
// a second clock-in the same day is rejected.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, actor user.User, req attendance.ClockInRequest) (attendance.Record, error) {
	if err := s.gate.Require(actor, user.OperationClockInOut); err != nil {
		return attendance.Record{}, err
	}

	now := s.now()
	today := validator.TruncateToDay(now)

	existing, err := s.records.GetByEmployeeAndDate(ctx, actor.ID, today)
	if err == nil && existing.ClockIn != nil {
		return attendance.Record{}, attendance.ErrAlreadyClockedIn
	}
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, err
	}

	return s.records.Create(ctx, attendance.Record{
		EmployeeID: actor.ID,
		Date:       today,
		ClockIn:    &now,
		IP:         req.IP,
		DeviceInfo: req.DeviceInfo,
		Location:   req.Location,
	})
}

// ClockOut closes today's record.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, actor user.User) (attendance.Record, error) {
	if err := s.gate.Require(actor, user.OperationClockInOut); err != nil {
		return attendance.Record{}, err
	}

	now := s.now()
	today := validator.TruncateToDay(now)

	record, err := s.records.GetByEmployeeAndDate(ctx, actor.ID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Record{}, attendance.ErrNotClockedIn
		}
		return attendance.Record{}, err
	}
	if record.ClockIn == nil {
		return attendance.Record{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.Record{}, attendance.ErrAlreadyClockedOut
	}

	if err := s.records.SetClockOut(ctx, record.ID, now); err != nil {
		return attendance.Record{}, err
	}
	return s.records.GetByEmployeeAndDate(ctx, actor.ID, today)
}

func (s *AttendanceServiceImpl) Today(ctx context.Context, actor user.User) (attendance.Record, error) {
	if err := s.gate.Require(actor, user.OperationViewOwnAttendance); err != nil {
		return attendance.Record{}, err
	}
	return s.records.GetByEmployeeAndDate(ctx, actor.ID, validator.TruncateToDay(s.now()))
}

func (s *AttendanceServiceImpl) ListOwn(ctx context.Context, actor user.User, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	if err := s.gate.Require(actor, user.OperationViewOwnAttendance); err != nil {
		return nil, 0, err
	}
	return s.records.ListByEmployee(ctx, actor.ID, filter)
}

// ListTeam returns records for the approver's scope: managers get their
// direct reports, HR and admins get everyone.
func (s *AttendanceServiceImpl) ListTeam(ctx context.Context, actor user.User, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	if err := s.gate.Require(actor, user.OperationViewTeamAttendance); err != nil {
		return nil, 0, err
	}

	var managerID *string
	if actor.IsManager() && !actor.IsSuperuser {
		managerID = &actor.ID
	}
	return s.records.ListTeam(ctx, managerID, filter)
}
