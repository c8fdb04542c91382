package leave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
)

// In-memory stand-ins for the postgresql repositories. Debit and Decide keep
// the same guarded semantics as the SQL they replace.

type fakeRequestRepo struct {
	mu       sync.Mutex
	seq      int
	requests map[string]leave.Request
	profiles *fakeProfileRepo
}

func newFakeRequestRepo(profiles *fakeProfileRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		requests: make(map[string]leave.Request),
		profiles: profiles,
	}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	request.ID = fmt.Sprintf("req-%d", f.seq)
	request.CreatedAt = request.AppliedAt
	request.UpdatedAt = request.AppliedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Request
	for _, request := range f.requests {
		if request.EmployeeID != employeeID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && request.Type != *filter.Type {
			continue
		}
		out = append(out, request)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) ListPending(ctx context.Context, managerID *string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Request
	for _, request := range f.requests {
		if request.Status != leave.StatusPending {
			continue
		}
		if managerID != nil {
			profile, err := f.profiles.GetByUserID(ctx, request.EmployeeID)
			if err != nil {
				continue
			}
			if profile.ManagerID == nil || *profile.ManagerID != *managerID {
				continue
			}
		}
		out = append(out, request)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) FindOverlapping(ctx context.Context, employeeID string, from, to time.Time) (*leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, request := range f.requests {
		if request.EmployeeID != employeeID {
			continue
		}
		if request.Status != leave.StatusPending && request.Status != leave.StatusApproved {
			continue
		}
		if !request.FromDate.After(to) && !request.ToDate.Before(from) {
			existing := request
			return &existing, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) SumApprovedDays(ctx context.Context, employeeID string, t leave.Type, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Type != t {
			continue
		}
		if request.Status != leave.StatusApproved || request.BalanceYear() != year {
			continue
		}
		total += request.DurationDays()
	}
	return total, nil
}

func (f *fakeRequestRepo) SumApprovedDaysInMonth(ctx context.Context, employeeID string, t leave.Type, year int, month time.Month) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Type != t {
			continue
		}
		if request.Status != leave.StatusApproved {
			continue
		}
		if request.FromDate.Year() != year || request.FromDate.Month() != month {
			continue
		}
		total += request.DurationDays()
	}
	return total, nil
}

func (f *fakeRequestRepo) Decide(ctx context.Context, id string, status leave.Status, approverID string, decidedAt time.Time, rejectionReason *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	request.Status = status
	request.ApproverID = &approverID
	request.DecidedAt = &decidedAt
	request.RejectionReason = rejectionReason
	request.UpdatedAt = decidedAt
	f.requests[id] = request
	return nil
}

func (f *fakeRequestRepo) Cancel(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	request.Status = leave.StatusCancelled
	f.requests[id] = request
	return nil
}

type fakeBalanceStore struct {
	mu       sync.Mutex
	counters map[string]map[leave.Type]int
}

func newFakeBalanceStore() *fakeBalanceStore {
	return &fakeBalanceStore{counters: make(map[string]map[leave.Type]int)}
}

func (f *fakeBalanceStore) set(employeeID string, t leave.Type, days int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counters[employeeID] == nil {
		f.counters[employeeID] = make(map[leave.Type]int)
	}
	f.counters[employeeID][t] = days
}

func (f *fakeBalanceStore) Balance(ctx context.Context, employeeID string, t leave.Type) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[employeeID][t], nil
}

func (f *fakeBalanceStore) Debit(ctx context.Context, employeeID string, t leave.Type, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counters[employeeID][t] < days {
		return leave.ErrInsufficientBalance
	}
	f.counters[employeeID][t] -= days
	return nil
}

func (f *fakeBalanceStore) snapshot() map[string]map[leave.Type]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make(map[string]map[leave.Type]int, len(f.counters))
	for employeeID, counters := range f.counters {
		inner := make(map[leave.Type]int, len(counters))
		for t, days := range counters {
			inner[t] = days
		}
		copied[employeeID] = inner
	}
	return copied
}

func (f *fakeBalanceStore) restore(snapshot map[string]map[leave.Type]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = snapshot
}

// fakeTransactor serializes transactions and rolls back balance mutations on
// error, mimicking the row-locked transaction the real repositories run in.
type fakeTransactor struct {
	mu       sync.Mutex
	balances *fakeBalanceStore
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := t.balances.snapshot()
	if err := fn(ctx); err != nil {
		t.balances.restore(snapshot)
		return err
	}
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]employee.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]employee.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == "" {
		profile.ID = "prof-" + profile.UserID
	}
	f.profiles[profile.UserID] = profile
	return profile, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, profile := range f.profiles {
		if profile.ID == id {
			return profile, nil
		}
	}
	return employee.Profile{}, employee.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return employee.Profile{}, employee.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, req employee.UpdateProfileRequest) error {
	return nil
}

func (f *fakeProfileRepo) SetManager(ctx context.Context, profileID string, managerID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for userID, profile := range f.profiles {
		if profile.ID == profileID {
			profile.ManagerID = managerID
			f.profiles[userID] = profile
			return nil
		}
	}
	return employee.ErrProfileNotFound
}

func (f *fakeProfileRepo) Search(ctx context.Context, filter employee.DirectoryFilter) ([]employee.Profile, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Profile
	for _, profile := range f.profiles {
		out = append(out, profile)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProfileRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Profile
	for _, profile := range f.profiles {
		if profile.ManagerID != nil && *profile.ManagerID == managerID {
			out = append(out, profile)
		}
	}
	return out, nil
}
