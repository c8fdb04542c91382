package attendance

import "time"

// Record tracks one employee's clock-in/out for one calendar day.
// (employee_id, date) is unique.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time

	ClockIn  *time.Time
	ClockOut *time.Time

	IP         *string
	DeviceInfo string
	Location   string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for responses
	EmployeeName *string
}

// WorkingHours returns hours between clock-in and clock-out, or nil while
// still clocked in.
func (r Record) WorkingHours() *float64 {
	if r.ClockIn == nil || r.ClockOut == nil {
		return nil
	}
	hours := r.ClockOut.Sub(*r.ClockIn).Hours()
	return &hours
}

// IsClockedIn reports whether the employee clocked in but not yet out.
func (r Record) IsClockedIn() bool {
	return r.ClockIn != nil && r.ClockOut == nil
}

// Status describes the record for display.
func (r Record) Status() string {
	switch {
	case r.ClockIn == nil:
		return "not_clocked_in"
	case r.ClockOut == nil:
		return "clocked_in"
	default:
		return "completed"
	}
}
