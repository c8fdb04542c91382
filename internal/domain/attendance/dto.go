package attendance

import "time"

type ListFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}

// ClockInRequest carries the client-supplied device context; the IP is filled
// in by the handler from the connection.
type ClockInRequest struct {
	DeviceInfo string `json:"device_info"`
	Location   string `json:"location"`

	IP *string `json:"-"`
}

type RecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	ClockIn      *string  `json:"clock_in,omitempty"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	Status       string   `json:"status"`
}

func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date.Format("2006-01-02"),
		WorkingHours: r.WorkingHours(),
		Status:       r.Status(),
	}
	if r.ClockIn != nil {
		in := r.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &in
	}
	if r.ClockOut != nil {
		out := r.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
