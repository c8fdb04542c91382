package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/attendance"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func parseAttendanceFilter(r *http.Request) attendance.ListFilter {
	var filter attendance.ListFilter
	filter.Page, filter.Limit = parsePagination(r)
	if fromParam := r.URL.Query().Get("from_date"); fromParam != "" {
		if from, ok := validator.IsValidDate(fromParam); ok {
			filter.FromDate = &from
		}
	}
	if toParam := r.URL.Query().Get("to_date"); toParam != "" {
		if to, ok := validator.IsValidDate(toParam); ok {
			filter.ToDate = &to
		}
	}
	return filter
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req attendance.ClockInRequest
	// The body is optional; device info is best effort.
	_ = json.NewDecoder(r.Body).Decode(&req)
	ip := r.RemoteAddr
	req.IP = &ip

	record, err := h.attendanceService.ClockIn(r.Context(), actor, req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked in", "employee", actor.ID, "record_id", record.ID)
	response.Created(w, "Clocked in", attendance.ToResponse(record))
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), actor)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked out", "employee", actor.ID, "record_id", record.ID)
	response.SuccessWithMessage(w, "Clocked out", attendance.ToResponse(record))
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.Today(r.Context(), actor)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			response.Success(w, nil)
			return
		}
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.ToResponse(record))
}

// ListOwn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter := parseAttendanceFilter(r)
	records, total, err := h.attendanceService.ListOwn(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, attendance.ToResponse(record))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// ListTeam implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter := parseAttendanceFilter(r)
	records, total, err := h.attendanceService.ListTeam(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, attendance.ToResponse(record))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}
