package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Chaithanyaistharla/hrm/internal/domain/leave"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/Chaithanyaistharla/hrm/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func parseLeaveFilter(r *http.Request) leave.RequestFilter {
	var filter leave.RequestFilter
	filter.Page, filter.Limit = parsePagination(r)
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		t := leave.Type(typeParam)
		filter.Type = &t
	}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		s := leave.Status(statusParam)
		filter.Status = &s
	}
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

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.leaveService.Submit(r.Context(), actor, req)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "request_id", request.ID, "employee", actor.ID)
	response.Created(w, "Leave request submitted", leave.ToResponse(request))
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	approver, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	request, err := h.leaveService.Decide(r.Context(), approver, req)
	if err != nil {
		slog.Error("Decide leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "request_id", request.ID, "status", request.Status, "by", approver.ID)
	response.SuccessWithMessage(w, "Leave request "+string(request.Status), leave.ToResponse(request))
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	requestID := chi.URLParam(r, "id")
	if err := h.leaveService.Cancel(r.Context(), actor, requestID); err != nil {
		slog.Error("Cancel leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}

// ListOwn implements LeaveHandler.
func (h *LeaveHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter := parseLeaveFilter(r)
	requests, total, err := h.leaveService.ListOwn(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		items = append(items, leave.ToResponse(request))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	approver, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter := parseLeaveFilter(r)
	requests, total, err := h.leaveService.ListPending(r.Context(), approver, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		items = append(items, leave.ToResponse(request))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// Balances implements LeaveHandler.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	employeeUserID := r.URL.Query().Get("employee_id")
	if employeeUserID == "" {
		employeeUserID = actor.ID
	}
	year := time.Now().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		if parsed, err := strconv.Atoi(yearParam); err == nil && parsed > 0 {
			year = parsed
		}
	}

	balances, err := h.leaveService.Balances(r.Context(), actor, employeeUserID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balances)
}
