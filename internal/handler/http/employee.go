package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/employee"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetOwn(w http.ResponseWriter, r *http.Request)
	UpdateOwn(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Directory(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
	SetManager(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetOwn implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.employeeService.GetOwn(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponse(profile))
}

// UpdateOwn implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.employeeService.UpdateOwn(r.Context(), actor, req)
	if err != nil {
		slog.Error("UpdateOwn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated", employee.ToResponse(profile))
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	employeeUserID := chi.URLParam(r, "id")
	profile, err := h.employeeService.Get(r.Context(), actor, employeeUserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponse(profile))
}

// Directory implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Directory(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var filter employee.DirectoryFilter
	filter.Page, filter.Limit = parsePagination(r)
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	profiles, total, err := h.employeeService.Directory(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]employee.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, employee.ToResponse(p))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// Team implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	profiles, err := h.employeeService.Team(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]employee.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, employee.ToResponse(p))
	}
	response.Success(w, items)
}

// SetManager implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SetManager(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req employee.SetManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeUserID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.SetManager(r.Context(), actor, req); err != nil {
		slog.Error("SetManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Manager assigned", "employee", req.EmployeeUserID, "by", actor.ID)
	response.SuccessWithMessage(w, "Manager updated", nil)
}
