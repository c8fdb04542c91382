package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	found, err := h.userService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToResponse(found))
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var filter user.ListFilter
	filter.Page, filter.Limit = parsePagination(r)
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}
	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role := user.Role(roleParam)
		filter.Role = &role
	}

	users, total, err := h.userService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, user.ToResponse(u))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// AssignRole implements UserHandler.
func (h *UserHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req user.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.userService.AssignRole(r.Context(), actor, req)
	if err != nil {
		slog.Error("AssignRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Role assigned", "user_id", req.UserID, "role", req.Role, "by", actor.ID)
	response.SuccessWithMessage(w, "Role updated", user.ToResponse(updated))
}

// SetActive implements UserHandler.
func (h *UserHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req user.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.SetActive(r.Context(), actor, req); err != nil {
		slog.Error("SetActive service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User status updated", nil)
}
