package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/project"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created", "project_id", created.ID, "by", actor.ID)
	response.Created(w, "Project created", project.ToResponse(created))
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	updated, err := h.projectService.Update(r.Context(), actor, req)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project updated", project.ToResponse(updated))
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	found, err := h.projectService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, project.ToResponse(found))
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var filter project.ListFilter
	filter.Page, filter.Limit = parsePagination(r)
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		s := project.Status(statusParam)
		filter.Status = &s
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	projects, total, err := h.projectService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, project.ToResponse(p))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// ListOwn implements ProjectHandler.
func (h *ProjectHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListOwn(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, project.ToResponse(p))
	}
	response.Success(w, items)
}

// AddMember implements ProjectHandler.
func (h *ProjectHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req project.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.projectService.AddMember(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("AddMember service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added", project.ToMemberResponse(member))
}

// RemoveMember implements ProjectHandler.
func (h *ProjectHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	projectID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")
	if err := h.projectService.RemoveMember(r.Context(), actor, projectID, employeeID); err != nil {
		slog.Error("RemoveMember service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member removed", nil)
}

// ListMembers implements ProjectHandler.
func (h *ProjectHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]project.MemberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, project.ToMemberResponse(m))
	}
	response.Success(w, items)
}
