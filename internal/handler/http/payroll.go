package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Chaithanyaistharla/hrm/internal/domain/payroll"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req payroll.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payslip, err := h.payrollService.Generate(r.Context(), actor, req)
	if err != nil {
		slog.Error("Generate payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payslip generated", "payslip_id", payslip.ID, "employee", payslip.EmployeeID, "by", actor.ID)
	response.Created(w, "Payslip generated", payroll.ToResponse(payslip))
}

// Finalize implements PayrollHandler.
func (h *PayrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	payslip, err := h.payrollService.Finalize(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Finalize payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip finalized", payroll.ToResponse(payslip))
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	payslip, err := h.payrollService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToResponse(payslip))
}

// ListOwn implements PayrollHandler.
func (h *PayrollHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var filter payroll.ListFilter
	filter.Page, filter.Limit = parsePagination(r)
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		if year, err := strconv.Atoi(yearParam); err == nil {
			filter.Year = &year
		}
	}

	payslips, total, err := h.payrollService.ListOwn(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		items = append(items, payroll.ToResponse(p))
	}
	response.SuccessWithMeta(w, items, response.PageMeta(filter.Page, filter.Limit, total))
}

// DownloadPDF implements PayrollHandler.
func (h *PayrollHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	data, err := h.payrollService.RenderPDF(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payslip.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
