package reportshandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kpiscore/internal/domain/assessment"
	"kpiscore/internal/domain/auth"
	"kpiscore/internal/domain/employee"
	"kpiscore/internal/domain/reports"
	"kpiscore/internal/domain/scoring"
	"kpiscore/internal/transport/http/api"
	"kpiscore/internal/transport/http/middleware"
	"kpiscore/internal/transport/http/shared"
)

type Handler struct {
	Assessments *assessment.Service
	Employees   *employee.Service
}

func NewHandler(assessments *assessment.Service, employees *employee.Service) *Handler {
	return &Handler{Assessments: assessments, Employees: employees}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/assessments/{employeeID}", h.handleAssessmentJSON)
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/assessments/{employeeID}.csv", h.handleAssessmentCSV)
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/assessments/{employeeID}.pdf", h.handleAssessmentPDF)
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/team", h.handleTeamSummary)
	})
}

func (h *Handler) loadAssessment(w http.ResponseWriter, r *http.Request) (scoring.OverallAssessment, *employee.Employee, bool) {
	employeeID := chi.URLParam(r, "employeeID")
	period := r.URL.Query().Get("period")
	if err := shared.PeriodError(period); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return scoring.OverallAssessment{}, nil, false
	}

	emp, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return scoring.OverallAssessment{}, nil, false
		}
		slog.Warn("report employee lookup failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return scoring.OverallAssessment{}, nil, false
	}

	result, err := h.Assessments.Latest(r.Context(), employeeID, period)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "no assessment for this period", middleware.GetRequestID(r.Context()))
			return scoring.OverallAssessment{}, nil, false
		}
		slog.Warn("report snapshot load failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load assessment", middleware.GetRequestID(r.Context()))
		return scoring.OverallAssessment{}, nil, false
	}
	return result, emp, true
}

func (h *Handler) handleAssessmentJSON(w http.ResponseWriter, r *http.Request) {
	result, _, ok := h.loadAssessment(w, r)
	if !ok {
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAssessmentCSV(w http.ResponseWriter, r *http.Request) {
	result, emp, ok := h.loadAssessment(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.csv", emp.ID, result.Period))
	if err := reports.WriteAssessmentCSV(w, result); err != nil {
		slog.Warn("csv report write failed", "err", err)
	}
}

func (h *Handler) handleAssessmentPDF(w http.ResponseWriter, r *http.Request) {
	result, emp, ok := h.loadAssessment(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.pdf", emp.ID, result.Period))
	if err := reports.WriteAssessmentPDF(w, emp.Name, result); err != nil {
		slog.Warn("pdf report write failed", "err", err)
	}
}

func (h *Handler) handleTeamSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	period := r.URL.Query().Get("period")
	if err := shared.PeriodError(period); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	managerID := r.URL.Query().Get("managerId")
	if managerID == "" {
		managerID = user.EmployeeID
	}
	if user.Role == auth.RoleManager && managerID != user.EmployeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "managers may only report on their own team", middleware.GetRequestID(r.Context()))
		return
	}
	if managerID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "managerId is required", middleware.GetRequestID(r.Context()))
		return
	}

	members, err := h.Employees.TeamMembers(r.Context(), managerID)
	if err != nil {
		slog.Warn("team lookup failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load team", middleware.GetRequestID(r.Context()))
		return
	}

	assessments := make(map[string]scoring.OverallAssessment, len(members))
	for _, m := range members {
		result, err := h.Assessments.Latest(r.Context(), m.ID, period)
		if err != nil {
			if errors.Is(err, assessment.ErrNotFound) {
				continue
			}
			slog.Warn("team member snapshot failed", "employeeId", m.ID, "err", err)
			continue
		}
		assessments[m.ID] = result
	}

	summary := reports.BuildTeamSummary(managerID, period, members, assessments)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
