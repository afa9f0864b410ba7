package assessmenthandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kpiscore/internal/domain/assessment"
	"kpiscore/internal/domain/audit"
	"kpiscore/internal/domain/auth"
	"kpiscore/internal/domain/catalog"
	"kpiscore/internal/domain/scoring"
	"kpiscore/internal/platform/jobs"
	"kpiscore/internal/platform/metrics"
	"kpiscore/internal/transport/http/api"
	"kpiscore/internal/transport/http/middleware"
	"kpiscore/internal/transport/http/shared"
)

// BulkRunner tracks a bulk evaluation in the job_runs table.
type BulkRunner interface {
	RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error)
}

type Handler struct {
	Service *assessment.Service
	Audit   *audit.Service
	Metrics *metrics.Metrics
	Jobs    BulkRunner
}

func NewHandler(service *assessment.Service, auditSvc *audit.Service, m *metrics.Metrics, runner BulkRunner) *Handler {
	return &Handler{Service: service, Audit: auditSvc, Metrics: m, Jobs: runner}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assessments", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAssessmentRead)).Get("/catalog", h.handleCatalog)
		r.With(middleware.RequirePermission(auth.PermAssessmentRead)).Get("/records", h.handleListRecords)
		r.With(middleware.RequirePermission(auth.PermAssessmentWrite)).Post("/records", h.handleSaveBatch)
		r.With(middleware.RequirePermission(auth.PermAssessmentEvaluate)).Post("/{employeeID}/evaluate", h.handleEvaluate)
		r.With(middleware.RequirePermission(auth.PermAssessmentEvaluate)).Post("/evaluate-all", h.handleEvaluateAll)
		r.With(middleware.RequirePermission(auth.PermAssessmentRead)).Get("/{employeeID}/latest", h.handleLatest)
	})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Catalog().Categories(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	records, err := h.Service.List(r.Context(), assessment.ListFilter{
		EmployeeID: q.Get("employeeId"),
		Period:     q.Get("period"),
		Category:   q.Get("category"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		slog.Warn("record list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "record_list_failed", "failed to list records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveBatch(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetUser(r.Context())

	var payload struct {
		Items []assessment.BatchItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Items) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "items must not be empty", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.SaveBatch(r.Context(), payload.Items)
	if err != nil {
		slog.Warn("batch save failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "batch_save_failed", "failed to save records", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordBatch(result.Saved, len(result.Issues))
	}

	if err := h.Audit.Record(r.Context(), actor.UserID, "assessment.batch_save", "assessment", "", middleware.GetRequestID(r.Context()), map[string]int{"saved": result.Saved, "rejected": len(result.Issues)}); err != nil {
		slog.Warn("batch save audit failed", "err", err)
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	period := r.URL.Query().Get("period")
	if err := shared.PeriodError(period); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Evaluate(r.Context(), employeeID, period)
	if err != nil {
		h.failEvaluation(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordEvaluation("success")
	}

	if err := h.Audit.Record(r.Context(), actor.UserID, "assessment.evaluate", "employee", employeeID, middleware.GetRequestID(r.Context()), map[string]any{"period": period, "rating": result.Rating}); err != nil {
		slog.Warn("evaluate audit failed", "err", err)
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEvaluateAll(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetUser(r.Context())
	period := r.URL.Query().Get("period")
	if err := shared.PeriodError(period); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	var results []scoring.OverallAssessment
	var issues []assessment.EvaluationIssue
	run := func(ctx context.Context) (any, error) {
		var err error
		results, issues, err = h.Service.EvaluateAll(ctx, period)
		if err != nil {
			return nil, err
		}
		return map[string]any{"period": period, "evaluated": len(results), "skipped": len(issues)}, nil
	}
	var err error
	if h.Jobs != nil {
		_, err = h.Jobs.RunNow(r.Context(), jobs.JobSnapshotRefresh, run)
	} else {
		_, err = run(r.Context())
	}
	if err != nil {
		slog.Warn("evaluate all failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "evaluate_all_failed", "failed to evaluate period", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordEvaluation("bulk")
	}

	if err := h.Audit.Record(r.Context(), actor.UserID, "assessment.evaluate_all", "period", period, middleware.GetRequestID(r.Context()), map[string]int{"evaluated": len(results), "skipped": len(issues)}); err != nil {
		slog.Warn("evaluate all audit failed", "err", err)
	}
	api.Success(w, map[string]any{"results": results, "issues": issues}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	period := r.URL.Query().Get("period")
	if err := shared.PeriodError(period); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	if user.Role == auth.RoleEmployee && user.EmployeeID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "employees may only view their own assessments", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Latest(r.Context(), employeeID, period)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "no assessment for this period", middleware.GetRequestID(r.Context()))
			return
		}
		slog.Warn("latest snapshot failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to load assessment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failEvaluation(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "no records for this employee and period", requestID)
	case errors.Is(err, scoring.ErrValidation):
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_records", err.Error(), requestID)
	case errors.Is(err, catalog.ErrConfig):
		slog.Warn("catalog misconfigured", "err", err)
		api.Fail(w, http.StatusInternalServerError, "catalog_error", "scoring catalog is misconfigured", requestID)
	default:
		slog.Warn("evaluation failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "evaluate_failed", "failed to evaluate employee", requestID)
	}
	if h.Metrics != nil {
		h.Metrics.RecordEvaluation("failure")
	}
}
