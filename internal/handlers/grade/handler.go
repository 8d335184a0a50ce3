package grade

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/services/grading"
	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/handlers"
	"gitlab.com/cgrader-2025.net/internal/handlers/response"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

// GradeHandler handles grading API requests
type GradeHandler struct {
	gradingService grading.IGradingService
	logger         primary.Logger
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(gradingService grading.IGradingService, logger primary.Logger) *GradeHandler {
	return &GradeHandler{
		gradingService: gradingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for GradeHandler
func (h *GradeHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	protected := router.PathPrefix("/api/grade").Subrouter()
	protected.Use(mw.JWTMiddleware)
	protected.HandleFunc("", h.RunGrading).Methods("POST")
	protected.HandleFunc("", h.ListReports).Methods("GET")
	protected.HandleFunc("/{reportId}", h.GetReport).Methods("GET")
}

// RunGrading grades a submission and returns the report
func (h *GradeHandler) RunGrading(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	studentID := handlers.StudentFromContext(r.Context())
	submission := domain.NewSubmission(studentID, req.Source)

	report, err := h.gradingService.Grade(r.Context(), submission)
	if err != nil {
		h.writeGradingError(w, err)
		return
	}

	response.WriteSuccess(w, report)
}

func (h *GradeHandler) writeGradingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.EmptySource):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Submit your C source before grading.",
			StatusCode: http.StatusBadRequest,
		})
	case errors.Is(err, errs.RunInFlight):
		response.WriteError(w, response.ErrorMessage{
			Message:    "A grading run is already in progress. Wait for it to finish.",
			StatusCode: http.StatusConflict,
		})
	default:
		h.logger.Error("Grading run failed", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "Something went wrong while grading your submission. Please try again.",
			StatusCode: http.StatusInternalServerError,
			Score:      0,
		})
	}
}

// GetReport fetches a persisted grade report
func (h *GradeHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportIDStr := vars["reportId"]

	reportID, err := uuid.Parse(reportIDStr)
	if err != nil {
		h.logger.Error("Invalid report ID", "id", reportIDStr)
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	report, err := h.gradingService.GetReport(r.Context(), reportID)
	if err != nil {
		if errors.Is(err, errs.ReportNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get report", "error", err)
		http.Error(w, "Failed to get report", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, report)
}

// ListReports returns the authenticated student's recent reports
func (h *GradeHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	studentID := handlers.StudentFromContext(r.Context())

	reports, err := h.gradingService.ListReports(r.Context(), studentID, 20)
	if err != nil {
		h.logger.Error("Failed to list reports", "error", err)
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, reports)
}
