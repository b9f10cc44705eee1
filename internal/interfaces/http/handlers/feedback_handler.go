package handlers

import (
	"net/http"

	appfeedback "github.com/turtacn/LegalAid-Assistant/internal/application/feedback"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
)

// FeedbackHandler exposes feedback submission and the derived statistics.
type FeedbackHandler struct {
	service *appfeedback.Service
	logger  logging.Logger
}

// NewFeedbackHandler builds the handler over service.
func NewFeedbackHandler(service *appfeedback.Service, logger logging.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: service, logger: logger}
}

// Submit handles POST /api/v1/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req appfeedback.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	entry, err := h.service.Submit(r.Context(), req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Stats handles GET /api/v1/feedback/stats.
func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Suggestions handles GET /api/v1/feedback/suggestions.
func (h *FeedbackHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.service.Suggestions(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// Report handles GET /api/v1/feedback/report.
func (h *FeedbackHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}
