package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger files spill to disk.
const maxMultipartMemory = 4 << 20

// AssistantHandler exposes the analysis pipeline, dialog, translation, and
// document endpoints.
type AssistantHandler struct {
	service *assistant.Service
	logger  logging.Logger
}

// NewAssistantHandler builds the handler over service.
func NewAssistantHandler(service *assistant.Service, logger logging.Logger) *AssistantHandler {
	return &AssistantHandler{service: service, logger: logger}
}

// Analyze handles POST /api/v1/analyze.
func (h *AssistantHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req assistant.AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Analyze(r.Context(), req))
}

// Chat handles POST /api/v1/chat.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req assistant.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	reply, err := h.service.Chat(r.Context(), req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// History handles GET /api/v1/chat/sessions/{sessionID}.
func (h *AssistantHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	history, err := h.service.History(r.Context(), sessionID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"history":    history,
	})
}

// ClearSession handles DELETE /api/v1/chat/sessions/{sessionID}.
func (h *AssistantHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.service.ClearSession(r.Context(), sessionID); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Translate handles POST /api/v1/translate.
func (h *AssistantHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req assistant.TranslateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	resp, err := h.service.Translate(r.Context(), req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DetectLanguage handles POST /api/v1/translate/detect.
func (h *AssistantHandler) DetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	resp, err := h.service.DetectLanguage(req.Text)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Languages handles GET /api/v1/languages.
func (h *AssistantHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": h.service.SupportedLanguages(),
	})
}

// ProcessDocument handles POST /api/v1/documents.  The document arrives as
// the multipart form field "file".
func (h *AssistantHandler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeAppError(w, errors.Wrap(err, errors.CodeBadRequest, "malformed multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, errors.Wrap(err, errors.CodeBadRequest, `multipart field "file" is required`))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, errors.Wrap(err, errors.CodeBadRequest, "failed to read uploaded file"))
		return
	}

	resp, err := h.service.ProcessDocument(r.Context(), assistant.DocumentRequest{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
