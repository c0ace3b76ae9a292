package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talait/translate-api/internal/model"
	"github.com/talait/translate-api/internal/service"
	"github.com/talait/translate-api/internal/upstream"
)

// TranslateHandler handles HTTP requests for translation.
type TranslateHandler struct {
	service *service.TranslateService
}

// NewTranslateHandler creates a new TranslateHandler.
func NewTranslateHandler(svc *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{service: svc}
}

// HandleTranslate handles POST /translate requests. Every upstream failure
// class surfaces as a 502 carrying a human-readable detail.
func (h *TranslateHandler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Translate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid input: text and direction expected"))
		case errors.Is(err, service.ErrUnexpectedResponse):
			writeJSON(w, http.StatusBadGateway, errorResponse("unexpected translation provider response"))
		default:
			var provErr *upstream.ProviderError
			if errors.As(err, &provErr) {
				writeJSON(w, http.StatusBadGateway, errorResponse(provErr.Error()))
				return
			}
			writeJSON(w, http.StatusBadGateway, errorResponse("translation provider call failed: "+err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
