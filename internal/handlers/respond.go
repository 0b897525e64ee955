package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/middlewares"
)

// decodeJSON reads a JSON body of at most formOverhead bytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, formOverhead)).Decode(v)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Post not found
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeError maps an error kind to its status code. Errors without a kind are
// logged and answered with fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidStateTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestID(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"err", err,
		)
		writeMessage(w, status, fallback)
		return
	}
	writeMessage(w, status, apperrors.Message(err, fallback))
}

// pathID parses a UUID path parameter. A malformed id gets the same 404 as an
// unknown one.
func pathID(w http.ResponseWriter, r *http.Request, param, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeMessage(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}
