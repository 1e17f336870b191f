package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/middlewares"
	"github.com/sbilibin2017/bookmarker/internal/models"
	"github.com/sbilibin2017/bookmarker/internal/services"
)

// Messages of errors that do not come from the services.
const (
	MsgInternal         = "Something went wrong, we are working on it"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInvalidBody      = "Invalid request body"
	MsgUnauthorized     = "Unauthorized"
)

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Something went wrong, we are working on it
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError answers with the status of err's kind.
// Errors of no known kind are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		writeError(w, statusOf(svcErr), svcErr.Error())
		return
	}

	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, MsgInternal)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into dst, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Infow("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return false
	}
	return true
}

// authFromRequest returns the caller set by the auth middleware.
func authFromRequest(w http.ResponseWriter, r *http.Request) (models.AuthContext, bool) {
	auth, ok := middlewares.AuthFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, MsgUnauthorized)
	}
	return auth, ok
}

// NewNotFoundHandler answers unknown routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, MsgNotFound)
	}
}

// NewMethodNotAllowedHandler answers known routes hit with an unsupported method.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}
