package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

var errInvalidID = errors.New("invalid id")

func parsePathID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// decodeJSON reads a single JSON document. It writes the error response
// itself and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large", nil)
	case errors.Is(err, io.EOF):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "request body is required", nil)
	default:
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
	}
	return false
}

// writeServiceError renders err through the service error taxonomy.
// notFoundStatus lets an endpoint report missing records as something other than 404.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int) {
	msg := service.PublicMessage(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
	case errors.Is(err, service.ErrConflict):
		response.Error(w, r, http.StatusConflict, "CONFLICT", msg, nil)
	case errors.Is(err, service.ErrNotFound):
		response.Error(w, r, notFoundStatus, "NOT_FOUND", msg, nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", msg, nil)
	case errors.Is(err, service.ErrStorageDisabled):
		response.Error(w, r, http.StatusServiceUnavailable, "STORAGE_DISABLED", service.ErrStorageDisabled.Error(), nil)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", msg, nil)
	}
}

func statusOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, service.ErrValidation):
		return "bad_request"
	case errors.Is(err, service.ErrConflict):
		return "conflict"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
