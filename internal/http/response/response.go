package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ErrorBody is the payload under the top-level "error" key of every failure response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// JSON writes v as the raw response body.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	write(w, r, status, v)
}

// Error writes {"error":{"code":...,"message":...}} with an optional details object.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	write(w, r, status, errorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: chimiddleware.GetReqID(r.Context()),
	})
}

func write(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.WarnContext(r.Context(), "response encode failed", "status", status, "error", err)
	}
}
