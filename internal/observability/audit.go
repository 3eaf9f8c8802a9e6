package observability

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

const auditEventVersion = 1

// AuditInput is what callers know about an auditable action. Request-derived
// fields are filled in by BuildAuditEvent.
type AuditInput struct {
	EventName   string
	ActorUserID string
	TargetType  string
	TargetID    string
	Action      string
	Outcome     string
	Reason      string
}

type AuditEvent struct {
	EventVersion int    `json:"event_version"`
	EventName    string `json:"event_name"`
	ActorUserID  string `json:"actor_user_id"`
	ActorIP      string `json:"actor_ip"`
	TargetType   string `json:"target_type"`
	TargetID     string `json:"target_id"`
	Action       string `json:"action"`
	Outcome      string `json:"outcome"`
	Reason       string `json:"reason"`
	RequestID    string `json:"request_id"`
	TraceID      string `json:"trace_id,omitempty"`
	TS           string `json:"ts"`
}

func BuildAuditEvent(r *http.Request, in AuditInput) AuditEvent {
	ev := AuditEvent{
		EventVersion: auditEventVersion,
		EventName:    in.EventName,
		ActorUserID:  orUnknown(in.ActorUserID),
		ActorIP:      clientIP(r),
		TargetType:   orUnknown(in.TargetType),
		TargetID:     orUnknown(in.TargetID),
		Action:       in.Action,
		Outcome:      in.Outcome,
		Reason:       orUnknown(in.Reason),
		RequestID:    requestID(r),
		TS:           time.Now().UTC().Format(time.RFC3339),
	}
	if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
		ev.TraceID = sc.TraceID().String()
	}
	return ev
}

func (e AuditEvent) Validate() error {
	var errs []error
	if e.EventVersion <= 0 {
		errs = append(errs, errors.New("event_version is required"))
	}
	required := map[string]string{
		"event_name": e.EventName,
		"actor_ip":   e.ActorIP,
		"action":     e.Action,
		"outcome":    e.Outcome,
		"request_id": e.RequestID,
		"ts":         e.TS,
	}
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, errors.New(name+" is required"))
		}
	}
	return errors.Join(errs...)
}

// Audit logs one structured audit line for the request. Invalid events are
// still emitted, flagged with audit_invalid.
func Audit(r *http.Request, in AuditInput) {
	ev := BuildAuditEvent(r, in)
	attrs := []any{
		"event_version", ev.EventVersion,
		"event_name", ev.EventName,
		"actor_user_id", ev.ActorUserID,
		"actor_ip", ev.ActorIP,
		"target_type", ev.TargetType,
		"target_id", ev.TargetID,
		"action", ev.Action,
		"outcome", ev.Outcome,
		"reason", ev.Reason,
		"request_id", ev.RequestID,
		"ts", ev.TS,
	}
	if err := ev.Validate(); err != nil {
		attrs = append(attrs, "audit_invalid", err.Error())
	}
	slog.InfoContext(r.Context(), "audit", attrs...)
}

func requestID(r *http.Request) string {
	if id := chimiddleware.GetReqID(r.Context()); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get("X-Request-Id")); id != "" {
		return id
	}
	return "unknown"
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return "unknown"
	}
	return v
}
