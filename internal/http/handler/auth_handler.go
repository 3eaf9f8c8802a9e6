package handler

import (
	"net/http"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/http/middleware"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthServiceInterface
}

func NewAuthHandler(authSvc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse is the decoded token identity returned by GET /api/auth/profile.
type ProfileResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	outcome := "success"
	defer func() {
		observability.RecordAuthRegister(r.Context(), outcome)
		observability.RecordAuthRequestDuration(r.Context(), "register", outcome, time.Since(start))
	}()

	var body registerRequest
	if !decodeJSON(w, r, &body) {
		outcome = "bad_request"
		return
	}
	user, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		Email:       body.Email,
		Password:    body.Password,
		DisplayName: body.DisplayName,
	})
	if err != nil {
		outcome = statusOutcome(err)
		observability.Audit(r, observability.AuditInput{
			EventName:  "auth.register",
			TargetType: "user",
			Action:     "register",
			Outcome:    "failure",
			Reason:     outcome,
		})
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:   "auth.register",
		ActorUserID: idString(user.ID),
		TargetType:  "user",
		TargetID:    idString(user.ID),
		Action:      "register",
		Outcome:     "success",
		Reason:      "user_registered",
	})
	response.JSON(w, r, http.StatusOK, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	outcome := "success"
	defer func() {
		observability.RecordAuthLogin(r.Context(), outcome)
		observability.RecordAuthRequestDuration(r.Context(), "login", outcome, time.Since(start))
	}()

	var body loginRequest
	if !decodeJSON(w, r, &body) {
		outcome = "bad_request"
		return
	}
	res, err := h.authSvc.Login(r.Context(), service.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		outcome = statusOutcome(err)
		observability.Audit(r, observability.AuditInput{
			EventName:  "auth.login",
			TargetType: "user",
			Action:     "login",
			Outcome:    "failure",
			Reason:     outcome,
		})
		// Unknown emails are reported as a bad request on this endpoint.
		writeServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "auth.login",
		TargetType: "user",
		Action:     "login",
		Outcome:    "success",
		Reason:     "token_issued",
	})
	response.JSON(w, r, http.StatusOK, res)
}

// Profile answers from the verified token only; it does not re-read the user.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		observability.RecordUserProfileEvent(r.Context(), "missing_claims")
		response.Error(w, r, http.StatusUnauthorized, "MISSING_TOKEN", "missing access token", nil)
		return
	}
	out := ProfileResponse{ID: claims.UserID, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	observability.RecordUserProfileEvent(r.Context(), "success")
	response.JSON(w, r, http.StatusOK, out)
}
