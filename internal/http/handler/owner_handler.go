package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

type OwnerHandler struct {
	svc service.OwnerServiceInterface
}

func NewOwnerHandler(svc service.OwnerServiceInterface) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := h.svc.Create(r.Context(), service.CreateOwnerInput{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Address: body.Address,
	})
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "owner.create",
		TargetType: "owner",
		TargetID:   idString(created.ID),
		Action:     "create",
		Outcome:    "success",
		Reason:     "owner_created",
	})
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, owners)
}

func (h *OwnerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid owner id", nil)
		return
	}

	owner, err := h.svc.GetByID(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, owner)
}

func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid owner id", nil)
		return
	}
	var body struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	updated, err := h.svc.Update(r.Context(), ownerID, service.UpdateOwnerInput{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Address: body.Address,
	})
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "owner.update",
		TargetType: "owner",
		TargetID:   idString(updated.ID),
		Action:     "update",
		Outcome:    "success",
		Reason:     "owner_updated",
	})
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *OwnerHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid owner id", nil)
		return
	}
	if err := h.svc.DeleteByID(r.Context(), ownerID); err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "owner.delete",
		TargetType: "owner",
		TargetID:   idString(ownerID),
		Action:     "delete",
		Outcome:    "success",
		Reason:     "owner_deleted",
	})
	response.JSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *OwnerHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid owner id", nil)
		return
	}
	items, err := h.svc.ListItems(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, items)
}
