package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/lost-and-found-backend/internal/http/response"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

// PhotoFormField is the multipart field carrying the item photo.
const PhotoFormField = "photo"

const multipartMemory = 1 << 20

type LostItemHandler struct {
	svc service.LostItemServiceInterface
}

func NewLostItemHandler(svc service.LostItemServiceInterface) *LostItemHandler {
	return &LostItemHandler{svc: svc}
}

func (h *LostItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		OwnerID     *uint  `json:"owner_id"`
		Found       *bool  `json:"found"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := h.svc.Create(r.Context(), service.CreateLostItemInput{
		Name:        body.Name,
		Description: body.Description,
		OwnerID:     body.OwnerID,
		Found:       body.Found,
	})
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "lost_item.create",
		TargetType: "lost_item",
		TargetID:   idString(created.ID),
		Action:     "create",
		Outcome:    "success",
		Reason:     "lost_item_created",
	})
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *LostItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, items)
}

func (h *LostItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	item, err := h.svc.GetByID(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}
	response.JSON(w, r, http.StatusOK, item)
}

func (h *LostItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		OwnerID     *uint   `json:"owner_id"`
		Found       *bool   `json:"found"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	updated, err := h.svc.Update(r.Context(), itemID, service.UpdateLostItemInput{
		Name:        body.Name,
		Description: body.Description,
		OwnerID:     body.OwnerID,
		Found:       body.Found,
	})
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "lost_item.update",
		TargetType: "lost_item",
		TargetID:   idString(updated.ID),
		Action:     "update",
		Outcome:    "success",
		Reason:     "lost_item_updated",
	})
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *LostItemHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteByID(r.Context(), itemID); err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "lost_item.delete",
		TargetType: "lost_item",
		TargetID:   idString(itemID),
		Action:     "delete",
		Outcome:    "success",
		Reason:     "lost_item_deleted",
	})
	response.JSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *LostItemHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", service.ErrFileTooBig.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid multipart form", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(PhotoFormField)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "photo file is required", nil)
		return
	}
	defer file.Close()

	res, err := h.svc.AttachPhoto(r.Context(), itemID, file, header.Size)
	if err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "lost_item.photo_upload",
		TargetType: "lost_item",
		TargetID:   idString(itemID),
		Action:     "photo_upload",
		Outcome:    "success",
		Reason:     "photo_stored",
	})
	response.JSON(w, r, http.StatusOK, res)
}

func (h *LostItemHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemovePhoto(r.Context(), itemID); err != nil {
		writeServiceError(w, r, err, http.StatusNotFound)
		return
	}

	observability.Audit(r, observability.AuditInput{
		EventName:  "lost_item.photo_delete",
		TargetType: "lost_item",
		TargetID:   idString(itemID),
		Action:     "photo_delete",
		Outcome:    "success",
		Reason:     "photo_removed",
	})
	response.JSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

func itemIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	itemID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid item id", nil)
		return 0, false
	}
	return itemID, true
}
