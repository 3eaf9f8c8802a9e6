package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
	servicegomock "github.com/sandeepkv93/lost-and-found-backend/internal/service/gomock"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func itemRouter(h *LostItemHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/items", h.Create)
	r.Get("/api/items", h.List)
	r.Get("/api/items/{id}", h.GetByID)
	r.Put("/api/items/{id}", h.Update)
	r.Delete("/api/items/{id}", h.DeleteByID)
	r.Put("/api/items/{id}/photo", h.UploadPhoto)
	r.Delete("/api/items/{id}/photo", h.DeletePhoto)
	return r
}

func multipartPhoto(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "wallet.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestLostItemHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in service.CreateLostItemInput) (*domain.LostItem, error) {
			if in.Name != "Wallet" || in.OwnerID == nil || *in.OwnerID != 2 || in.Found == nil || *in.Found {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.LostItem{ID: 11, Name: "Wallet", Description: "brown leather", OwnerID: 2}, nil
		})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Wallet","description":"brown leather","owner_id":2,"found":false}`))
	itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestLostItemHandlerCreateUnknownOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, svcErr(service.ErrValidation, "owner does not exist"))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Wallet","description":"d","owner_id":404,"found":true}`))
	itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if env := decodeErrorEnvelope(t, rr); env.Error.Message != "owner does not exist" {
		t.Fatalf("unexpected message %q", env.Error.Message)
	}
}

func TestLostItemHandlerListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	owner := &domain.Owner{ID: 2, Name: "Ana"}
	svc.EXPECT().List(gomock.Any()).Return([]domain.LostItem{
		{ID: 1, Name: "Keys", OwnerID: 2, Owner: owner},
		{ID: 2, Name: "Scarf", OwnerID: 2, Owner: owner},
	}, nil)
	svc.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&domain.LostItem{ID: 1, Name: "Keys", OwnerID: 2, Owner: owner}, nil)
	svc.EXPECT().GetByID(gomock.Any(), uint(7)).Return(nil, svcErr(service.ErrNotFound, "lost item not found"))
	router := itemRouter(NewLostItemHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	var items []domain.LostItem
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 || items[0].Owner == nil || items[0].Owner.Name != "Ana" {
		t.Fatalf("expected items with owner, got %+v", items)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items/1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items/7", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items/x", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rr.Code)
	}
}

func TestLostItemHandlerUpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	svc.EXPECT().Update(gomock.Any(), uint(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint, in service.UpdateLostItemInput) (*domain.LostItem, error) {
			if in.Found == nil || !*in.Found || in.Name != nil {
				t.Fatalf("unexpected update input %+v", in)
			}
			return &domain.LostItem{ID: 3, Name: "Keys", Found: true}, nil
		})
	svc.EXPECT().DeleteByID(gomock.Any(), uint(3)).Return(nil)
	router := itemRouter(NewLostItemHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/items/3", strings.NewReader(`{"found":true}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/items/3", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestLostItemHandlerUploadPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	svc.EXPECT().AttachPhoto(gomock.Any(), uint(4), gomock.Any(), int64(len(pngHeader))).DoAndReturn(
		func(_ context.Context, _ uint, file io.Reader, _ int64) (*service.PhotoResult, error) {
			got, err := io.ReadAll(file)
			if err != nil || !bytes.Equal(got, pngHeader) {
				t.Fatalf("unexpected upload content %v err=%v", got, err)
			}
			return &service.PhotoResult{PhotoKey: "items/item-4/abc.png", PhotoURL: "http://minio/items/item-4/abc.png"}, nil
		})

	body, contentType := multipartPhoto(t, PhotoFormField, pngHeader)
	req := httptest.NewRequest(http.MethodPut, "/api/items/4/photo", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var res service.PhotoResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.PhotoKey != "items/item-4/abc.png" || res.PhotoURL == "" {
		t.Fatalf("unexpected photo result %+v", res)
	}
}

func TestLostItemHandlerUploadPhotoErrors(t *testing.T) {
	t.Run("wrong field", func(t *testing.T) {
		svc := servicegomock.NewMockLostItemServiceInterface(gomock.NewController(t))
		body, contentType := multipartPhoto(t, "image", pngHeader)
		req := httptest.NewRequest(http.MethodPut, "/api/items/4/photo", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		svc := servicegomock.NewMockLostItemServiceInterface(gomock.NewController(t))
		req := httptest.NewRequest(http.MethodPut, "/api/items/4/photo", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		svc := servicegomock.NewMockLostItemServiceInterface(gomock.NewController(t))
		svc.EXPECT().AttachPhoto(gomock.Any(), uint(4), gomock.Any(), gomock.Any()).
			Return(nil, svcErr(service.ErrValidation, service.ErrInvalidFileType.Error()))
		body, contentType := multipartPhoto(t, PhotoFormField, []byte("GIF89a"))
		req := httptest.NewRequest(http.MethodPut, "/api/items/4/photo", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc := servicegomock.NewMockLostItemServiceInterface(gomock.NewController(t))
		svc.EXPECT().AttachPhoto(gomock.Any(), uint(4), gomock.Any(), gomock.Any()).Return(nil, service.ErrStorageDisabled)
		body, contentType := multipartPhoto(t, PhotoFormField, pngHeader)
		req := httptest.NewRequest(http.MethodPut, "/api/items/4/photo", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		itemRouter(NewLostItemHandler(svc)).ServeHTTP(rr, req)
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rr.Code)
		}
		if env := decodeErrorEnvelope(t, rr); env.Error.Code != "STORAGE_DISABLED" {
			t.Fatalf("unexpected code %q", env.Error.Code)
		}
	})
}

func TestLostItemHandlerDeletePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockLostItemServiceInterface(ctrl)
	gomock.InOrder(
		svc.EXPECT().RemovePhoto(gomock.Any(), uint(4)).Return(nil),
		svc.EXPECT().RemovePhoto(gomock.Any(), uint(5)).Return(svcErr(service.ErrNotFound, "item has no photo")),
	)
	router := itemRouter(NewLostItemHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/items/4/photo", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/items/5/photo", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
