package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
)

type CreateLostItemInput struct {
	Name        string
	Description string
	OwnerID     *uint
	Found       *bool
}

type UpdateLostItemInput struct {
	Name        *string
	Description *string
	OwnerID     *uint
	Found       *bool
}

type PhotoResult struct {
	PhotoKey string `json:"photo_key"`
	PhotoURL string `json:"photo_url"`
}

type LostItemService struct {
	items   repository.LostItemRepository
	owners  repository.OwnerRepository
	storage PhotoStorage
	logger  *slog.Logger
}

// NewLostItemService wires the item service. storage may be nil, in which
// case photo operations fail with ErrStorageDisabled.
func NewLostItemService(items repository.LostItemRepository, owners repository.OwnerRepository, storage PhotoStorage, logger *slog.Logger) *LostItemService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LostItemService{items: items, owners: owners, storage: storage, logger: logger}
}

func (s *LostItemService) Create(ctx context.Context, in CreateLostItemInput) (*domain.LostItem, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "lost_item", "create", outcome, time.Since(start)) }()

	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.OwnerID == nil || *in.OwnerID == 0 || in.Found == nil {
		outcome = "bad_request"
		return nil, validationError("name, description, owner_id and found are required")
	}
	if err := s.requireOwner(ctx, *in.OwnerID); err != nil {
		outcome = outcomeFor(err)
		return nil, err
	}

	item := &domain.LostItem{Name: name, Description: description, OwnerID: *in.OwnerID, Found: *in.Found}
	if err := s.items.Create(ctx, item); err != nil {
		outcome = "error"
		return nil, storeError("create lost item", err)
	}
	created, err := s.items.FindByID(ctx, item.ID)
	if err != nil {
		outcome = "error"
		return nil, storeError("reload lost item", err)
	}
	return created, nil
}

func (s *LostItemService) List(ctx context.Context) ([]domain.LostItem, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "lost_item", "list", outcome, time.Since(start)) }()

	items, err := s.items.List(ctx)
	if err != nil {
		outcome = "error"
		return nil, storeError("list lost items", err)
	}
	return items, nil
}

func (s *LostItemService) GetByID(ctx context.Context, id uint) (*domain.LostItem, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "lost_item", "get", outcome, time.Since(start)) }()

	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	return item, nil
}

func (s *LostItemService) Update(ctx context.Context, id uint, in UpdateLostItemInput) (*domain.LostItem, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "lost_item", "update", outcome, time.Since(start)) }()

	updates := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			outcome = "bad_request"
			return nil, validationError("name must not be empty")
		}
		updates["name"] = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			outcome = "bad_request"
			return nil, validationError("description must not be empty")
		}
		updates["description"] = description
	}
	if in.Found != nil {
		updates["found"] = *in.Found
	}
	if in.OwnerID != nil {
		if err := s.requireOwner(ctx, *in.OwnerID); err != nil {
			outcome = outcomeFor(err)
			return nil, err
		}
		updates["owner_id"] = *in.OwnerID
	}
	if len(updates) == 0 {
		outcome = "bad_request"
		return nil, validationError("no fields to update")
	}

	if err := s.items.Update(ctx, id, updates); err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	return item, nil
}

func (s *LostItemService) DeleteByID(ctx context.Context, id uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "lost_item", "delete", outcome, time.Since(start)) }()

	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return err
	}
	if err := s.items.DeleteByID(ctx, id); err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return err
	}
	if item.PhotoKey != "" && s.storage != nil {
		if err := s.storage.DeleteItemPhoto(ctx, id, item.PhotoKey); err != nil {
			s.logger.WarnContext(ctx, "orphaned lost item photo", "item_id", id, "photo_key", item.PhotoKey, "error", err)
		}
	}
	return nil
}

// AttachPhoto uploads a new photo for the item and replaces any previous one.
func (s *LostItemService) AttachPhoto(ctx context.Context, id uint, file io.Reader, size int64) (*PhotoResult, error) {
	outcome := "success"
	defer func() { observability.RecordItemPhotoEvent(ctx, "upload", outcome) }()

	if s.storage == nil {
		outcome = "disabled"
		return nil, ErrStorageDisabled
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}

	key, err := s.storage.UploadItemPhoto(ctx, id, file, size)
	if err != nil {
		err = photoStorageError("upload photo", err)
		outcome = outcomeFor(err)
		return nil, err
	}
	if err := s.items.Update(ctx, id, map[string]any{"photo_key": key}); err != nil {
		if delErr := s.storage.DeleteItemPhoto(ctx, id, key); delErr != nil {
			s.logger.WarnContext(ctx, "orphaned lost item photo", "item_id", id, "photo_key", key, "error", delErr)
		}
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	if item.PhotoKey != "" && item.PhotoKey != key {
		if err := s.storage.DeleteItemPhoto(ctx, id, item.PhotoKey); err != nil {
			s.logger.WarnContext(ctx, "orphaned lost item photo", "item_id", id, "photo_key", item.PhotoKey, "error", err)
		}
	}

	url, err := s.storage.PhotoURL(ctx, key)
	if err != nil {
		outcome = "error"
		return nil, storeError("photo url", err)
	}
	return &PhotoResult{PhotoKey: key, PhotoURL: url}, nil
}

func (s *LostItemService) RemovePhoto(ctx context.Context, id uint) error {
	outcome := "success"
	defer func() { observability.RecordItemPhotoEvent(ctx, "delete", outcome) }()

	if s.storage == nil {
		outcome = "disabled"
		return ErrStorageDisabled
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return err
	}
	if item.PhotoKey == "" {
		outcome = "not_found"
		return notFoundError("item has no photo")
	}
	if err := s.storage.DeleteItemPhoto(ctx, id, item.PhotoKey); err != nil {
		err = photoStorageError("delete photo", err)
		outcome = outcomeFor(err)
		return err
	}
	if err := s.items.Update(ctx, id, map[string]any{"photo_key": ""}); err != nil {
		err = itemLookupError(err)
		outcome = outcomeFor(err)
		return err
	}
	return nil
}

func (s *LostItemService) requireOwner(ctx context.Context, ownerID uint) error {
	exists, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return storeError("check owner", err)
	}
	if !exists {
		return validationError("owner does not exist")
	}
	return nil
}

func itemLookupError(err error) error {
	if errors.Is(err, repository.ErrLostItemNotFound) {
		return notFoundError("lost item not found")
	}
	return storeError("lost item store", err)
}

func photoStorageError(op string, err error) error {
	switch {
	case errors.Is(err, ErrFileTooBig):
		return validationError(ErrFileTooBig.Error())
	case errors.Is(err, ErrInvalidFileType):
		return validationError(ErrInvalidFileType.Error())
	default:
		return storeError(op, err)
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "bad_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
