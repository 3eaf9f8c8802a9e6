package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
)

type CreateOwnerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateOwnerInput holds a partial update; nil fields are left unchanged.
type UpdateOwnerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

type OwnerService struct {
	owners repository.OwnerRepository
	items  repository.LostItemRepository
}

func NewOwnerService(owners repository.OwnerRepository, items repository.LostItemRepository) *OwnerService {
	return &OwnerService{owners: owners, items: items}
}

func (s *OwnerService) Create(ctx context.Context, in CreateOwnerInput) (*domain.Owner, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "create", outcome, time.Since(start)) }()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		outcome = "bad_request"
		return nil, validationError("name is required")
	}
	owner := &domain.Owner{
		Name:    name,
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.owners.Create(ctx, owner); err != nil {
		outcome = "error"
		return nil, storeError("create owner", err)
	}
	return owner, nil
}

func (s *OwnerService) List(ctx context.Context) ([]domain.OwnerSummary, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "list", outcome, time.Since(start)) }()

	owners, err := s.owners.List(ctx)
	if err != nil {
		outcome = "error"
		return nil, storeError("list owners", err)
	}
	return owners, nil
}

func (s *OwnerService) GetByID(ctx context.Context, id uint) (*domain.Owner, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "get", outcome, time.Since(start)) }()

	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		err = ownerLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Update(ctx context.Context, id uint, in UpdateOwnerInput) (*domain.Owner, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "update", outcome, time.Since(start)) }()

	updates := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			outcome = "bad_request"
			return nil, validationError("name must not be empty")
		}
		updates["name"] = name
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		updates["email"] = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if len(updates) == 0 {
		outcome = "bad_request"
		return nil, validationError("no fields to update")
	}

	if err := s.owners.Update(ctx, id, updates); err != nil {
		err = ownerLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		err = ownerLookupError(err)
		outcome = outcomeFor(err)
		return nil, err
	}
	return owner, nil
}

// DeleteByID removes the owner together with its lost items.
func (s *OwnerService) DeleteByID(ctx context.Context, id uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "delete", outcome, time.Since(start)) }()

	if err := s.owners.DeleteByID(ctx, id); err != nil {
		err = ownerLookupError(err)
		outcome = outcomeFor(err)
		return err
	}
	return nil
}

func (s *OwnerService) ListItems(ctx context.Context, ownerID uint) ([]domain.LostItem, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordDomainOperation(ctx, "owner", "list_items", outcome, time.Since(start)) }()

	exists, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		outcome = "error"
		return nil, storeError("check owner", err)
	}
	if !exists {
		outcome = "not_found"
		return nil, notFoundError("owner not found")
	}
	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		outcome = "error"
		return nil, storeError("list owner items", err)
	}
	return items, nil
}

func ownerLookupError(err error) error {
	if errors.Is(err, repository.ErrOwnerNotFound) {
		return notFoundError("owner not found")
	}
	return storeError("owner store", err)
}
