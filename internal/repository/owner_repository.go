package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
)

var ErrOwnerNotFound = errors.New("owner not found")

type OwnerRepository interface {
	Create(ctx context.Context, owner *domain.Owner) error
	FindByID(ctx context.Context, id uint) (*domain.Owner, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]domain.OwnerSummary, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	DeleteByID(ctx context.Context, id uint) error
}

type GormOwnerRepository struct{ db *gorm.DB }

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &GormOwnerRepository{db: db}
}

func (r *GormOwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	if err := r.db.WithContext(ctx).Create(owner).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "owner", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "owner", "create", "success")
	return nil
}

func (r *GormOwnerRepository) FindByID(ctx context.Context, id uint) (*domain.Owner, error) {
	var owner domain.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "owner", "find_by_id", "not_found")
			return nil, ErrOwnerNotFound
		}
		observability.RecordRepositoryOperation(ctx, "owner", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "owner", "find_by_id", "success")
	return &owner, nil
}

func (r *GormOwnerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Owner{}).Where("id = ?", id).Count(&count).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "owner", "exists", "error")
		return false, err
	}
	observability.RecordRepositoryOperation(ctx, "owner", "exists", "success")
	return count > 0, nil
}

func (r *GormOwnerRepository) List(ctx context.Context) ([]domain.OwnerSummary, error) {
	out := make([]domain.OwnerSummary, 0)
	err := r.db.WithContext(ctx).Model(&domain.Owner{}).
		Select("id", "name").
		Order("id asc").
		Scan(&out).Error
	if err != nil {
		observability.RecordRepositoryOperation(ctx, "owner", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "owner", "list", "success")
	return out, nil
}

func (r *GormOwnerRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Owner{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "owner", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "owner", "update", "not_found")
		return ErrOwnerNotFound
	}
	observability.RecordRepositoryOperation(ctx, "owner", "update", "success")
	return nil
}

// DeleteByID removes the owner together with its items in one transaction so
// the outcome does not depend on the dialect enforcing the foreign key.
func (r *GormOwnerRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&domain.LostItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Owner{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOwnerNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		observability.RecordRepositoryOperation(ctx, "owner", "delete_by_id", "success")
	case errors.Is(err, ErrOwnerNotFound):
		observability.RecordRepositoryOperation(ctx, "owner", "delete_by_id", "not_found")
	default:
		observability.RecordRepositoryOperation(ctx, "owner", "delete_by_id", "error")
	}
	return err
}
