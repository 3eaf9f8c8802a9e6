package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
)

var ErrLostItemNotFound = errors.New("lost item not found")

type LostItemRepository interface {
	Create(ctx context.Context, item *domain.LostItem) error
	FindByID(ctx context.Context, id uint) (*domain.LostItem, error)
	List(ctx context.Context) ([]domain.LostItem, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.LostItem, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	DeleteByID(ctx context.Context, id uint) error
}

type GormLostItemRepository struct{ db *gorm.DB }

func NewLostItemRepository(db *gorm.DB) LostItemRepository {
	return &GormLostItemRepository{db: db}
}

func (r *GormLostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	if err := r.db.WithContext(ctx).Omit("Owner").Create(item).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "lost_item", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "create", "success")
	return nil
}

func (r *GormLostItemRepository) FindByID(ctx context.Context, id uint) (*domain.LostItem, error) {
	var item domain.LostItem
	if err := r.db.WithContext(ctx).Preload("Owner").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "lost_item", "find_by_id", "not_found")
			return nil, ErrLostItemNotFound
		}
		observability.RecordRepositoryOperation(ctx, "lost_item", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "find_by_id", "success")
	return &item, nil
}

func (r *GormLostItemRepository) List(ctx context.Context) ([]domain.LostItem, error) {
	items := make([]domain.LostItem, 0)
	if err := r.db.WithContext(ctx).Preload("Owner").Order("id asc").Find(&items).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "lost_item", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "list", "success")
	return items, nil
}

func (r *GormLostItemRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.LostItem, error) {
	items := make([]domain.LostItem, 0)
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id asc").Find(&items).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "lost_item", "list_by_owner", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "list_by_owner", "success")
	return items, nil
}

func (r *GormLostItemRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.LostItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "lost_item", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "lost_item", "update", "not_found")
		return ErrLostItemNotFound
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "update", "success")
	return nil
}

func (r *GormLostItemRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.LostItem{}, id)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "lost_item", "delete_by_id", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "lost_item", "delete_by_id", "not_found")
		return ErrLostItemNotFound
	}
	observability.RecordRepositoryOperation(ctx, "lost_item", "delete_by_id", "success")
	return nil
}
