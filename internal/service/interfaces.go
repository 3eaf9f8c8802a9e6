package service

//go:generate mockgen -source=interfaces.go -destination=gomock/interfaces_mock.go -package=gomock

import (
	"context"
	"io"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type OwnerServiceInterface interface {
	Create(ctx context.Context, in CreateOwnerInput) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.OwnerSummary, error)
	GetByID(ctx context.Context, id uint) (*domain.Owner, error)
	Update(ctx context.Context, id uint, in UpdateOwnerInput) (*domain.Owner, error)
	DeleteByID(ctx context.Context, id uint) error
	ListItems(ctx context.Context, ownerID uint) ([]domain.LostItem, error)
}

type LostItemServiceInterface interface {
	Create(ctx context.Context, in CreateLostItemInput) (*domain.LostItem, error)
	List(ctx context.Context) ([]domain.LostItem, error)
	GetByID(ctx context.Context, id uint) (*domain.LostItem, error)
	Update(ctx context.Context, id uint, in UpdateLostItemInput) (*domain.LostItem, error)
	DeleteByID(ctx context.Context, id uint) error
	AttachPhoto(ctx context.Context, id uint, file io.Reader, size int64) (*PhotoResult, error)
	RemovePhoto(ctx context.Context, id uint) error
}

// PhotoStorage stores lost item photos in object storage.
type PhotoStorage interface {
	UploadItemPhoto(ctx context.Context, itemID uint, file io.Reader, size int64) (string, error)
	DeleteItemPhoto(ctx context.Context, itemID uint, objectKey string) error
	PhotoURL(ctx context.Context, objectKey string) (string, error)
}
