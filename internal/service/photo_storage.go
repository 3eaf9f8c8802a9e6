package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	MaxPhotoSize    = 5 * 1024 * 1024
	photoURLTTL     = 15 * time.Minute
	photoPathPrefix = "items"
	sniffLength     = 512
	contentTypeJPEG = "image/jpeg"
	contentTypePNG  = "image/png"
)

var (
	ErrFileTooBig           = errors.New("file size exceeds 5MB limit")
	ErrInvalidFileType      = errors.New("invalid file type, only JPEG and PNG images are allowed")
	ErrBucketCreationFailed = errors.New("failed to create storage bucket")
	ErrUploadFailed         = errors.New("failed to upload file")
	ErrDeleteFailed         = errors.New("failed to delete file")
	ErrURLGenerationFailed  = errors.New("failed to generate presigned URL")
	ErrForeignPhotoKey      = errors.New("photo key does not belong to item")
)

// MinIOPhotoStorage keeps item photos in an S3-compatible bucket under
// items/item-<id>/<uuid>.<ext>.
type MinIOPhotoStorage struct {
	client     *minio.Client
	bucketName string
	initOnce   sync.Once
	initErr    error
}

// NewMinIOPhotoStorage builds the client without contacting the server; the
// bucket is created on first use.
func NewMinIOPhotoStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOPhotoStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOPhotoStorage{client: client, bucketName: bucketName}, nil
}

func (s *MinIOPhotoStorage) lazyInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = fmt.Errorf("%w: check bucket existence: %v", ErrBucketCreationFailed, err)
			return
		}
		if exists {
			return
		}
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			s.initErr = fmt.Errorf("%w: create bucket: %v", ErrBucketCreationFailed, err)
		}
	})
	return s.initErr
}

// UploadItemPhoto validates size and sniffed content type before any network
// call, then stores the object and returns its key.
func (s *MinIOPhotoStorage) UploadItemPhoto(ctx context.Context, itemID uint, file io.Reader, size int64) (string, error) {
	if size > MaxPhotoSize {
		return "", ErrFileTooBig
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: read file for content detection: %v", ErrUploadFailed, err)
	}
	head = head[:n]
	contentType, ext, ok := detectPhotoType(head)
	if !ok {
		return "", ErrInvalidFileType
	}

	if err := s.lazyInit(ctx); err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s%s%s", itemPhotoPrefix(itemID), uuid.NewString(), ext)
	_, err = s.client.PutObject(ctx, s.bucketName, objectKey, io.MultiReader(bytes.NewReader(head), file), size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"Item-ID":     strconv.FormatUint(uint64(itemID), 10),
			"Uploaded-At": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return objectKey, nil
}

func (s *MinIOPhotoStorage) DeleteItemPhoto(ctx context.Context, itemID uint, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return nil
	}
	if err := checkPhotoKey(itemID, objectKey); err != nil {
		return err
	}
	if err := s.lazyInit(ctx); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func (s *MinIOPhotoStorage) PhotoURL(ctx context.Context, objectKey string) (string, error) {
	if strings.TrimSpace(objectKey) == "" {
		return "", fmt.Errorf("%w: empty object key", ErrURLGenerationFailed)
	}
	if err := s.lazyInit(ctx); err != nil {
		return "", err
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, photoURLTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrURLGenerationFailed, err)
	}
	return u.String(), nil
}

func itemPhotoPrefix(itemID uint) string {
	return fmt.Sprintf("%s/item-%d/", photoPathPrefix, itemID)
}

func checkPhotoKey(itemID uint, objectKey string) error {
	if strings.Contains(objectKey, "..") || !strings.HasPrefix(objectKey, itemPhotoPrefix(itemID)) {
		return ErrForeignPhotoKey
	}
	return nil
}

func detectPhotoType(head []byte) (contentType, ext string, ok bool) {
	switch strings.ToLower(http.DetectContentType(head)) {
	case contentTypeJPEG:
		return contentTypeJPEG, ".jpg", true
	case contentTypePNG:
		return contentTypePNG, ".png", true
	default:
		return "", "", false
	}
}

// Ping reports whether the object store answers. A missing bucket is not an
// error since lazyInit creates it on the first upload.
func (s *MinIOPhotoStorage) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucketName); err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucketName, err)
	}
	return nil
}
