package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/helpinghands/site-backend/internal/models"
	"github.com/helpinghands/site-backend/internal/storage"
	"gorm.io/gorm"
)

const maxUploadSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type MediaService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewMediaService(db *gorm.DB, store storage.ObjectStore) *MediaService {
	return &MediaService{db: db, store: store}
}

// Upload pushes the file to the hosting provider and records the resulting
// URL. The Image row is only written after the remote upload succeeds.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("image size must be less than 10MB")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("invalid image format: %s", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := "uploads/" + uuid.New().String() + filepath.Ext(file.Filename)
	url, err := s.store.Put(ctx, key, src, file.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	image := models.Image{URL: url}
	if err := s.db.Create(&image).Error; err != nil {
		return "", fmt.Errorf("failed to record image: %w", err)
	}
	return url, nil
}

// ListImages returns every recorded image URL, newest first.
func (s *MediaService) ListImages() ([]string, error) {
	var images []models.Image
	if err := s.db.Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls, nil
}
