package services

import (
	"SiriaExpress/config/database"
	"SiriaExpress/config/environment"
	"SiriaExpress/utils"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type StorageService struct {
	Bucket *storage.BucketHandle
}

// NewStorageService initializes StorageService with the default bucket
func NewStorageService() *StorageService {
	return &StorageService{
		Bucket: database.GetStorageBucket(),
	}
}

// UploadImage stores a menu image under menu-images/ with a generated name
// and returns its public URL
func (s *StorageService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.Bucket == nil {
		return "", utils.NewCustomError(http.StatusServiceUnavailable, "Image storage is not configured")
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", utils.NewCustomError(http.StatusBadRequest, "Unsupported image format")
	}

	src, err := file.Open()
	if err != nil {
		return "", utils.NewCustomError(http.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	objectName := fmt.Sprintf("menu-images/%s%s", uuid.NewString(), ext)
	obj := s.Bucket.Object(objectName)

	writer := obj.NewWriter(ctx)
	writer.ContentType = file.Header.Get("Content-Type")
	writer.CacheControl = "public, max-age=3600"

	if _, err := io.Copy(writer, src); err != nil {
		writer.Close()
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to upload image")
	}
	if err := writer.Close(); err != nil {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to upload image")
	}

	// Menu images are public storefront assets
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to publish image")
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", environment.GetStorageBucket(), objectName), nil
}
