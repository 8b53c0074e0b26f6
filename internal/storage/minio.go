// Package storage provides object storage for uploaded import files.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"salesdial_backend/platform/config"
)

// MinIOService stores and retrieves import files in MinIO.
type MinIOService struct {
	client      *minio.Client
	bucket      string
	maxFileSize int64
}

// NewMinIOService creates a new MinIO storage service and makes sure the
// imports bucket exists.
func NewMinIOService(ctx context.Context, cfg config.MinIOConfig) (*MinIOService, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &MinIOService{
		client:      client,
		bucket:      cfg.GetMinioBucketImports(),
		maxFileSize: cfg.GetMinIOMaxFileSize(),
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Upload stores a file under a collision-free key and returns the key.
func (s *MinIOService) Upload(ctx context.Context, fileName, contentType string, reader io.Reader, size int64) (string, error) {
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxFileSize)
	}

	ext := path.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	uniqueFileName := fmt.Sprintf("%s_%s%s", baseName, uuid.New().String()[:8], ext)
	fileKey := filepath.ToSlash(filepath.Join("imports", uniqueFileName))

	_, err := s.client.PutObject(ctx, s.bucket, fileKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", fileKey, err)
	}
	return fileKey, nil
}

// Download streams a stored file. The caller closes the returned reader.
func (s *MinIOService) Download(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", fileKey, err)
	}
	return obj, nil
}

// Delete removes a stored file.
func (s *MinIOService) Delete(ctx context.Context, fileKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, fileKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", fileKey, err)
	}
	return nil
}
