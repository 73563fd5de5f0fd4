package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"social-network/core/apierror"
	"social-network/core/storage"
	"social-network/core/validation"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

// Service stores and serves media objects.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new media service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Init creates the bucket when missing.
func (s *Service) Init(ctx context.Context) error {
	return storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region)
}

// Upload stores r under a fresh key that keeps the extension of filename.
func (s *Service) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.cfg.MaxUploadBytes > 0 && size > s.cfg.MaxUploadBytes {
		return "", apierror.BodyField("file", filename, fmt.Sprintf("File exceeds %d bytes", s.cfg.MaxUploadBytes))
	}
	if size == 0 {
		return "", apierror.BodyField("file", filename, "File is empty")
	}

	name := uuid.NewString()
	if ext := strings.ToLower(path.Ext(filename)); extPattern.MatchString(ext) {
		name += ext
	}
	key := Prefix + name
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.logger.Info("Media uploaded", zap.String("key", key), zap.Int64("size", size))
	return name, nil
}

// ValidName reports whether name looks like a key produced by Upload.
func ValidName(name string) bool {
	ext := path.Ext(name)
	if ext != "" && !extPattern.MatchString(ext) {
		return false
	}
	return validation.IsID(strings.TrimSuffix(name, ext))
}

// Open returns the object stored under name with its metadata. The caller closes the reader.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, minio.ObjectInfo, error) {
	key := Prefix + name
	info, err := s.client.StatObject(ctx, s.cfg.Bucket, key, minio.StatObjectOptions{})
	if storage.IsNotFound(err) {
		return nil, minio.ObjectInfo{}, apierror.NotFound("Media", name)
	}
	if err != nil {
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return obj, info, nil
}
