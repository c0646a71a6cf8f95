package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"edge-driver/internal/s3"
)

// LocalStore keeps objects as files under baseDir/bucket/key. It stands in
// for S3 on devices without network storage.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	baseDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", dir, err)
	}
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) fullpath(bucket, key string) (string, error) {
	path := filepath.Join(s.baseDir, bucket, key)
	if !strings.HasPrefix(path, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("object %s/%s is outside of the storage directory", bucket, key)
	}
	return path, nil
}

func (s *LocalStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	path, err := s.fullpath(bucket, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", s3.ErrObjectNotFound, bucket, key)
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

func (s *LocalStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	path, err := s.fullpath(bucket, key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory for %s/%s: %w", bucket, key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s/%s: %w", bucket, key, err)
	}
	return "file://" + path, nil
}
