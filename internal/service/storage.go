package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bhojanbuddy/backend/config"
)

// ImageStore persists uploaded images and returns the path or URL the image
// is addressable at afterwards.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalImageStore writes images as individual files under a fixed directory,
// which the server exposes as static content.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filepath.ToSlash(path), nil
}

// S3ImageStore uploads images to an S3 bucket and returns the public URL.
type S3ImageStore struct {
	s3     *config.S3Config
	prefix string
}

func NewS3ImageStore(s3cfg *config.S3Config, prefix string) *S3ImageStore {
	return &S3ImageStore{s3: s3cfg, prefix: prefix}
}

func (s *S3ImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	key := s.prefix + "/" + filepath.Base(name)
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.s3.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3.BucketName, key), nil
}
