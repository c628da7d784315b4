package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the object-storage port backing document files and logos.
type Storage interface {
	// Save stores an object at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes the object at the given path.
	Delete(ctx context.Context, path string) error

	// Exists reports whether an object exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// Open returns a reader over the object at the given path. The caller
	// closes it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// GetURL returns a public URL for the object.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for confidential objects.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3-compatible backends
	Region    string // for S3
	AccessKey string
	SecretKey string
	Endpoint  string // for R2 or custom S3
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
