package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the object-storage boundary: named blobs under a path with a
// public URL. Overwrites are allowed.
type Storage interface {
	// Save stores a blob at the given path, replacing any existing one.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a blob from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a blob exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the blob.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private blobs.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	UseSSL     bool   // For S3/R2
	PublicRead bool   // Make files public by default
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
