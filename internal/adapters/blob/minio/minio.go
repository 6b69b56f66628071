package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Vittal-Dev1/Tentacao/internal/config"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is a blob store adapter for minio
type Adapter struct {
	client  *minio.Client
	config  config.MinioConfig
	baseURL string
	logger  *slog.Logger
}

// NewClient connects to minio and ensures the bucket exists
func NewClient(ctx context.Context, cfg config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return client, nil
}

// NewAdapter returns an Adapter that implements port.BlobStore
func NewAdapter(client *minio.Client, cfg config.MinioConfig, logger *slog.Logger) *Adapter {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.BucketName)
	}

	return &Adapter{
		client:  client,
		config:  cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

var _ port.BlobStore = (*Adapter)(nil)

// Put uploads the object and returns its public URL
func (a *Adapter) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := a.client.PutObject(ctx, a.config.BucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	return a.baseURL + "/" + key, nil
}

// Delete removes the object a previously returned URL points to
func (a *Adapter) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(url, a.baseURL), "/")
	if key == "" || key == url {
		return fmt.Errorf("invalid blob url: %q", url)
	}

	if err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return nil
}
