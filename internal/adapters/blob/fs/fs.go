package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Vittal-Dev1/Tentacao/internal/core/port"
)

// Store keeps image blobs in a local directory and serves them under a
// configured public base path (e.g. /uploads, mounted as a static route).
type Store struct {
	dir     string
	baseURL string
	logger  *slog.Logger
}

// NewStore creates the blob directory if missing and returns a Store that
// implements port.BlobStore.
func NewStore(dir, baseURL string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

var _ port.BlobStore = (*Store)(nil)

// Put writes the object to disk and returns its public URL
func (s *Store) Put(_ context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	name := filepath.Base(key)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes the file a previously returned URL points to. A missing
// file is not an error.
func (s *Store) Delete(_ context.Context, url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid blob url: %q", url)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete blob file: %w", err)
	}

	s.logger.Info("blob deleted", slog.String("name", name))

	return nil
}
