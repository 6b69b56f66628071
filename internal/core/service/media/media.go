package media

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/google/uuid"
)

// Listing limits applied by List (the public gallery endpoint)
const (
	defaultListLimit = 10
	maxListLimit     = 50
)

type mediaService struct {
	catalog port.MediaCatalog
	blobs   port.BlobStore
	events  port.EventPublisher
	logger  *slog.Logger
}

// NewMediaService creates a new media service
func NewMediaService(catalog port.MediaCatalog, blobs port.BlobStore, events port.EventPublisher, logger *slog.Logger) port.MediaService {
	return &mediaService{
		catalog: catalog,
		blobs:   blobs,
		events:  events,
		logger:  logger,
	}
}

// storageKey derives a category-prefixed, randomized object key that keeps
// the original file's extension
func storageKey(category, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s_%s%s", strings.ToLower(category), uuid.New().String(), ext)
}
