package cleanup

import (
	"log/slog"

	"github.com/Vittal-Dev1/Tentacao/internal/core/port"
)

type cleanupService struct {
	catalog port.MediaCatalog
	blobs   port.BlobStore
	events  port.EventPublisher
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(catalog port.MediaCatalog, blobs port.BlobStore, events port.EventPublisher, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		catalog: catalog,
		blobs:   blobs,
		events:  events,
		logger:  logger,
	}
}
