package port

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
)

// EventPublisher publishes media change events for downstream consumers.
// Publishing is best-effort; the workflows log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.MediaEvent) error
}
