package eventbroker

import (
	"context"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"
)

// NoopPublisher discards events, for deployments without a broker
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

var _ port.EventPublisher = (*NoopPublisher)(nil)

func (*NoopPublisher) Publish(context.Context, domain.MediaEvent) error {
	return nil
}
