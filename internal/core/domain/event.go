package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaEventType is a type that represents the type of a media change event
type MediaEventType string

const (
	MediaEventCreated MediaEventType = "media.created"
	MediaEventDeleted MediaEventType = "media.deleted"
	MediaEventPurged  MediaEventType = "media.purged"
)

// MediaEvent is published whenever the catalog changes, so that downstream
// consumers (site cache refresh) can react
type MediaEvent struct {
	Type       MediaEventType `json:"type"`
	MediaID    uuid.UUID      `json:"media_id,omitempty"`
	Category   Category       `json:"category,omitempty"`
	Purged     int            `json:"purged,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
