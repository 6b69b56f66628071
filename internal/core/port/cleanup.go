package port

import "context"

// CleanupService is a service that purges promotional combo images
type CleanupService interface {
	// PurgeCombos deletes every COMBO_DIA and COMBO_TARDE item (blobs
	// best-effort, records in one bulk call) and returns the number of
	// catalog records removed.
	PurgeCombos(ctx context.Context) (int, error)
}
