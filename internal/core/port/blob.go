package port

import (
	"context"
	"io"
)

// BlobStore is an interface to define image byte storage interactions
type BlobStore interface {
	// Put stores the object under key and returns a durable public URL.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object a previously returned URL points to.
	Delete(ctx context.Context, url string) error
}
