package service

import (
	"context"
	"io"
	"time"
)

// ObjectStorage defines the narrow contract against the image byte store.
// Keys follow the {ownerID}/{productID}/{imageID}.{ext} convention; callers
// own the key layout, the implementation owns the bucket.
type ObjectStorage interface {
	// Put streams an object's bytes to storage under the given key.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Delete removes an object. A non-nil error means the bytes may still exist.
	Delete(ctx context.Context, key string) error

	// PresignGet returns a time-limited URL from which the object can be fetched directly.
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
