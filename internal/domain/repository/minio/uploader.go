package minio

import "context"

// Uploader stores bytes under a fresh unique object name and returns the
// locator of the stored object.
type Uploader interface {
	Put(ctx context.Context, data []byte, suggestedName, contentType string) (string, error)
}
