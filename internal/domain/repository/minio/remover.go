package minio

import "context"

// Remover deletes the object behind a locator. Removing a missing object
// is not an error.
type Remover interface {
	Delete(ctx context.Context, locator string) error
}
