package database

import "context"

// Remover deletes a meme row and returns the image locator it referenced
// at the moment of deletion.
type Remover interface {
	Delete(ctx context.Context, id uint) (string, error)
}
