package entity

import "github.com/google/uuid"

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Owns reports whether the identity is the owner referenced by a post.
func (i Identity) Owns(owner uuid.UUID) bool {
	return i.ID != uuid.Nil && i.ID == owner
}
