package database

import "context"

// Updater commits a new description and/or image locator in one
// transaction. Nil arguments leave the column untouched.
type Updater interface {
	Update(ctx context.Context, id uint, description, imageURL *string) error
}
