package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"memes/internal/domain/model"
)

func setupDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := Open(sqlite.Open(dsn), Config{
		ConnectionTimeout: 3000,
		QueryTimeout:      3000,
		MaxOpenConns:      1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func seedUser(t *testing.T, db *Database) uuid.UUID {
	t.Helper()

	user := &model.User{
		Name:           "Ivan",
		Surname:        "Petrov",
		Email:          uuid.NewString() + "@example.com",
		HashedPassword: "x",
	}
	require.NoError(t, NewUserStore(db).CreateUser(context.Background(), user))

	return user.ID
}

func ptr(s string) *string {
	return &s
}
