package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memes/internal/domain/apperror"
)

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	before := time.Now().Add(-time.Second)
	created, err := NewMemeWriter(db).Create(ctx, ptr("first"), "http://minio/memes/a_1.png", owner)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.CreatedAt.After(before))

	got, err := NewMemeRetriever(db).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", *got.Description)
	assert.Equal(t, "http://minio/memes/a_1.png", got.ImageURL)
	assert.Equal(t, owner, got.UserID)

	_, err = NewMemeRetriever(db).GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateWithoutDescription(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	owner := seedUser(t, db)

	created, err := NewMemeWriter(db).Create(context.Background(), nil, "http://minio/memes/a_2.png", owner)
	require.NoError(t, err)

	got, err := NewMemeRetriever(db).GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestCreateRejectsSharedLocator(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	writer := NewMemeWriter(db)

	_, err := writer.Create(ctx, nil, "http://minio/memes/shared.png", owner)
	require.NoError(t, err)

	_, err = writer.Create(ctx, nil, "http://minio/memes/shared.png", owner)
	assert.ErrorIs(t, err, apperror.ErrRepositoryFailure)
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := NewMemeWriter(db).Create(ctx, ptr("before"), "http://minio/memes/old.png", owner)
	require.NoError(t, err)

	updater := NewMemeUpdater(db)
	retriever := NewMemeRetriever(db)

	tests := []struct {
		name        string
		id          uint
		description *string
		imageURL    *string
		wantErr     error
		wantDesc    string
		wantURL     string
	}{
		{
			name:        "description only",
			id:          created.ID,
			description: ptr("after"),
			wantDesc:    "after",
			wantURL:     "http://minio/memes/old.png",
		},
		{
			name:     "locator only",
			id:       created.ID,
			imageURL: ptr("http://minio/memes/new.png"),
			wantDesc: "after",
			wantURL:  "http://minio/memes/new.png",
		},
		{
			name:     "nothing to change",
			id:       created.ID,
			wantDesc: "after",
			wantURL:  "http://minio/memes/new.png",
		},
		{
			name:        "missing row",
			id:          created.ID + 42,
			description: ptr("ghost"),
			wantErr:     apperror.ErrNotFound,
			wantDesc:    "after",
			wantURL:     "http://minio/memes/new.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := updater.Update(ctx, tt.id, tt.description, tt.imageURL)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := retriever.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, *got.Description)
			assert.Equal(t, tt.wantURL, got.ImageURL)
		})
	}
}

func TestDeleteCapturesLocator(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := NewMemeWriter(db).Create(ctx, nil, "http://minio/memes/gone.png", owner)
	require.NoError(t, err)

	remover := NewMemeRemover(db)

	locator, err := remover.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://minio/memes/gone.png", locator)

	_, err = NewMemeRetriever(db).GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = remover.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	writer := NewMemeWriter(db)

	var ids []uint
	for i, desc := range []string{"b", "c", "a"} {
		m, err := writer.Create(ctx, ptr(desc), fmt.Sprintf("http://minio/memes/%d.png", i), owner)
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	lister := NewMemeLister(db)

	tests := []struct {
		name       string
		offset     int
		limit      int
		sortField  string
		descending bool
		wantIDs    []uint
		wantErr    error
	}{
		{name: "first page by id", offset: 0, limit: 2, sortField: "id", wantIDs: ids[:2]},
		{name: "second page by id", offset: 2, limit: 2, sortField: "id", wantIDs: ids[2:]},
		{name: "beyond the end", offset: 100, limit: 10, sortField: "id", wantIDs: []uint{}},
		{name: "descending id", offset: 0, limit: 10, sortField: "id", descending: true, wantIDs: []uint{ids[2], ids[1], ids[0]}},
		{name: "by description", offset: 0, limit: 10, sortField: "description", wantIDs: []uint{ids[2], ids[0], ids[1]}},
		{name: "unknown field", offset: 0, limit: 10, sortField: "user_id; DROP TABLE memes", wantErr: apperror.ErrInvalidSortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memes, err := lister.List(ctx, tt.offset, tt.limit, tt.sortField, tt.descending)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperror.ErrValidation)

				return
			}
			require.NoError(t, err)

			got := make([]uint, 0, len(memes))
			for _, m := range memes {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}
