package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	repo "memes/internal/domain/repository/database"
	"memes/internal/infrastructure/database"
	"memes/internal/infrastructure/metrics"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type memBlobs struct {
	mu        sync.Mutex
	objects   map[string]entity.BlobObject
	putErr    error
	deleteErr error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: make(map[string]entity.BlobObject)}
}

func (m *memBlobs) Put(_ context.Context, data []byte, name, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putErr != nil {
		return "", m.putErr
	}

	locator := fmt.Sprintf("mem://memes/%s_%s", uuid.NewString(), name)
	m.objects[locator] = entity.BlobObject{Data: data, ContentType: contentType}

	return locator, nil
}

func (m *memBlobs) Get(_ context.Context, locator string) (entity.BlobObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[locator]
	if !ok {
		return entity.BlobObject{}, apperror.New(apperror.ErrNotFound, "object does not exist")
	}

	return obj, nil
}

func (m *memBlobs) Delete(_ context.Context, locator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, locator)

	return nil
}

func (m *memBlobs) has(locator string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[locator]

	return ok
}

func (m *memBlobs) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.objects)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.MemeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.MemeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) kinds() []entity.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds := make([]entity.EventKind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

type recordingLedger struct {
	mu      sync.Mutex
	orphans []entity.Orphan
}

func (l *recordingLedger) Record(_ context.Context, orphan entity.Orphan) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orphans = append(l.orphans, orphan)

	return nil
}

func (l *recordingLedger) locators() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.orphans))
	for _, o := range l.orphans {
		out = append(out, o.Locator)
	}

	return out
}

type failingWriter struct{}

func (failingWriter) Create(context.Context, *string, string, uuid.UUID) (*model.Meme, error) {
	return nil, apperror.Wrap(apperror.ErrRepositoryFailure, "Failed to save meme", errors.New("db down"))
}

type failingUpdater struct{}

func (failingUpdater) Update(context.Context, uint, *string, *string) error {
	return apperror.Wrap(apperror.ErrRepositoryFailure, "Failed to update meme", errors.New("db down"))
}

type testEnv struct {
	db       *database.Database
	blobs    *memBlobs
	events   *recordingPublisher
	ledger   *recordingLedger
	metrics  *metrics.Metrics
	reporter *Reporter

	owner    entity.Identity
	stranger entity.Identity

	uploader    *Uploader
	updater     *Updater
	deleter     *Deleter
	getter      *Getter
	imageGetter *ImageGetter
	lister      *Lister
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), database.Config{
		ConnectionTimeout: 3000,
		QueryTimeout:      3000,
		MaxOpenConns:      1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Stop() })

	e := &testEnv{
		db:      db,
		blobs:   newMemBlobs(),
		events:  &recordingPublisher{},
		ledger:  &recordingLedger{},
		metrics: metrics.New(),
	}
	e.reporter = NewReporter(e.events, e.ledger, e.metrics)
	e.owner = e.seedUser(t)
	e.stranger = e.seedUser(t)

	retriever := database.NewMemeRetriever(db)
	e.uploader = NewUploader(database.NewMemeWriter(db), e.blobs, e.reporter)
	e.updater = NewUpdater(retriever, database.NewMemeUpdater(db), e.blobs, e.blobs, e.reporter)
	e.deleter = NewDeleter(retriever, database.NewMemeRemover(db), e.blobs, e.reporter)
	e.getter = NewGetter(retriever)
	e.imageGetter = NewImageGetter(retriever, e.blobs)
	e.lister = NewLister(database.NewMemeLister(db))

	return e
}

func (e *testEnv) seedUser(t *testing.T) entity.Identity {
	t.Helper()

	user := &model.User{
		Name:           "Anna",
		Surname:        "Smirnova",
		Email:          uuid.NewString() + "@example.com",
		HashedPassword: "x",
	}
	require.NoError(t, database.NewUserStore(e.db).CreateUser(context.Background(), user))

	return entity.Identity{ID: user.ID, Email: user.Email}
}

func (e *testEnv) seedMeme(t *testing.T, description string) *model.Meme {
	t.Helper()

	meme, err := e.uploader.Upload(context.Background(), e.owner, &description, pngFile("seed.png"))
	require.NoError(t, err)

	return meme
}

func (e *testEnv) rowCount(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.db.DB.Model(&model.Meme{}).Count(&n).Error)

	return n
}

func pngFile(name string) entity.File {
	return entity.File{Name: name, ContentType: "image/png", Data: pngHeader}
}

func ptr(s string) *string {
	return &s
}

func hasSuffix(locator, name string) bool {
	return strings.HasSuffix(locator, "_"+name)
}

// cancelWriter cancels the request before handing over to next, as a client
// that disconnects right after the blob was stored.
type cancelWriter struct {
	cancel context.CancelFunc
	next   repo.Writer
}

func (w cancelWriter) Create(ctx context.Context, description *string, imageURL string,
	owner uuid.UUID,
) (*model.Meme, error) {
	w.cancel()

	return w.next.Create(ctx, description, imageURL, owner)
}

func uintString(v uint) string {
	return fmt.Sprintf("%d", v)
}
