package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/presentation"
	"memes/internal/presentation/middleware"
)

const testToken = "valid-token"

var testCaller = entity.Identity{ID: uuid.MustParse("3f1c1f46-7a8e-4b55-9d7e-0e3b9b2a6c11"), Email: "owner@example.com"}

type resolverStub struct{}

func (resolverStub) ResolveCaller(_ context.Context, credential string) (entity.Identity, error) {
	if credential != "Bearer "+testToken {
		return entity.Identity{}, apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}

	return testCaller, nil
}

type uploaderMock struct{ mock.Mock }

func (m *uploaderMock) Upload(ctx context.Context, caller entity.Identity, description *string,
	file entity.File,
) (*model.Meme, error) {
	args := m.Called(ctx, caller, description, file)
	meme, _ := args.Get(0).(*model.Meme)

	return meme, args.Error(1)
}

type updaterMock struct{ mock.Mock }

func (m *updaterMock) Update(ctx context.Context, caller entity.Identity, id uint, description *string,
	file *entity.File,
) error {
	return m.Called(ctx, caller, id, description, file).Error(0)
}

type deleterMock struct{ mock.Mock }

func (m *deleterMock) Delete(ctx context.Context, caller entity.Identity, id uint) error {
	return m.Called(ctx, caller, id).Error(0)
}

type getterMock struct{ mock.Mock }

func (m *getterMock) Get(ctx context.Context, caller entity.Identity, id uint) (*model.Meme, error) {
	args := m.Called(ctx, caller, id)
	meme, _ := args.Get(0).(*model.Meme)

	return meme, args.Error(1)
}

type imageGetterMock struct{ mock.Mock }

func (m *imageGetterMock) GetImage(ctx context.Context, caller entity.Identity, id uint) (entity.BlobObject, error) {
	args := m.Called(ctx, caller, id)
	obj, _ := args.Get(0).(entity.BlobObject)

	return obj, args.Error(1)
}

type listerMock struct{ mock.Mock }

func (m *listerMock) List(ctx context.Context, page, size int, sortBy string, descending bool) ([]dto.Meme, error) {
	args := m.Called(ctx, page, size, sortBy, descending)
	memes, _ := args.Get(0).([]dto.Meme)

	return memes, args.Error(1)
}

type registrarMock struct{ mock.Mock }

func (m *registrarMock) Register(ctx context.Context, req dto.SignUp) (dto.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(dto.User)

	return user, args.Error(1)
}

type authenticatorMock struct{ mock.Mock }

func (m *authenticatorMock) Authenticate(ctx context.Context, email, password string) (dto.Token, error) {
	args := m.Called(ctx, email, password)
	token, _ := args.Get(0).(dto.Token)

	return token, args.Error(1)
}

type mocks struct {
	uploader      *uploaderMock
	updater       *updaterMock
	deleter       *deleterMock
	getter        *getterMock
	imageGetter   *imageGetterMock
	lister        *listerMock
	registrar     *registrarMock
	authenticator *authenticatorMock
}

// newServer registers the handlers the same way the run command does.
func newServer(t *testing.T) (*echo.Echo, *mocks) {
	t.Helper()

	m := &mocks{
		uploader:      &uploaderMock{},
		updater:       &updaterMock{},
		deleter:       &deleterMock{},
		getter:        &getterMock{},
		imageGetter:   &imageGetterMock{},
		lister:        &listerMock{},
		registrar:     &registrarMock{},
		authenticator: &authenticatorMock{},
	}

	e := echo.New()
	auth := middleware.AuthMiddleware(resolverStub{})
	users := NewUserHandler(m.registrar, m.authenticator)

	g := e.Group("/memes")
	g.POST("/user/sign-up", users.HandleSignUp)
	g.POST("/user/token", users.HandleToken)
	g.GET("/", NewListHandler(m.lister).Handle)
	g.POST("/", NewUploadHandler(m.uploader).Handle, auth)
	g.GET("/image/:"+presentation.IDParam, NewImageHandler(m.imageGetter).Handle, auth)
	g.GET("/:"+presentation.IDParam, NewGetHandler(m.getter).Handle, auth)
	g.PATCH("/:"+presentation.IDParam, NewUpdateHandler(m.updater).Handle, auth)
	g.DELETE("/:"+presentation.IDParam, NewDeleteHandler(m.deleter).Handle, auth)

	t.Cleanup(func() {
		m.uploader.AssertExpectations(t)
		m.updater.AssertExpectations(t)
		m.deleter.AssertExpectations(t)
		m.getter.AssertExpectations(t)
		m.imageGetter.AssertExpectations(t)
		m.lister.AssertExpectations(t)
		m.registrar.AssertExpectations(t)
		m.authenticator.AssertExpectations(t)
	})

	return e, m
}

// multipartBody builds a form with an optional file part and extra fields.
func multipartBody(t *testing.T, fileName, contentType string, data []byte,
	fields map[string]string,
) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+presentation.FileField+`"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func do(e *echo.Echo, req *http.Request, authorized bool) *httptest.ResponseRecorder {
	if authorized {
		req.Header.Set(presentation.AuthKey, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func strPtr(s string) *string {
	return &s
}
