package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	httpvalidator "storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsers captures the inputs handlers hand to the user usecase.
type stubUsers struct {
	usecase.UserUsecase
	uploadedFileName string
}

func (s *stubUsers) UploadProfilePicture(_ context.Context, userID uuid.UUID, image usecase.ImageUpload) (*entity.User, error) {
	s.uploadedFileName = image.FileName

	return &entity.User{ID: userID}, nil
}

func newUserHandlerContext(method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	handler := NewUserHandler(nil, nil, &config.Config{})

	body := bytes.NewBufferString(`{"name": "Jamie", "password": "hunter22"}`)
	c, _ := newUserHandlerContext(http.MethodPost, "/api/user/register", body, echo.MIMEApplicationJSON)

	err := handler.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestUserHandler_Login_MissingFields(t *testing.T) {
	handler := NewUserHandler(nil, nil, &config.Config{})

	body := bytes.NewBufferString(`{"email": "jamie@example.com"}`)
	c, _ := newUserHandlerContext(http.MethodPost, "/api/user/login", body, echo.MIMEApplicationJSON)

	err := handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func newProfilePictureContext(t *testing.T, fieldName string) (echo.Context, uuid.UUID) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c, _ := newUserHandlerContext(http.MethodPost, "/api/user/upload-profile-pic", &body, writer.FormDataContentType())
	userID := uuid.New()
	c.Set(middleware.ContextKeyUserID, userID)

	return c, userID
}

func TestUserHandler_UploadProfilePicture_ReadsProfilePictureField(t *testing.T) {
	users := &stubUsers{}
	handler := NewUserHandler(users, nil, &config.Config{})

	c, _ := newProfilePictureContext(t, "profilePicture")

	require.NoError(t, handler.UploadProfilePicture(c))
	assert.Equal(t, "avatar.png", users.uploadedFileName)
}

func TestUserHandler_UploadProfilePicture_AcceptsLegacyImageField(t *testing.T) {
	users := &stubUsers{}
	handler := NewUserHandler(users, nil, &config.Config{})

	c, _ := newProfilePictureContext(t, "image")

	require.NoError(t, handler.UploadProfilePicture(c))
	assert.Equal(t, "avatar.png", users.uploadedFileName)
}

func TestUserHandler_UploadProfilePicture_MissingFile(t *testing.T) {
	handler := NewUserHandler(&stubUsers{}, nil, &config.Config{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	c, _ := newUserHandlerContext(http.MethodPost, "/api/user/upload-profile-pic", &body, writer.FormDataContentType())
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := handler.UploadProfilePicture(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}
