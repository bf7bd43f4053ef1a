package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/auth/mocks"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC, ctrl.Finish
}

func TestRegisterHandler_Success(t *testing.T) {
	handler, mockUC, finish := setupAuthHandler(t)
	defer finish()

	e := echo.New()
	body := `{"phone":"+628123456789","password":"secret123","name":"Budi"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resp := &models.AuthResponse{
		Token: "signed-token",
		User:  &models.User{ID: uuid.New(), PhoneNumber: "+628123456789", Name: "Budi"},
	}
	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(resp, nil)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegisterHandler_Conflict(t *testing.T) {
	handler, mockUC, finish := setupAuthHandler(t)
	defer finish()

	e := echo.New()
	body := `{"phone":"+628123456789","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	handler, mockUC, finish := setupAuthHandler(t)
	defer finish()

	e := echo.New()
	body := `{"phone":"+628123456789","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_Success(t *testing.T) {
	handler, mockUC, finish := setupAuthHandler(t)
	defer finish()

	e := echo.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	mockUC.EXPECT().Profile(gomock.Any(), userID).Return(&models.User{ID: userID, Name: "Budi"}, nil)

	err := handler.Profile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Budi")
}

func TestProfileHandler_NoAuth(t *testing.T) {
	handler, _, finish := setupAuthHandler(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Profile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
