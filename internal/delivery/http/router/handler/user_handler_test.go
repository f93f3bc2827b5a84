package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "pluvio/internal/domain/errors"
	mockUsecase "pluvio/internal/mocks/usecase"
	"pluvio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestServer(t *testing.T) (*mockUsecase.MockUserUsecase, http.Handler) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/users", h.Register)
	e.POST("/login", h.Login)
	e.POST("/getUserDetails", h.GetDetails)
	e.GET("/health", HealthCheck)

	return uc, e
}

func TestUserHandler_Register_Created(t *testing.T) {
	uc, server := newUserTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "ana@example.com", Password: "secret123"}).
		Return(&usecase.UserSummary{ID: userID, Email: "ana@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"ana@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	uc, server := newUserTestServer(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"ana@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"user already exists"}`, rec.Body.String())
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	uc, server := newUserTestServer(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrMissingFields.WrapMessage("email and password are required"))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required fields"}`, rec.Body.String())
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc, server := newUserTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "secret123"}).
		Return(&usecase.LoginOutput{ID: userID, Email: "ana@example.com", Token: "session-token"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ana@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-token")
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	uc, server := newUserTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"wrong email or password"}`, rec.Body.String())
}

func TestUserHandler_Login_UnknownEmail(t *testing.T) {
	uc, server := newUserTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("login failed"))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ghost@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestUserHandler_GetDetails_Success(t *testing.T) {
	uc, server := newUserTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		GetDetails(mock.Anything, &usecase.DetailsInput{Email: "ana@example.com"}).
		Return(&usecase.UserSummary{ID: userID, Email: "ana@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/getUserDetails", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestUserHandler_HealthCheck(t *testing.T) {
	_, server := newUserTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
