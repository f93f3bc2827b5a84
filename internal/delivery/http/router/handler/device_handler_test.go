package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	mockUsecase "pluvio/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTestServer(t *testing.T) (*mockUsecase.MockDeviceUsecase, http.Handler) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/devices", h.List)
	e.POST("/devices", h.Create)
	e.DELETE("/devices/:id", h.Delete)

	return uc, e
}

func TestDeviceHandler_List_Success(t *testing.T) {
	uc, server := newDeviceTestServer(t)

	ownerID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	uc.EXPECT().
		List(mock.Anything, ownerID).
		Return([]*entity.Device{
			{ID: first, OwnerID: ownerID, Name: "heater"},
			{ID: second, OwnerID: ownerID, Name: "sprinkler"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/devices?ownerId="+ownerID.String(), nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	expected := fmt.Sprintf(
		`[{"id":"%s","name":"heater"},{"id":"%s","name":"sprinkler"}]`,
		first, second,
	)
	assert.JSONEq(t, expected, rec.Body.String())
}

func TestDeviceHandler_List_EmptyIsJSONArray(t *testing.T) {
	uc, server := newDeviceTestServer(t)

	ownerID := uuid.New()
	uc.EXPECT().
		List(mock.Anything, ownerID).
		Return([]*entity.Device{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/devices?ownerId="+ownerID.String(), nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeviceHandler_List_MissingOwner(t *testing.T) {
	_, server := newDeviceTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing ownerId"}`, rec.Body.String())
}

func TestDeviceHandler_List_InvalidOwner(t *testing.T) {
	_, server := newDeviceTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/devices?ownerId=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid ownerId"}`, rec.Body.String())
}

func TestDeviceHandler_List_DatabaseUnavailable(t *testing.T) {
	uc, server := newDeviceTestServer(t)

	ownerID := uuid.New()
	uc.EXPECT().
		List(mock.Anything, ownerID).
		Return(nil, domainerrors.ErrDatabaseUnavailable.WrapMessage("no database connection"))

	req := httptest.NewRequest(http.MethodGet, "/devices?ownerId="+ownerID.String(), nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"database unavailable"}`, rec.Body.String())
}

func TestDeviceHandler_Create_Success(t *testing.T) {
	uc, server := newDeviceTestServer(t)

	ownerID := uuid.New()
	deviceID := uuid.New()
	uc.EXPECT().
		Create(mock.Anything, ownerID, "sprinkler").
		Return(&entity.Device{ID: deviceID, OwnerID: ownerID, Name: "sprinkler"}, nil)

	body := fmt.Sprintf(`{"ownerId":"%s","name":"sprinkler"}`, ownerID)
	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	expected := fmt.Sprintf(`{"id":"%s","name":"sprinkler","ownerId":"%s"}`, deviceID, ownerID)
	assert.JSONEq(t, expected, rec.Body.String())
}

func TestDeviceHandler_Create_MissingFields(t *testing.T) {
	_, server := newDeviceTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(`{"name":"sprinkler"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required fields"}`, rec.Body.String())
}

func TestDeviceHandler_Create_InvalidOwner(t *testing.T) {
	_, server := newDeviceTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(`{"ownerId":"not-a-uuid","name":"sprinkler"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid ownerId"}`, rec.Body.String())
}

func TestDeviceHandler_Delete_Success(t *testing.T) {
	uc, server := newDeviceTestServer(t)

	deviceID := uuid.New()
	uc.EXPECT().
		Delete(mock.Anything, deviceID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/devices/"+deviceID.String(), nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeviceHandler_Delete_InvalidID(t *testing.T) {
	_, server := newDeviceTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/devices/42", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid device id"}`, rec.Body.String())
}
