package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	mockUsecase "pluvio/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newForecastTestServer(t *testing.T) (*mockUsecase.MockForecastUsecase, http.Handler) {
	uc := mockUsecase.NewMockForecastUsecase(t)
	h := NewForecastHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/raincheck/:location/:day", h.RainCheck)

	return uc, e
}

func TestForecastHandler_RainCheck_Quiet(t *testing.T) {
	uc, server := newForecastTestServer(t)

	uc.EXPECT().
		RainCheck(mock.Anything, "cordoba", "2").
		Return(&entity.RainCheck{
			Date:        "2026-09-02",
			Probability: 30,
			Action:      nil,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/raincheck/cordoba/2", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"probability":30`)
	assert.Contains(t, rec.Body.String(), `"action":null`)
}

func TestForecastHandler_RainCheck_Triggered(t *testing.T) {
	uc, server := newForecastTestServer(t)

	action := "take an umbrella, 80% chance of rain"
	uc.EXPECT().
		RainCheck(mock.Anything, "rosario", "1").
		Return(&entity.RainCheck{
			Date:        "2026-09-01",
			Probability: 80,
			Action:      &action,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/raincheck/rosario/1", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"probability":80`)
	assert.Contains(t, rec.Body.String(), action)
}

func TestForecastHandler_RainCheck_UnknownLocation(t *testing.T) {
	uc, server := newForecastTestServer(t)

	uc.EXPECT().
		RainCheck(mock.Anything, "atlantis", "1").
		Return(nil, domainerrors.ErrForecastUnavailable.WrapMessage("no forecast for atlantis"))

	req := httptest.NewRequest(http.MethodGet, "/raincheck/atlantis/1", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no forecast available"}`, rec.Body.String())
}

func TestForecastHandler_RainCheck_DayBeyondForecast(t *testing.T) {
	uc, server := newForecastTestServer(t)

	uc.EXPECT().
		RainCheck(mock.Anything, "cordoba", "4").
		Return(nil, domainerrors.ErrForecastDayUnavailable.WrapMessage("forecast shorter than requested day"))

	req := httptest.NewRequest(http.MethodGet, "/raincheck/cordoba/4", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no forecast available for that day"}`, rec.Body.String())
}

func TestForecastHandler_RainCheck_UpstreamFailure(t *testing.T) {
	uc, server := newForecastTestServer(t)

	uc.EXPECT().
		RainCheck(mock.Anything, "cordoba", "1").
		Return(nil, domainerrors.ErrUpstreamFailure.WrapMessage("weather service unreachable"))

	req := httptest.NewRequest(http.MethodGet, "/raincheck/cordoba/1", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"could not fetch the forecast"}`, rec.Body.String())
}
