package impl

import (
	"context"
	"testing"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	mockService "pluvio/internal/mocks/service"
	"pluvio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// forecastServiceFixtures holds all test dependencies for forecast service tests.
type forecastServiceFixtures struct {
	service   usecase.ForecastUsecase
	provider  *mockService.MockForecastProvider
	notifier  *mockService.MockNotifier
	publisher *mockService.MockEventPublisher
}

func createTestForecastService(t *testing.T) forecastServiceFixtures {
	provider := mockService.NewMockForecastProvider(t)
	notifier := mockService.NewMockNotifier(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewForecastService(ForecastServiceParams{
		Provider:  provider,
		Notifier:  notifier,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return forecastServiceFixtures{
		service:   service,
		provider:  provider,
		notifier:  notifier,
		publisher: publisher,
	}
}

func slot(probability int) *entity.ForecastSlot {
	return &entity.ForecastSlot{
		WeatherID:                10,
		Description:              "cloudy",
		PrecipitationProbability: probability,
	}
}

func twoQuietDays() []entity.ForecastDay {
	return []entity.ForecastDay{
		{Date: "2026-09-01", TempMin: 8, TempMax: 17, Morning: slot(10), Afternoon: slot(20)},
		{Date: "2026-09-02", TempMin: 9, TempMax: 18, Morning: slot(30), Afternoon: slot(5)},
	}
}

func TestForecastService_RainCheck_PicksRequestedDay(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		FetchForecast(ctx, "cordoba").
		Return(twoQuietDays(), nil)

	result, err := fx.service.RainCheck(ctx, "cordoba", "2")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", result.Date)
	assert.Equal(t, 30, result.Probability)
	assert.Nil(t, result.Action)
}

func TestForecastService_RainCheck_ClampsBadDayToOne(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()

	// Out-of-range and non-numeric day parameters silently fall back to
	// the first day instead of failing.
	for _, day := range []string{"9", "0", "-1", "abc", ""} {
		fx.provider.EXPECT().
			FetchForecast(ctx, "cordoba").
			Return(twoQuietDays(), nil).
			Once()

		result, err := fx.service.RainCheck(ctx, "cordoba", day)
		require.NoError(t, err, "day %q", day)
		assert.Equal(t, "2026-09-01", result.Date, "day %q", day)
	}
}

func TestForecastService_RainCheck_MissingSlotCountsAsZero(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()
	days := []entity.ForecastDay{
		{Date: "2026-09-01", Morning: nil, Afternoon: slot(40)},
	}

	fx.provider.EXPECT().
		FetchForecast(ctx, "ushuaia").
		Return(days, nil)

	result, err := fx.service.RainCheck(ctx, "ushuaia", "1")
	require.NoError(t, err)
	assert.Equal(t, 40, result.Probability)
	assert.Nil(t, result.Action)
}

func TestForecastService_RainCheck_AboveThresholdFiresAction(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()
	days := []entity.ForecastDay{
		{Date: "2026-09-01", Morning: slot(80), Afternoon: slot(60)},
	}

	fx.provider.EXPECT().
		FetchForecast(ctx, "rosario").
		Return(days, nil)

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.RainEvent")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishRainEvent(ctx, mock.AnythingOfType("*service.RainEvent")).
		Return(nil)

	result, err := fx.service.RainCheck(ctx, "rosario", "1")
	require.NoError(t, err)
	assert.Equal(t, 80, result.Probability)
	require.NotNil(t, result.Action)
	assert.Contains(t, *result.Action, "80")
}

func TestForecastService_RainCheck_ThresholdItselfDoesNotTrigger(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()
	days := []entity.ForecastDay{
		{Date: "2026-09-01", Morning: slot(75), Afternoon: slot(75)},
	}

	// No notifier or publisher expectations: exactly 75 must not fire.
	fx.provider.EXPECT().
		FetchForecast(ctx, "rosario").
		Return(days, nil)

	result, err := fx.service.RainCheck(ctx, "rosario", "1")
	require.NoError(t, err)
	assert.Equal(t, 75, result.Probability)
	assert.Nil(t, result.Action)
}

func TestForecastService_RainCheck_HookFailuresDoNotSurface(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()
	days := []entity.ForecastDay{
		{Date: "2026-09-01", Morning: slot(90), Afternoon: nil},
	}

	fx.provider.EXPECT().
		FetchForecast(ctx, "salta").
		Return(days, nil)

	fx.notifier.EXPECT().
		Notify(ctx, mock.AnythingOfType("*service.RainEvent")).
		Return(errors.New("fcm unavailable"))

	fx.publisher.EXPECT().
		PublishRainEvent(ctx, mock.AnythingOfType("*service.RainEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.RainCheck(ctx, "salta", "1")
	require.NoError(t, err)
	require.NotNil(t, result.Action)
}

func TestForecastService_RainCheck_NoForecastForLocation(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		FetchForecast(ctx, "atlantis").
		Return([]entity.ForecastDay{}, nil)

	_, err := fx.service.RainCheck(ctx, "atlantis", "1")
	assert.True(t, errors.Is(err, domainerrors.ErrForecastUnavailable))
}

func TestForecastService_RainCheck_DayBeyondForecast(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		FetchForecast(ctx, "cordoba").
		Return(twoQuietDays(), nil)

	_, err := fx.service.RainCheck(ctx, "cordoba", "4")
	assert.True(t, errors.Is(err, domainerrors.ErrForecastDayUnavailable))
}

func TestForecastService_RainCheck_UpstreamFailure(t *testing.T) {
	fx := createTestForecastService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		FetchForecast(ctx, "cordoba").
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.RainCheck(ctx, "cordoba", "1")
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}
