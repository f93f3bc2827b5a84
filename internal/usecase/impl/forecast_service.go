package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	"pluvio/internal/domain/service"
	"pluvio/internal/usecase"

	"go.uber.org/fx"
)

// rainThreshold is the precipitation probability above which the action
// fires. The comparison is strictly greater-than: 75 itself does not trigger.
const rainThreshold = 75

// maxForecastDays is how many days ahead the upstream provider reports.
const maxForecastDays = 4

// forecastService implements the ForecastUsecase interface.
type forecastService struct {
	provider  service.ForecastProvider
	notifier  service.Notifier
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ForecastServiceParams holds dependencies for forecastService, injected by Fx.
type ForecastServiceParams struct {
	fx.In

	Provider  service.ForecastProvider
	Notifier  service.Notifier
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewForecastService is the constructor for forecastService.
func NewForecastService(params ForecastServiceParams) usecase.ForecastUsecase {
	return &forecastService{
		provider:  params.Provider,
		notifier:  params.Notifier,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// RainCheck fetches the forecast for a location and evaluates the threshold
// rule for the requested day.
func (srv *forecastService) RainCheck(ctx context.Context, location, day string) (*entity.RainCheck, error) {
	dayIndex := clampDayIndex(day)

	days, err := srv.provider.FetchForecast(ctx, location)
	if err != nil {
		srv.logger.Error("Forecast fetch failed", slog.String("location", location), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	if len(days) == 0 {
		return nil, domainerrors.ErrForecastUnavailable.WrapMessage("provider has no forecast for " + location)
	}

	// Providers sometimes report fewer than four days.
	if dayIndex > len(days) {
		return nil, domainerrors.ErrForecastDayUnavailable.WrapMessage(fmt.Sprintf("forecast has only %d days", len(days)))
	}

	forecast := days[dayIndex-1]
	probability := max(slotProbability(forecast.Morning), slotProbability(forecast.Afternoon))

	result := &entity.RainCheck{
		Date:        forecast.Date,
		TempMin:     forecast.TempMin,
		TempMax:     forecast.TempMax,
		Morning:     forecast.Morning,
		Afternoon:   forecast.Afternoon,
		Probability: probability,
	}

	if probability > rainThreshold {
		message := fmt.Sprintf("rain action triggered: precipitation probability %d%% above %d%%", probability, rainThreshold)
		result.Action = &message

		srv.fireAction(ctx, &service.RainEvent{
			Location:    location,
			Date:        forecast.Date,
			Probability: probability,
			Message:     message,
			TriggeredAt: time.Now(),
		})
	}

	return result, nil
}

// fireAction runs the action hooks. Hook failures are logged, never surfaced:
// the rain check result stands on its own.
func (srv *forecastService) fireAction(ctx context.Context, event *service.RainEvent) {
	srv.logger.Info("Rain action triggered",
		slog.String("location", event.Location),
		slog.String("date", event.Date),
		slog.Int("probability", event.Probability),
	)

	if err := srv.notifier.Notify(ctx, event); err != nil {
		srv.logger.Warn("Rain action notifier failed", slog.Any("error", err))
	}

	if err := srv.publisher.PublishRainEvent(ctx, event); err != nil {
		srv.logger.Warn("Rain action event publish failed", slog.Any("error", err))
	}
}

// clampDayIndex parses the raw day parameter, falling back to 1 when it is
// not a number or outside 1..4. Bad input is never an error here.
func clampDayIndex(raw string) int {
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 || day > maxForecastDays {
		return 1
	}

	return day
}

// slotProbability treats a missing time-of-day slot as 0% precipitation.
func slotProbability(slot *entity.ForecastSlot) int {
	if slot == nil {
		return 0
	}

	return slot.PrecipitationProbability
}
