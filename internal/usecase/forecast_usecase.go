package usecase

import (
	"context"

	"pluvio/internal/domain/entity"
)

// ForecastUsecase defines the rain check use case.
type ForecastUsecase interface {
	// RainCheck fetches the forecast for a location and evaluates the
	// precipitation threshold rule for the requested day (1-4, clamped to 1
	// when out of range or not a number).
	RainCheck(ctx context.Context, location, day string) (*entity.RainCheck, error)
}
