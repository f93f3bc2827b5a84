package service

import (
	"context"

	"pluvio/internal/domain/entity"
)

// ForecastProvider fetches the multi-day forecast for a location from the
// upstream weather service. An empty slice means the provider answered but
// has no forecast for the location; an error means the call itself failed.
type ForecastProvider interface {
	FetchForecast(ctx context.Context, location string) ([]entity.ForecastDay, error)
}
