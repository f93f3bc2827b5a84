// Package forecast implements the upstream weather provider client against
// the SMN (Servicio Meteorológico Nacional) GraphQL API.
package forecast

import (
	"context"
	"log/slog"
	"time"

	"pluvio/config"
	"pluvio/internal/domain/entity"
	"pluvio/internal/domain/service"

	"github.com/machinebox/graphql"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// forecastQuery mirrors the query the SMN API serves for a locality. The
// API keys localities by name, not id.
const forecastQuery = `
  query GetForecast($loc: String!) {
    forecast(localidad: $loc) {
      _id
      timestamp
      date_time
      location_id
      forecast {
        date
        temp_min
        temp_max
        morning {
          weather_id
          description
          precipitationProbability
        }
        afternoon {
          weather_id
          description
          precipitationProbability
        }
      }
    }
  }
`

// forecastResponse is the shape of the GraphQL data payload.
type forecastResponse struct {
	Forecast []struct {
		LocationID string               `json:"location_id"`
		Forecast   []forecastDayPayload `json:"forecast"`
	} `json:"forecast"`
}

type forecastDayPayload struct {
	Date      string       `json:"date"`
	TempMin   float64      `json:"temp_min"`
	TempMax   float64      `json:"temp_max"`
	Morning   *slotPayload `json:"morning"`
	Afternoon *slotPayload `json:"afternoon"`
}

type slotPayload struct {
	WeatherID                int    `json:"weather_id"`
	Description              string `json:"description"`
	PrecipitationProbability int    `json:"precipitationProbability"`
}

// smnClient implements the ForecastProvider interface.
type smnClient struct {
	client  *graphql.Client
	timeout time.Duration
	logger  *slog.Logger
}

// ClientParams holds dependencies for the SMN client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMNClient is the constructor for smnClient.
func NewSMNClient(params ClientParams) service.ForecastProvider {
	return &smnClient{
		client:  graphql.NewClient(params.Config.Forecast.Endpoint),
		timeout: params.Config.Forecast.Timeout,
		logger:  params.Logger,
	}
}

// FetchForecast queries the SMN API for a locality's multi-day forecast.
// An empty result is not an error; the caller decides what it means.
func (c *smnClient) FetchForecast(ctx context.Context, location string) ([]entity.ForecastDay, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := graphql.NewRequest(forecastQuery)
	req.Var("loc", location)

	var resp forecastResponse
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, errors.Wrap(err, "smn forecast query failed")
	}

	if len(resp.Forecast) == 0 {
		c.logger.Debug("SMN returned no forecast", slog.String("location", location))

		return []entity.ForecastDay{}, nil
	}

	// The API answers with one entry per matching locality; the first match
	// carries the days.
	payload := resp.Forecast[0].Forecast
	days := make([]entity.ForecastDay, 0, len(payload))
	for _, day := range payload {
		days = append(days, entity.ForecastDay{
			Date:      day.Date,
			TempMin:   day.TempMin,
			TempMax:   day.TempMax,
			Morning:   toSlot(day.Morning),
			Afternoon: toSlot(day.Afternoon),
		})
	}

	return days, nil
}

func toSlot(payload *slotPayload) *entity.ForecastSlot {
	if payload == nil {
		return nil
	}

	return &entity.ForecastSlot{
		WeatherID:                payload.WeatherID,
		Description:              payload.Description,
		PrecipitationProbability: payload.PrecipitationProbability,
	}
}
