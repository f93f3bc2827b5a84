package forecast

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/machinebox/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *smnClient {
	return &smnClient{
		client:  graphql.NewClient(endpoint),
		timeout: 5 * time.Second,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSMNClient_FetchForecast_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"forecast":[{"location_id":"cordoba","forecast":[
			{"date":"2026-09-01","temp_min":8,"temp_max":17,
			 "morning":{"weather_id":10,"description":"cloudy","precipitationProbability":30},
			 "afternoon":null},
			{"date":"2026-09-02","temp_min":9,"temp_max":18,
			 "morning":{"weather_id":11,"description":"rain","precipitationProbability":80},
			 "afternoon":{"weather_id":11,"description":"rain","precipitationProbability":90}}
		]}]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	days, err := client.FetchForecast(context.Background(), "cordoba")
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, 8.0, days[0].TempMin)
	require.NotNil(t, days[0].Morning)
	assert.Equal(t, 30, days[0].Morning.PrecipitationProbability)
	assert.Nil(t, days[0].Afternoon)

	require.NotNil(t, days[1].Afternoon)
	assert.Equal(t, 90, days[1].Afternoon.PrecipitationProbability)
}

func TestSMNClient_FetchForecast_NoForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"forecast":[]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	days, err := client.FetchForecast(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestSMNClient_FetchForecast_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchForecast(context.Background(), "cordoba")
	assert.Error(t, err)
}

func TestSMNClient_FetchForecast_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"errors":[{"message":"unknown locality"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchForecast(context.Background(), "nowhere")
	assert.Error(t, err)
}
