package entity

// ForecastSlot is one time-of-day block of a forecast day, as reported by
// the upstream weather service.
type ForecastSlot struct {
	WeatherID                int    `json:"weather_id"`
	Description              string `json:"description"`
	PrecipitationProbability int    `json:"precipitationProbability"`
}

// ForecastDay is a single day of the multi-day forecast. Either slot may be
// missing when the upstream omits it.
type ForecastDay struct {
	Date      string        `json:"date"`
	TempMin   float64       `json:"temp_min"`
	TempMax   float64       `json:"temp_max"`
	Morning   *ForecastSlot `json:"morning"`
	Afternoon *ForecastSlot `json:"afternoon"`
}

// RainCheck is the evaluated result for one forecast day. Action is non-nil
// only when the precipitation probability crossed the trigger threshold.
type RainCheck struct {
	Date        string        `json:"date"`
	TempMin     float64       `json:"temp_min"`
	TempMax     float64       `json:"temp_max"`
	Morning     *ForecastSlot `json:"morning"`
	Afternoon   *ForecastSlot `json:"afternoon"`
	Probability int           `json:"probability"`
	Action      *string       `json:"action"`
}
