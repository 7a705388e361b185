package model

// DailyForecast is one day of the short-range forecast for the fixed
// Port Angeles point. Values come straight from the provider; the service
// performs no unit conversion.
//
// @Description Daily min/max temperature and precipitation probability
// @Example {"date": "2025-06-13", "min_temperature_c": 9.1, "max_temperature_c": 17.4, "precipitation_probability_pct": 35}
type DailyForecast struct {
	// Date is the forecast day in ISO-8601 (YYYY-MM-DD) form.
	Date string `json:"date" example:"2025-06-13"`
	// MinTemperatureC is the daily minimum temperature in Celsius.
	MinTemperatureC float64 `json:"min_temperature_c" example:"9.1"`
	// MaxTemperatureC is the daily maximum temperature in Celsius.
	MaxTemperatureC float64 `json:"max_temperature_c" example:"17.4"`
	// PrecipitationProbabilityPct is the maximum precipitation probability, 0-100.
	PrecipitationProbabilityPct float64 `json:"precipitation_probability_pct" example:"35"`
}
