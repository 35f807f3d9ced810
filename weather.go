package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// WeatherService groups the weather operations.
type WeatherService struct {
	b backend
}

// Forecast returns the weather forecast for a farm's location. A days
// value of 0 requests the default 7-day forecast.
func (s *WeatherService) Forecast(ctx context.Context, farmID, days int) (json.RawMessage, error) {
	if days == 0 {
		days = 7
	}
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	q.Set("days", strconv.Itoa(days))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/weather.forecast", nil, q, nil)
}

// GetAlerts returns active weather alerts for a farm.
func (s *WeatherService) GetAlerts(ctx context.Context, farmID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/weather.getAlerts", nil, q, nil)
}

// GetCropRecommendations returns weather-driven crop recommendations for
// a farm.
func (s *WeatherService) GetCropRecommendations(ctx context.Context, farmID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/weather.getCropRecommendations", nil, q, nil)
}
