package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// BreedingService groups the breeding program operations.
type BreedingService struct {
	b backend
}

// GetRecords returns the breeding records of a farm.
func (s *BreedingService) GetRecords(ctx context.Context, farmID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/breeding.getRecords", nil, q, nil)
}

// GetAnalytics returns breeding program analytics for a farm.
func (s *BreedingService) GetAnalytics(ctx context.Context, farmID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/breeding.getAnalytics", nil, q, nil)
}

// CalculateCompatibility scores a potential pairing of two animals.
func (s *BreedingService) CalculateCompatibility(ctx context.Context, animal1ID, animal2ID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("animal1Id", strconv.Itoa(animal1ID))
	q.Set("animal2Id", strconv.Itoa(animal2ID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/breeding.calculateCompatibility", nil, q, nil)
}

// GetRecommendations returns suggested pairings for a farm.
func (s *BreedingService) GetRecommendations(ctx context.Context, farmID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/breeding.getRecommendations", nil, q, nil)
}
