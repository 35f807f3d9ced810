package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// CropsService groups the crop management operations.
type CropsService struct {
	b backend
}

// List returns the crops of a farm. An empty status lists all crops;
// a non-empty status narrows the result and is the only case in which
// the status parameter is sent.
func (s *CropsService) List(ctx context.Context, farmID int, status string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	if status != "" {
		q.Set("status", status)
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/crops.list", nil, q, nil)
}

// Get returns a single crop by id.
func (s *CropsService) Get(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/crops.get", nil, q, nil)
}

// Create registers a new crop.
func (s *CropsService) Create(ctx context.Context, crop any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/crops.create", crop, nil, nil)
}

// GetAnalytics returns growth and yield analytics for a crop.
func (s *CropsService) GetAnalytics(ctx context.Context, cropID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("cropId", strconv.Itoa(cropID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/crops.getAnalytics", nil, q, nil)
}

// GetSoilTests returns the soil test history for a crop.
func (s *CropsService) GetSoilTests(ctx context.Context, cropID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("cropId", strconv.Itoa(cropID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/crops.getSoilTests", nil, q, nil)
}

// GetYieldRecords returns the recorded yields for a crop.
func (s *CropsService) GetYieldRecords(ctx context.Context, cropID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("cropId", strconv.Itoa(cropID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/crops.getYieldRecords", nil, q, nil)
}
