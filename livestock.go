package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// LivestockService groups the livestock management operations.
type LivestockService struct {
	b backend
}

// List returns the animals of a farm, optionally narrowed to one animal
// type. An empty animalType is not sent.
func (s *LivestockService) List(ctx context.Context, farmID int, animalType string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	if animalType != "" {
		q.Set("type", animalType)
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/livestock.list", nil, q, nil)
}

// Get returns a single animal by id.
func (s *LivestockService) Get(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/livestock.get", nil, q, nil)
}

// Create registers a new animal.
func (s *LivestockService) Create(ctx context.Context, animal any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/livestock.create", animal, nil, nil)
}

// GetHealthRecords returns the health record history for an animal.
func (s *LivestockService) GetHealthRecords(ctx context.Context, animalID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("animalId", strconv.Itoa(animalID))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/livestock.getHealthRecords", nil, q, nil)
}

// AddHealthRecord appends a health record to an animal's history.
func (s *LivestockService) AddHealthRecord(ctx context.Context, record any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/livestock.addHealthRecord", record, nil, nil)
}
