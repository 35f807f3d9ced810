package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// FarmsService groups the farm management operations.
type FarmsService struct {
	b backend
}

// List returns a page of the caller's farms.
func (s *FarmsService) List(ctx context.Context, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/farms.list", nil, q, nil)
}

// Get returns a single farm by id.
func (s *FarmsService) Get(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/farms.get", nil, q, nil)
}

// Create registers a new farm.
func (s *FarmsService) Create(ctx context.Context, farm any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/farms.create", farm, nil, nil)
}

// Update replaces the farm identified by id. The id travels as a query
// parameter alongside the JSON body.
func (s *FarmsService) Update(ctx context.Context, id int, farm any) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodPut, "/api/trpc/farms.update", farm, q, nil)
}

// Delete removes the farm identified by id.
func (s *FarmsService) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodDelete, "/api/trpc/farms.delete", nil, q, nil)
}
