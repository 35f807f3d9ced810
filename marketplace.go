package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// MarketplaceService groups the marketplace operations.
type MarketplaceService struct {
	b backend
}

// ProductQuery narrows a product listing. Zero-valued fields are treated
// as absent and are not serialized.
type ProductQuery struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

// Products returns marketplace products matching the query.
func (s *MarketplaceService) Products(ctx context.Context, query ProductQuery) (json.RawMessage, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Category != "" {
		q.Set("category", query.Category)
	}
	if query.MinPrice != 0 {
		q.Set("minPrice", strconv.FormatFloat(query.MinPrice, 'f', -1, 64))
	}
	if query.MaxPrice != 0 {
		q.Set("maxPrice", strconv.FormatFloat(query.MaxPrice, 'f', -1, 64))
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/marketplace.products", nil, q, nil)
}

// GetProduct returns a single product by id.
func (s *MarketplaceService) GetProduct(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/marketplace.getProduct", nil, q, nil)
}

// CreateOrder places an order.
func (s *MarketplaceService) CreateOrder(ctx context.Context, order any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/marketplace.createOrder", order, nil, nil)
}

// GetOrders returns the caller's orders.
func (s *MarketplaceService) GetOrders(ctx context.Context) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/marketplace.getOrders", nil, nil, nil)
}

// GetCart returns the caller's shopping cart.
func (s *MarketplaceService) GetCart(ctx context.Context) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/marketplace.getCart", nil, nil, nil)
}

// AddToCart puts quantity units of a product into the cart.
func (s *MarketplaceService) AddToCart(ctx context.Context, productID, quantity int) (json.RawMessage, error) {
	body := map[string]int{"productId": productID, "quantity": quantity}
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/marketplace.addToCart", body, nil, nil)
}

// RemoveFromCart removes a product from the cart.
func (s *MarketplaceService) RemoveFromCart(ctx context.Context, productID int) (json.RawMessage, error) {
	body := map[string]int{"productId": productID}
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/marketplace.removeFromCart", body, nil, nil)
}
