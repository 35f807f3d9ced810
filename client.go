package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// services is the facade set shared by both client variants. Facades are
// stateless views over the owning client's request engine.
type services struct {
	Farms         *FarmsService
	Crops         *CropsService
	Livestock     *LivestockService
	Breeding      *BreedingService
	Marketplace   *MarketplaceService
	Weather       *WeatherService
	Financial     *FinancialService
	Notifications *NotificationsService
}

func newServices(b backend) services {
	return services{
		Farms:         &FarmsService{b: b},
		Crops:         &CropsService{b: b},
		Livestock:     &LivestockService{b: b},
		Breeding:      &BreedingService{b: b},
		Marketplace:   &MarketplaceService{b: b},
		Weather:       &WeatherService{b: b},
		Financial:     &FinancialService{b: b},
		Notifications: &NotificationsService{b: b},
	}
}

// Client is the blocking FarmKonnect client. Each request opens its own
// connection and the calling goroutine is blocked for the call's full
// duration, including retry delays. It holds no long-lived resources and
// needs no lifecycle calls.
type Client struct {
	core
	services

	transport Transport
}

var _ backend = (*Client)(nil)

// New creates a blocking client. An empty baseURL falls back to
// [DefaultBaseURL].
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	c := &Client{
		core:      newCore(baseURL, options),
		transport: newHTTPTransport(options.transport),
	}
	c.services = newServices(c)
	return c
}

// Request performs one API call against the given relative path,
// returning the raw JSON response body. Most callers should use the
// resource facades instead; Request is the escape hatch for endpoints the
// facades do not cover.
func (c *Client) Request(ctx context.Context, method, path string, body any, query url.Values, header http.Header) (json.RawMessage, error) {
	return c.do(ctx, c.transport, method, path, body, query, header)
}
