package farmkonnect

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Defaults applied by [New] and [NewSession] when no option overrides them.
const (
	DefaultBaseURL       = "http://localhost:3001"
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

type Option func(*Options)

type Options struct {
	timeout        time.Duration
	retryAttempts  int
	retryDelay     time.Duration
	requestLogger  RequestLogger
	requestHeaders map[string]string
	authToken      string
	transport      http.RoundTripper
	rateLimiter    RateLimiter
	metrics        *MetricsCollector
}

func newClientOptions() *Options {
	return &Options{
		timeout:        DefaultTimeout,
		retryAttempts:  DefaultRetryAttempts,
		retryDelay:     DefaultRetryDelay,
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
	}
}

func (o *Options) validate() error {
	if o.requestLogger == nil {
		return errors.New("request logger must not be nil")
	}
	if o.retryAttempts < 1 {
		return errors.New("retry attempts must be at least 1")
	}
	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if o.retryDelay < 0 {
		return errors.New("retry delay must not be negative")
	}
	return nil
}

// RateLimiter gates request attempts. *rate.Limiter from golang.org/x/time
// satisfies it.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// WithAuthToken sets the bearer token sent in the Authorization header.
// The token can be rotated later with SetToken and ClearToken.
func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithTimeout sets the per-attempt request timeout. Values that are not
// positive are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryAttempts sets the total attempt budget, including the first
// try. Values below 1 are ignored.
func WithRetryAttempts(attempts int) Option {
	return func(o *Options) {
		if attempts >= 1 {
			o.retryAttempts = attempts
		}
	}
}

// WithRetryDelay sets the base backoff delay. The delay before retry n
// (n starting at 1) is delay * 2^(n-1). Negative values are ignored.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}

// WithRequestLogger sets the logger used for request lifecycle events.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header sent with every request. Content-Type
// and Accept are managed by the client and cannot be overridden here;
// attempts to do so are ignored.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTransport sets the http.RoundTripper used by the underlying
// transport. Mainly useful for tests and custom TLS or proxy setups.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *Options) {
		if rt != nil {
			o.transport = rt
		}
	}
}

// WithRateLimiter installs a client-wide rate limiter consulted before
// every attempt, including retries.
func WithRateLimiter(rl RateLimiter) Option {
	return func(o *Options) {
		if rl != nil {
			o.rateLimiter = rl
		}
	}
}

// WithRateLimit installs a token-bucket rate limiter allowing rps
// requests per second with the given burst. Non-positive values are
// ignored.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *Options) {
		if rps > 0 && burst > 0 {
			o.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithMetricsCollector installs Prometheus instrumentation for the
// request lifecycle.
func WithMetricsCollector(mc *MetricsCollector) Option {
	return func(o *Options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}
