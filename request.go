package farmkonnect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// backend is the transport-agnostic surface the resource facades build
// requests against. Both client variants implement it with the same
// policy core, so facades carry no retry, auth, or error logic of their
// own.
type backend interface {
	Request(ctx context.Context, method, path string, body any, query url.Values, header http.Header) (json.RawMessage, error)
}

// core holds the configuration and retry/auth/error policy shared by
// [Client] and [SessionClient]. The transport that executes a single
// attempt is passed in per call, which is the only thing the two variants
// do differently.
type core struct {
	baseURL *url.URL
	urlErr  error
	options *Options

	mu    sync.RWMutex
	token string
}

func newCore(baseURL string, options *Options) core {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := core{options: options, token: options.authToken}
	u, err := url.Parse(baseURL)
	switch {
	case err != nil:
		c.urlErr = fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	case u.Scheme == "" || u.Host == "":
		c.urlErr = errors.New("base URL must be absolute")
	default:
		c.baseURL = u
	}
	return c
}

// SetToken sets the bearer token used for subsequent requests. Safe to
// call concurrently with in-flight requests; each attempt reads the token
// current at the time its headers are built.
func (c *core) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token; subsequent requests are sent
// unauthenticated.
func (c *core) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// Token returns the currently configured bearer token.
func (c *core) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// headers merges defaults, client-wide extras, and caller-supplied
// headers, in that order, then applies the bearer token last so a
// configured token always wins over a caller-supplied Authorization
// value.
func (c *core) headers(extra http.Header) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	for k, v := range c.options.requestHeaders {
		h.Set(k, v)
	}
	for k, vv := range extra {
		h.Del(k)
		for _, v := range vv {
			h.Add(k, v)
		}
	}
	if token := c.Token(); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func (c *core) resolveURL(path string, query url.Values) string {
	ref, err := url.Parse(path)
	if err != nil {
		ref = &url.URL{Path: path}
	}
	u := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do executes one logical request against the given transport: compose
// URL and headers, attempt up to the retry budget with exponential
// backoff between transport-level failures, and normalize every
// non-success outcome into an *APIError.
//
// Only failures to complete the exchange are retried. A completed
// exchange with a non-2xx status is an explicit rejection by the service
// and is surfaced immediately, so validation errors are never masked as
// transient and the server's error payload is never discarded.
func (c *core) do(ctx context.Context, t Transport, method, path string, body any, query url.Values, header http.Header) (json.RawMessage, error) {
	if c.urlErr != nil {
		return nil, c.urlErr
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	requestURL := c.resolveURL(path, query)
	logger := c.options.requestLogger
	metrics := c.options.metrics
	attempts := c.options.retryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := backoffDelay(c.options.retryDelay, attempt-2)
			logger.Warnf("farmkonnect: %s %s attempt %d/%d failed, retrying in %s: %v",
				method, requestURL, attempt-1, attempts, delay, lastErr)
			metrics.recordRetry(method, path)
			if err := sleep(ctx, delay); err != nil {
				return nil, transportError(err)
			}
		}

		if rl := c.options.rateLimiter; rl != nil {
			if err := rl.Wait(ctx); err != nil {
				return nil, transportError(err)
			}
		}

		attemptCtx := ctx
		cancel := func() {}
		if c.options.timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, c.options.timeout)
		}

		logger.Debugf("farmkonnect: %s %s attempt %d/%d", method, requestURL, attempt, attempts)
		metrics.incInFlight(method, path)
		start := time.Now()
		resp, err := t.RoundTrip(attemptCtx, method, requestURL, payload, c.headers(header))
		elapsed := time.Since(start)
		metrics.decInFlight(method, path)
		cancel()

		if err != nil {
			metrics.recordRequest(method, path, 0, elapsed)
			// The caller's own context ending is not a transient
			// condition; give up without burning the remaining budget.
			if ctx.Err() != nil {
				metrics.recordError(method, path, errorKindTransport)
				logger.Errorf("farmkonnect: %s %s aborted: %v", method, requestURL, ctx.Err())
				return nil, transportError(ctx.Err())
			}
			lastErr = err
			continue
		}

		metrics.recordRequest(method, path, resp.StatusCode, elapsed)
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr := httpError(resp)
			metrics.recordError(method, path, errorKindHTTP)
			logger.Errorf("farmkonnect: %s %s rejected: %v", method, requestURL, apiErr)
			return nil, apiErr
		}

		return json.RawMessage(resp.Body), nil
	}

	metrics.recordError(method, path, errorKindTransport)
	logger.Errorf("farmkonnect: %s %s failed after %d attempts: %v", method, requestURL, attempts, lastErr)
	return nil, transportError(lastErr)
}
