package farmkonnect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

var (
	errNotConnected = errors.New("client not connected - call Connect() first")
	errClientClosed = errors.New("client is closed")
)

// SessionClient is the FarmKonnect client variant that shares one
// connection pool across all requests from the same instance. The pool
// must be opened with [SessionClient.Connect] before the first request
// and released exactly once with [SessionClient.Close]. Any number of
// goroutines may issue requests concurrently; retry, auth, and error
// semantics are identical to [Client].
type SessionClient struct {
	core
	services

	connMu    sync.Mutex
	transport *restyTransport
	closed    bool
}

var _ backend = (*SessionClient)(nil)

// NewSession creates a session client. An empty baseURL falls back to
// [DefaultBaseURL]. The returned client is not usable until Connect is
// called.
func NewSession(baseURL string, opts ...Option) *SessionClient {
	options := newClientOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	s := &SessionClient{core: newCore(baseURL, options)}
	s.services = newServices(s)
	return s
}

// Connect validates the configuration and opens the shared connection
// pool. Calling Connect on an already connected client is a no-op.
func (s *SessionClient) Connect(_ context.Context) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.closed {
		return errClientClosed
	}
	if s.transport != nil {
		return nil
	}
	if s.urlErr != nil {
		return s.urlErr
	}
	if err := s.options.validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	s.transport = newRestyTransport(s.options.transport)
	return nil
}

// Close releases the connection pool. It is safe to call more than once;
// only the first call has an effect. Requests issued after Close fail.
func (s *SessionClient) Close() {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.transport != nil {
		s.transport.close()
		s.transport = nil
	}
}

// Request performs one API call on the shared connection pool. See
// [Client.Request].
func (s *SessionClient) Request(ctx context.Context, method, path string, body any, query url.Values, header http.Header) (json.RawMessage, error) {
	s.connMu.Lock()
	transport, closed := s.transport, s.closed
	s.connMu.Unlock()

	if closed {
		return nil, errClientClosed
	}
	if transport == nil {
		return nil, errNotConnected
	}
	return s.do(ctx, transport, method, path, body, query, header)
}
