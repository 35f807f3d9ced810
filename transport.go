package farmkonnect

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Response is the outcome of one completed exchange. It is produced even
// for non-2xx statuses so the error model can extract structured detail
// from the body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport executes exactly one request attempt. An error return means
// the exchange did not complete at all (connection failure, timeout); a
// non-2xx status is not an error at this layer.
type Transport interface {
	RoundTrip(ctx context.Context, method, url string, body []byte, header http.Header) (*Response, error)
}

// httpTransport serves the blocking client. Keep-alives are disabled so
// each call opens and releases its own connection; the client holds no
// long-lived resources.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(rt http.RoundTripper) *httpTransport {
	if rt == nil {
		rt = &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		}
	}
	return &httpTransport{client: &http.Client{Transport: rt}}
}

func (t *httpTransport) RoundTrip(ctx context.Context, method, url string, body []byte, header http.Header) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, vv := range header {
		req.Header[k] = vv
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: b}, nil
}

// restyTransport serves the session client. All attempts run against one
// resty client whose connection pool is shared across calls; retries stay
// with the request engine, so resty's own retry machinery is disabled.
type restyTransport struct {
	rc *resty.Client
}

func newRestyTransport(rt http.RoundTripper) *restyTransport {
	rc := resty.New().SetRetryCount(0)
	if rt != nil {
		rc.SetTransport(rt)
	}
	return &restyTransport{rc: rc}
}

func (t *restyTransport) RoundTrip(ctx context.Context, method, url string, body []byte, header http.Header) (*Response, error) {
	req := t.rc.R().
		SetContext(ctx).
		SetHeaderMultiValues(header)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func (t *restyTransport) close() {
	t.rc.GetClient().CloseIdleConnections()
}
