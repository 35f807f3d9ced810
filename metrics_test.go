package farmkonnect

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollector_RecordsRequestLifecycle(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	rt := &fakeRoundTripper{fn: func(attempt int, _ *http.Request) (*http.Response, error) {
		if attempt == 1 {
			return nil, connRefused{}
		}
		return jsonResponse(http.StatusOK, `{}`), nil
	}}

	client := New("http://example.com",
		WithTransport(rt),
		WithRetryAttempts(3),
		WithRetryDelay(time.Millisecond),
		WithMetricsCollector(mc),
	)

	if _, err := client.Farms.Get(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const endpoint = "/api/trpc/farms.get"

	if got := testutil.ToFloat64(mc.retriesTotal.WithLabelValues("GET", endpoint)); got != 1 {
		t.Errorf("expected 1 retry recorded, got %v", got)
	}
	if got := testutil.ToFloat64(mc.requestsTotal.WithLabelValues("GET", "0", endpoint)); got != 1 {
		t.Errorf("expected 1 failed attempt recorded, got %v", got)
	}
	if got := testutil.ToFloat64(mc.requestsTotal.WithLabelValues("GET", "200", endpoint)); got != 1 {
		t.Errorf("expected 1 successful attempt recorded, got %v", got)
	}
	if got := testutil.ToFloat64(mc.requestsInFlight.WithLabelValues("GET", endpoint)); got != 0 {
		t.Errorf("expected in-flight gauge back at 0, got %v", got)
	}
}

func TestMetricsCollector_RecordsHTTPErrors(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	rt := &fakeRoundTripper{fn: func(_ int, _ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"message":"Farm not found"}`), nil
	}}

	client := New("http://example.com", WithTransport(rt), WithMetricsCollector(mc))

	if _, err := client.Farms.Get(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}

	const endpoint = "/api/trpc/farms.get"

	if got := testutil.ToFloat64(mc.errorsTotal.WithLabelValues("GET", endpoint, errorKindHTTP)); got != 1 {
		t.Errorf("expected 1 http error recorded, got %v", got)
	}
	if got := testutil.ToFloat64(mc.requestsTotal.WithLabelValues("GET", "404", endpoint)); got != 1 {
		t.Errorf("expected 1 attempt with status 404, got %v", got)
	}
}

func TestMetricsCollector_NilIsSafe(t *testing.T) {
	t.Parallel()

	var mc *MetricsCollector

	mc.recordRequest("GET", "/x", 200, time.Millisecond)
	mc.recordRetry("GET", "/x")
	mc.recordError("GET", "/x", errorKindTransport)
	mc.incInFlight("GET", "/x")
	mc.decInFlight("GET", "/x")
}
