package farmkonnect

import (
	"testing"
	"time"
)

func TestNewClientOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	if o.timeout != DefaultTimeout {
		t.Errorf("expected timeout=%s, got %s", DefaultTimeout, o.timeout)
	}
	if o.retryAttempts != DefaultRetryAttempts {
		t.Errorf("expected retryAttempts=%d, got %d", DefaultRetryAttempts, o.retryAttempts)
	}
	if o.retryDelay != DefaultRetryDelay {
		t.Errorf("expected retryDelay=%s, got %s", DefaultRetryDelay, o.retryDelay)
	}
	if _, ok := o.requestLogger.(*NoopLogger); !ok {
		t.Errorf("expected NoopLogger default, got %T", o.requestLogger)
	}
	if err := o.validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestWithAuthToken(t *testing.T) {
	t.Parallel()

	o := newClientOptions()
	WithAuthToken("my-token")(o)

	if o.authToken != "my-token" {
		t.Errorf("expected authToken=my-token, got %s", o.authToken)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	WithTimeout(5 * time.Second)(o)
	if o.timeout != 5*time.Second {
		t.Errorf("expected timeout=5s, got %s", o.timeout)
	}

	WithTimeout(0)(o)
	if o.timeout != 5*time.Second {
		t.Errorf("expected zero timeout to be ignored, got %s", o.timeout)
	}

	WithTimeout(-time.Second)(o)
	if o.timeout != 5*time.Second {
		t.Errorf("expected negative timeout to be ignored, got %s", o.timeout)
	}
}

func TestWithRetryAttempts(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	WithRetryAttempts(5)(o)
	if o.retryAttempts != 5 {
		t.Errorf("expected retryAttempts=5, got %d", o.retryAttempts)
	}

	WithRetryAttempts(0)(o)
	if o.retryAttempts != 5 {
		t.Errorf("expected zero attempts to be ignored, got %d", o.retryAttempts)
	}

	WithRetryAttempts(-1)(o)
	if o.retryAttempts != 5 {
		t.Errorf("expected negative attempts to be ignored, got %d", o.retryAttempts)
	}
}

func TestWithRetryDelay(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	WithRetryDelay(50 * time.Millisecond)(o)
	if o.retryDelay != 50*time.Millisecond {
		t.Errorf("expected retryDelay=50ms, got %s", o.retryDelay)
	}

	WithRetryDelay(0)(o)
	if o.retryDelay != 0 {
		t.Errorf("expected zero delay to be accepted, got %s", o.retryDelay)
	}

	WithRetryDelay(-time.Second)(o)
	if o.retryDelay != 0 {
		t.Errorf("expected negative delay to be ignored, got %s", o.retryDelay)
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	o := newClientOptions()
	original := o.requestLogger

	WithRequestLogger(nil)(o)
	if o.requestLogger != original {
		t.Error("expected nil logger to be ignored")
	}

	custom := &NoopLogger{}
	WithRequestLogger(custom)(o)
	if o.requestLogger != custom {
		t.Error("expected custom logger to be set")
	}
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	WithRequestHeader("X-Custom", "value")(o)
	if o.requestHeaders["X-Custom"] != "value" {
		t.Errorf("expected custom header to be set, got %v", o.requestHeaders)
	}

	WithRequestHeader("Content-Type", "text/plain")(o)
	if _, ok := o.requestHeaders["Content-Type"]; ok {
		t.Error("expected Content-Type override to be refused")
	}

	WithRequestHeader("accept", "text/plain")(o)
	if _, ok := o.requestHeaders["accept"]; ok {
		t.Error("expected Accept override to be refused case-insensitively")
	}

	WithRequestHeader("  ", "value")(o)
	if _, ok := o.requestHeaders[""]; ok {
		t.Error("expected blank header name to be refused")
	}
}

func TestWithRateLimit(t *testing.T) {
	t.Parallel()

	o := newClientOptions()

	WithRateLimit(0, 0)(o)
	if o.rateLimiter != nil {
		t.Error("expected non-positive rate limit to be ignored")
	}

	WithRateLimit(10, 2)(o)
	if o.rateLimiter == nil {
		t.Error("expected rate limiter to be installed")
	}
}

func TestWithRateLimiter_NilIgnored(t *testing.T) {
	t.Parallel()

	o := newClientOptions()
	WithRateLimiter(nil)(o)

	if o.rateLimiter != nil {
		t.Error("expected nil rate limiter to be ignored")
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"nil logger", func(o *Options) { o.requestLogger = nil }},
		{"zero attempts", func(o *Options) { o.retryAttempts = 0 }},
		{"zero timeout", func(o *Options) { o.timeout = 0 }},
		{"negative delay", func(o *Options) { o.retryDelay = -1 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := newClientOptions()
			tt.mutate(o)

			if err := o.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
