package farmkonnect

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &APIError{Message: "Farm not found", StatusCode: 404}

	if got := err.Error(); got != "Farm not found (status 404)" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestAPIError_NilReceiver(t *testing.T) {
	t.Parallel()

	var err *APIError

	if got := err.Error(); got != "<nil>" {
		t.Errorf("unexpected error string: %q", got)
	}

	if err.Unwrap() != nil {
		t.Error("expected nil unwrap")
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := transportError(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the transport cause")
	}
}

func TestAsAPIError_Wrapped(t *testing.T) {
	t.Parallel()

	inner := &APIError{Message: "Request failed", StatusCode: 500}
	wrapped := fmt.Errorf("listing farms: %w", inner)

	got, ok := AsAPIError(wrapped)
	if !ok {
		t.Fatal("expected to extract *APIError from wrapped chain")
	}

	if got != inner {
		t.Error("expected the original *APIError")
	}
}

func TestAsAPIError_NotAPIError(t *testing.T) {
	t.Parallel()

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("expected no match for plain error")
	}
}

func TestIsStatusAndIsTransportError(t *testing.T) {
	t.Parallel()

	httpErr := &APIError{Message: "Farm not found", StatusCode: 404}
	transErr := transportError(errors.New("timeout"))

	if !IsStatus(httpErr, 404) {
		t.Error("expected IsStatus(404) to match")
	}
	if IsStatus(httpErr, 500) {
		t.Error("expected IsStatus(500) not to match")
	}
	if IsTransportError(httpErr) {
		t.Error("expected 404 not to be a transport error")
	}
	if !IsTransportError(transErr) {
		t.Error("expected status 0 to be a transport error")
	}
}

func TestHTTPError_MessageExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantDetails int
	}{
		{
			name:        "message field",
			body:        `{"message":"Farm not found"}`,
			wantMessage: "Farm not found",
			wantDetails: 1,
		},
		{
			name:        "json without message field",
			body:        `{"error":"boom"}`,
			wantMessage: "Request failed",
			wantDetails: 1,
		},
		{
			name:        "empty body",
			body:        "",
			wantMessage: "Request failed",
			wantDetails: 0,
		},
		{
			name:        "plain text body",
			body:        "Internal Server Error",
			wantMessage: "Request failed",
			wantDetails: 0,
		},
		{
			name:        "empty message field",
			body:        `{"message":""}`,
			wantMessage: "Request failed",
			wantDetails: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := httpError(&Response{StatusCode: 500, Body: []byte(tt.body)})

			if err.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", err.Message, tt.wantMessage)
			}
			if len(err.Details) != tt.wantDetails {
				t.Errorf("details: got %v, want %d entries", err.Details, tt.wantDetails)
			}
			if err.StatusCode != 500 {
				t.Errorf("status: got %d, want 500", err.StatusCode)
			}
		})
	}
}
