package farmkonnect

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is the single error shape returned for every failed request.
//
// A StatusCode of 0 means the exchange never completed: the client
// exhausted its retry budget on connection or timeout failures and the
// service was never reached. A nonzero StatusCode is the HTTP status of an
// explicit rejection by the service; Message and Details are extracted
// from the response body when it decodes as JSON.
type APIError struct {
	Message    string
	StatusCode int

	// Details is the decoded error response body. It is empty for
	// transport-level failures and for error bodies that are absent or
	// not valid JSON.
	Details map[string]any

	// Cause is the underlying transport error, if any. It is nil for
	// HTTP-level errors.
	Cause error
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, code int) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.StatusCode == code
}

// IsTransportError reports whether err is an *APIError raised because the
// service was never reached (connection failure or timeout on every
// attempt).
func IsTransportError(err error) bool {
	return IsStatus(err, 0)
}

// transportError wraps a failure to complete the exchange at all.
func transportError(cause error) *APIError {
	return &APIError{
		Message:    cause.Error(),
		StatusCode: 0,
		Details:    map[string]any{},
		Cause:      cause,
	}
}

// httpError builds an *APIError from a completed non-2xx exchange. The
// message comes from the body's "message" field when the body decodes as
// a JSON object, falling back to "Request failed" otherwise.
func httpError(resp *Response) *APIError {
	details := map[string]any{}
	message := "Request failed"
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &details); err != nil {
			details = map[string]any{}
		} else if m, ok := details["message"].(string); ok && m != "" {
			message = m
		}
	}
	return &APIError{
		Message:    message,
		StatusCode: resp.StatusCode,
		Details:    details,
	}
}
