// Package farmkonnect provides an HTTP client for the FarmKonnect API.
//
// Two client variants share identical retry, authentication, and error
// semantics. [Client] issues each request on its own connection and holds
// no long-lived resources. [SessionClient] wraps
// [github.com/go-resty/resty/v2] around a shared connection pool that is
// opened with [SessionClient.Connect] and released with
// [SessionClient.Close]; many goroutines may issue requests against the
// same session concurrently.
//
// # Basic Usage
//
//	c := farmkonnect.New("https://api.farmkonnect.com",
//	    farmkonnect.WithAuthToken("my-jwt-token"),
//	    farmkonnect.WithRetryAttempts(5),
//	)
//
//	farms, err := c.Farms.List(ctx, 10, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or, with a shared connection pool:
//
//	s := farmkonnect.NewSession("https://api.farmkonnect.com")
//	if err := s.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	analytics, err := s.Crops.GetAnalytics(ctx, cropID)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New] or
// [NewSession]. Invalid values are silently ignored and the default is
// retained; session options are additionally validated when
// [SessionClient.Connect] is called.
//
// # Retry Behaviour
//
// Only transport-level failures (connection errors, timeouts) are retried,
// with exponential backoff starting at the configured base delay. A
// completed exchange with a non-2xx status is surfaced immediately as an
// [*APIError] and never retried: an explicit rejection from the service is
// not a transient condition. The attempt count set with
// [WithRetryAttempts] is the total budget including the first try.
//
// # Errors
//
// Every failed request returns an [*APIError]. A StatusCode of 0 means the
// service was never reached; a nonzero StatusCode carries the service's
// response, with Details holding the decoded error body for field-level
// feedback. Branch with [AsAPIError], [IsStatus], or [IsTransportError].
//
// # Authentication
//
// Bearer-token authentication is configured with [WithAuthToken] and may
// be rotated at runtime with SetToken and ClearToken on either client
// variant without reconstructing it. A configured token always wins over a
// caller-supplied Authorization header.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Ensure your implementation redacts credentials and
// tokens from request and response bodies before persisting logs.
package farmkonnect
