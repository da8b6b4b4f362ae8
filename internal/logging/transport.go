package logging

import (
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every outbound request.
//
// Entries carry the request ID from the request context, so a POST can be
// matched with the row that produced it. Log fields:
//   - method: HTTP method
//   - url: Target URL
//   - status: Response status code (absent on transport errors)
//   - duration_ms: Round-trip time in milliseconds
//
// Everything is logged at debug level; callers report failures to users.
type Transport struct {
	// Base is the underlying RoundTripper (default: http.DefaultTransport)
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	duration := time.Since(start)

	logger := FromContext(req.Context())
	if err != nil {
		logger.Debug("request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	logger.Debug("request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}
