package middleware

import (
	"net/http"
	"time"

	"storefront_client/metrics"
	"storefront_client/pkg/logger"
)

// LoggingTransport instruments every outbound request: one log line per
// round trip plus counters. Base nil means http.DefaultTransport.
type LoggingTransport struct {
	Base    http.RoundTripper
	Log     logger.Logger
	Metrics *metrics.ClientMetrics
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	if t.Metrics != nil {
		t.Metrics.Record(status, err)
	}
	if t.Log != nil {
		if err != nil {
			t.Log.Log("%s %s failed after %s: %v", req.Method, req.URL.Path, duration, err)
		} else {
			t.Log.Log("%s %s -> %d (%s)", req.Method, req.URL.Path, status, duration)
		}
	}
	return resp, err
}

func (t *LoggingTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
