package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs and counts every outbound call to a registry or geocoder.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// UserAgent is set on requests that do not carry one.
	UserAgent string
}

// RoundTrip executes the request, logging it without its query string.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if lrt.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", lrt.UserAgent)
	}

	// Query strings carry API keys.
	target := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path
	log := logger.Named("upstream").With(
		zap.String("method", req.Method),
		zap.String("url", target),
	)

	start := time.Now()
	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(req.URL.Host, "error").Inc()
		log.Error("Upstream request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(req.URL.Host, statusClass(resp.StatusCode)).Inc()
	log.Debug("Upstream request completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return resp, nil
}

// statusClass folds a status code into "2xx", "4xx" and so on.
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return NewClientWithUserAgent(timeout, "")
}

// NewClientWithUserAgent returns a logging http.Client that stamps a default User-Agent.
func NewClientWithUserAgent(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:   http.DefaultTransport,
			UserAgent: userAgent,
		},
		Timeout: timeout,
	}
}
