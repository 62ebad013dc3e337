// Package http builds the retrying HTTP client used for explorer requests.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultRetryWaitMin = time.Second
	DefaultRetryWaitMax = 5 * time.Second
	DefaultRetryMax     = 2
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	userAgent    string
	logger       retryablehttp.LeveledLogger // nil disables request logging
}

type Option func(*config)

// userAgentTransport stamps every outgoing request with a fixed User-Agent.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

// NewClient returns a retryablehttp client. Connection errors, 429 and 5xx
// responses are retried with exponential backoff, honouring Retry-After.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      DefaultTimeout,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
		retryMax:     DefaultRetryMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = cfg.logger
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if cfg.userAgent != "" {
		client.HTTPClient.Transport = userAgentTransport{
			next:      client.HTTPClient.Transport,
			userAgent: cfg.userAgent,
		}
	}

	return client
}

// WithTimeout bounds a single attempt, not the whole retried request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent identifies the client to the explorer.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithLeveledLogger routes the client's request and retry logs to l.
func WithLeveledLogger(l retryablehttp.LeveledLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
