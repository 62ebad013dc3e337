// Package etherscan implements order.Explorer on top of the Etherscan v2 API.
//
// Every request waits on a shared throttle first, so all calls made through
// one client respect the API rate limit regardless of how many goroutines
// issue them.
package etherscan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/orderwatch/internal/pkg/resilience/throttle"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrMalformedResponse is returned when the API answers with anything other
// than a list of results. Etherscan reports errors, including rate limiting
// and invalid keys, as a string result.
var ErrMalformedResponse = errors.New("malformed explorer response")

// DefaultEndpoint is the Etherscan v2 multichain endpoint.
const DefaultEndpoint = "https://api.etherscan.io/v2/api"

// response is the envelope of every Etherscan account endpoint.
type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error wrapping ErrMalformedResponse unless Result is a JSON array.
func (r response) Err() error {
	if trimmed := bytes.TrimSpace(r.Result); len(trimmed) > 0 && trimmed[0] == '[' {
		return nil
	}

	var detail string
	if err := json.Unmarshal(r.Result, &detail); err != nil || detail == "" {
		detail = r.Message
	}

	return fmt.Errorf("%w: [%s] - %s", ErrMalformedResponse, r.Status, detail)
}

type client struct {
	endpoint   string
	apiKey     string
	chainID    int64
	httpClient *retryablehttp.Client
	throttle   throttle.Throttle
}

// fetch waits for the throttle, issues a GET with params plus the chain id and
// API key, and returns the raw result array.
func (c *client) fetch(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("chainid", strconv.FormatInt(c.chainID, 10))
	params.Set("apikey", c.apiKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrMalformedResponse, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return data.Result, data.Err()
}

type config struct {
	endpoint string
	chainID  int64
	throttle throttle.Throttle
}

type Option func(*config)

// NewClient returns an Etherscan client authenticated with apiKey.
//
// Defaults: DefaultEndpoint, chain id 1 and a throttle at throttle.DefaultInterval.
func NewClient(httpClient *retryablehttp.Client, apiKey string, opts ...Option) *client {
	cfg := config{
		endpoint: DefaultEndpoint,
		chainID:  1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.throttle == nil {
		cfg.throttle = throttle.New()
	}

	return &client{
		endpoint:   cfg.endpoint,
		apiKey:     apiKey,
		chainID:    cfg.chainID,
		httpClient: httpClient,
		throttle:   cfg.throttle,
	}
}

func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

func WithChainID(id int64) Option {
	return func(c *config) {
		c.chainID = id
	}
}

// WithThrottle shares th with other clients of the same API.
func WithThrottle(th throttle.Throttle) Option {
	return func(c *config) {
		c.throttle = th
	}
}
