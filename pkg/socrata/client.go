// Package socrata provides a client for the Socrata Open Data API (SODA).
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Query describes a SODA request against one dataset.
type Query struct {
	// Params are simple field=value equality filters.
	Params map[string]string
	// Where is a SoQL $where expression; mutually additive with Params.
	Where string
	// Select is a SoQL $select column list.
	Select string
	// Order is a SoQL $order expression.
	Order string
	// Limit caps the result size. Zero means the server default.
	Limit int
}

// Encode renders the query as a URL query string.
func (q Query) Encode() string {
	v := url.Values{}
	for k, val := range q.Params {
		v.Set(k, val)
	}
	if q.Where != "" {
		v.Set("$where", q.Where)
	}
	if q.Select != "" {
		v.Set("$select", q.Select)
	}
	if q.Order != "" {
		v.Set("$order", q.Order)
	}
	if q.Limit > 0 {
		v.Set("$limit", strconv.Itoa(q.Limit))
	}
	return v.Encode()
}

// Client defines SODA dataset access.
type Client interface {
	// Get fetches records from the dataset with the given 4x4 id.
	Get(ctx context.Context, datasetID string, q Query) ([]Record, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL sets a custom resource base URL (for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *httpClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the per-request time budget.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithRateLimit sets the request rate limit and burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type httpClient struct {
	appToken string
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a SODA client for data.cityofnewyork.us. The app
// token is optional; anonymous requests are throttled harder upstream.
func NewClient(appToken string, opts ...Option) Client {
	c := &httpClient{
		appToken: appToken,
		baseURL:  "https://data.cityofnewyork.us/resource",
		limiter:  rate.NewLimiter(10, 10),
		http: &http.Client{
			Timeout: 12 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryableStatusCode returns true if the HTTP status should trigger a retry.
func retryableStatusCode(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable
}

// retryDo executes the request with exponential backoff on transient
// failures. Returns the body and status on success, or the last error.
func (c *httpClient) retryDo(ctx context.Context, req *http.Request) ([]byte, int, error) {
	const maxAttempts = 3
	backoff := 500 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, eris.Wrap(err, "socrata: rate limiter wait")
		}

		retryReq := req.Clone(ctx)
		resp, err := c.http.Do(retryReq)
		if err != nil {
			lastErr = err
			if attempt < maxAttempts {
				select {
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= 2
				continue
			}
			return nil, 0, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, resp.StatusCode, eris.Wrap(readErr, "socrata: read response body")
		}

		if retryableStatusCode(resp.StatusCode) && attempt < maxAttempts {
			lastErr = eris.Errorf("socrata: status %d: %s", resp.StatusCode, string(body))
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		return body, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}

func (c *httpClient) Get(ctx context.Context, datasetID string, q Query) ([]Record, error) {
	reqURL := fmt.Sprintf("%s/%s.json", c.baseURL, datasetID)
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "socrata: create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	body, statusCode, err := c.retryDo(ctx, req)
	if err != nil {
		return nil, eris.Wrapf(err, "socrata: get %s", datasetID)
	}
	if statusCode != http.StatusOK {
		return nil, eris.Errorf("socrata: get %s: unexpected status %d: %s", datasetID, statusCode, string(body))
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, eris.Wrapf(err, "socrata: unmarshal %s response", datasetID)
	}

	return records, nil
}
