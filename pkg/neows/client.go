// Package neows provides a client for the NASA NeoWs (Near Earth Object
// Web Service) REST API.
package neows

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client defines the NeoWs operations used by the CLI.
type Client interface {
	// Lookup fetches a single near-Earth object by its NeoWs id or
	// designation.
	Lookup(ctx context.Context, id string) (*Object, error)
}

// Object is the subset of the NeoWs lookup response the simulator consumes.
type Object struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Designation       string `json:"designation"`
	IsHazardous       bool   `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter struct {
		Meters struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	CloseApproaches []CloseApproach `json:"close_approach_data"`
}

// CloseApproach is one close-approach record for an object.
type CloseApproach struct {
	Date             string `json:"close_approach_date"`
	RelativeVelocity struct {
		KilometersPerSecond string `json:"kilometers_per_second"`
	} `json:"relative_velocity"`
}

// Option configures the NeoWs client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second limit. NASA's DEMO_KEY allows
// roughly 30 requests per hour, so the default is deliberately low.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a NeoWs client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: "https://api.nasa.gov/neo/rest/v1",
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(0.5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Lookup(ctx context.Context, id string) (*Object, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "neows: rate limit wait")
	}

	url := fmt.Sprintf("%s/neo/%s?api_key=%s", c.baseURL, id, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "neows: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "neows: lookup %s", id)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "neows: read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("neows: lookup %s: status %d: %s", id, resp.StatusCode, string(body))
	}

	var obj Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, eris.Wrap(err, "neows: unmarshal object")
	}
	return &obj, nil
}
