package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"carhub/internal/domain"
)

const maxBodyBytes = 4 << 20

// Options configures a Client
type Options struct {
	BaseURL         string
	Host            string
	APIKey          string
	Timeout         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
	Logger          *slog.Logger
}

// Client fetches cars over HTTP. Consecutive failures open a circuit
// breaker; while open, calls fail immediately. Calls are never retried.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[domain.Listing]
	logger     *slog.Logger
}

// NewClient creates a listing service client
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	failures := opts.BreakerFailures
	if failures <= 0 {
		failures = 5
	}

	cb := gobreaker.NewCircuitBreaker[domain.Listing](gobreaker.Settings{
		Name:        "listing",
		MaxRequests: 1,
		Timeout:     opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		host:       opts.Host,
		apiKey:     opts.APIKey,
		httpClient: httpClient,
		breaker:    cb,
		logger:     logger,
	}
}

// Fetch requests cars matching req. A structured error object returned by
// the service in place of records yields a Listing with only Message set.
func (c *Client) Fetch(ctx context.Context, req domain.FetchRequest) (domain.Listing, error) {
	listing, err := c.breaker.Execute(func() (domain.Listing, error) {
		return c.do(ctx, req)
	})
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		return domain.Listing{}, err
	}
	return listing, nil
}

func (c *Client) do(ctx context.Context, req domain.FetchRequest) (domain.Listing, error) {
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(req), nil)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%w: build request: %w", ErrFetchFailed, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-RapidAPI-Key", c.apiKey)
	}
	if c.host != "" {
		httpReq.Header.Set("X-RapidAPI-Host", c.host)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	listing, err := decodeListing(resp.StatusCode, body)
	c.logger.Debug("listing fetched",
		slog.String("make", req.Manufacturer),
		slog.String("model", req.Model),
		slog.Int("year", req.Year),
		slog.String("fuel", req.Fuel),
		slog.Int("limit", req.Limit),
		slog.Int("status", resp.StatusCode),
		slog.Int("count", len(listing.Cars)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return listing, err
}

// URL returns the listing endpoint for req
func (c *Client) URL(req domain.FetchRequest) string {
	q := url.Values{}
	q.Set("make", req.Manufacturer)
	q.Set("year", strconv.Itoa(req.Year))
	q.Set("model", req.Model)
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("fuel_type", req.Fuel)
	return c.baseURL + "/v1/cars?" + q.Encode()
}

// decodeListing accepts either an array of cars or an object carrying a
// message. The status code only matters when neither shape is present.
func decodeListing(status int, body []byte) (domain.Listing, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '[':
			var cars []domain.Car
			if err := json.Unmarshal(trimmed, &cars); err != nil {
				return domain.Listing{}, fmt.Errorf("%w: decode cars: %w", ErrFetchFailed, err)
			}
			return domain.Listing{Cars: cars}, nil
		case '{':
			var obj struct {
				Message *string `json:"message"`
			}
			if err := json.Unmarshal(trimmed, &obj); err == nil && obj.Message != nil {
				return domain.Listing{Message: *obj.Message}, nil
			}
		}
	}
	if status < 200 || status > 299 {
		return domain.Listing{}, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, status)
	}
	return domain.Listing{}, fmt.Errorf("%w: malformed payload", ErrFetchFailed)
}
