package brokerage

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"slidegate/internal/correlation"
	"slidegate/internal/httpclient"
	"slidegate/internal/logging"
)

// Client talks to the brokerage core service that owns orders and user
// lifecycle events. The gateway never interprets its payloads beyond the
// status code.
type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

// ForwardRequest describes one request to mirror upstream. Paths are kept
// as received so the core service sees the same route the caller hit.
type ForwardRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Body          []byte
	ContentType   string
	Authorization string
}

func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "brokerage_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger,
	}, nil
}

// Forward mirrors a request to the core service. Only the Authorization
// header (when the caller sent one), the content type, and the correlation
// identifier cross the boundary. Every HTTP status comes back as a response;
// errors mean the upstream was unreachable.
func (c *Client) Forward(ctx context.Context, req ForwardRequest) (*httpclient.Response, error) {
	header := http.Header{}
	if req.ContentType != "" {
		header.Set("Content-Type", req.ContentType)
	}
	if req.Authorization != "" {
		header.Set("Authorization", req.Authorization)
	}
	if id := correlation.FromContext(ctx); id != "" {
		header.Set(correlation.Header, id)
	}

	return c.http.Do(ctx, req.Method, req.Path, req.Query, req.Body, header)
}

// Ping checks that the core service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.http.GetJSON(ctx, "/health", nil, nil)
}
