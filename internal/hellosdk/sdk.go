// Package hellosdk is a small client for a running hello-server, used by the probe command.
package hellosdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/imroc/req/v3"
)

type Client struct {
	client  *req.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetUserAgent(UserAgent).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &Client{
		client:  client,
		baseURL: baseURL,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Index(ctx context.Context) (*IndexResponse, error) {
	return get[IndexResponse](ctx, c.client, PathIndex)
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return get[HealthResponse](ctx, c.client, PathHealth)
}

func (c *Client) Ready(ctx context.Context) (*ReadyResponse, error) {
	return get[ReadyResponse](ctx, c.client, PathReady)
}

// Check calls the named probe endpoint ("health" or "ready") and verifies the reported status.
func (c *Client) Check(ctx context.Context, endpoint string) error {
	switch endpoint {
	case EndpointHealth:
		res, err := c.Health(ctx)
		if err != nil {
			return err
		}
		if res.Status != StatusHealthy {
			return fmt.Errorf("%w: %q", ErrUnexpectedBody, res.Status)
		}
		if _, err := res.Time(); err != nil {
			return fmt.Errorf("%w: bad timestamp %q", ErrUnexpectedBody, res.Timestamp)
		}
		return nil

	case EndpointReady:
		res, err := c.Ready(ctx)
		if err != nil {
			return err
		}
		if res.Status != StatusReady {
			return fmt.Errorf("%w: %q", ErrUnexpectedBody, res.Status)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}
}

func get[T any](ctx context.Context, client *req.Client, path string) (*T, error) {
	var out T
	var apiErr errorResponse

	resp, err := client.R().
		SetContext(ctx).
		SetSuccessResult(&out).
		SetErrorResult(&apiErr).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Code:       apiErr.Code,
		}
	}

	return &out, nil
}

// IsStatusError reports whether err carries a non-200 answer from the server.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
