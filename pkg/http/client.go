// Package http contains the outbound http client used to talk to third
// party services (literature search, local model runtimes).
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/healthfactguardian/verifier-node/internal/log"
)

const defaultTimeout = 10 * time.Second

// Client represents the default http client that can be used to send requests
// to third party services.
type Client struct {
	base http.Client
}

// NewClient returns a new instance of custom client
func NewClient(c http.Client) *Client {
	return &Client{
		base: c,
	}
}

// NewClientWithRetry returns a client with retry behavior and a bounded
// request timeout. A zero timeout falls back to the default.
func NewClientWithRetry(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	return NewClient(http.Client{
		Timeout: timeout,
		Transport: &retryablehttp.RoundTripper{
			Client: rc,
		},
	})
}

// Post sends a post request to url with the given json body.
func (c *Client) Post(ctx context.Context, url string, req []byte) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(req))
	if err != nil {
		return nil, err
	}

	addRequestIDToHeader(ctx, request)

	return executeRequest(ctx, c, request)
}

// Get sends a get request to url with requestID headers.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	addRequestIDToHeader(ctx, req)

	return executeRequest(ctx, c, req)
}

// addRequestIDToHeader adds headers to request
func addRequestIDToHeader(ctx context.Context, r *http.Request) {
	requestID := middleware.GetReqID(ctx)

	r.Header.Add("Content-Type", "application/json")
	r.Header.Add(middleware.RequestIDHeader, requestID)
}

// executeRequest contains common logic of request execution
func executeRequest(ctx context.Context, c *Client, r *http.Request) ([]byte, error) {
	resp, err := c.base.Do(r)
	if err != nil {
		return nil, err
	}

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.Error(ctx, "can not close body", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("http request failed with status %v, error: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
