// Package api is the console's only door to the fleet backend. Every call goes through
// Client.do so that failures reach callers in one normalized shape (*Error).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"fleet_admin/internal/requestid"
)

// Client talks to the REST backend rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

type Option func(*Client)

// WithHTTPClient replaces the default transport. The default client has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends body (if any) as JSON and decodes a 2xx response into out (if any).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return c.normalize(method, url, 0, nil, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		// Not wrapped: a malformed base URL must classify as a client failure.
		return c.normalize(method, url, 0, nil, fmt.Errorf("solicitud inválida: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.normalize(method, url, 0, nil, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.normalize(method, url, 0, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalize(method, url, resp.StatusCode, payload, nil)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return c.normalize(method, url, 0, nil, &decodeError{err: err})
	}
	return nil
}
