package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
)

// ErrOutdated covers the gateway's optimistic-concurrency failures: a modify
// with a stale revision number (409) or against an order that no longer
// exists (400). The runner restarts the whole run when it sees this.
var ErrOutdated = errors.New("gateway: order outdated or gone")

const apiPrefix = "/api/2"

// Client is a thin typed wrapper over the exchange gateway REST API.
type Client struct {
	http   *http.Client
	host   string
	apiKey string
}

func NewClient(host, apiKey string) *Client {
	return &Client{
		http:   &http.Client{Timeout: 15 * time.Second},
		host:   host,
		apiKey: apiKey,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.host + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("api_key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rb, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrOutdated, resp.StatusCode, string(rb))
	case resp.StatusCode/100 != 2:
		return fmt.Errorf("gateway %s %s: http %d: %s", method, path, resp.StatusCode, string(rb))
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(rb, out); err != nil {
		return fmt.Errorf("unmarshal %s %s: %w", method, path, err)
	}
	return nil
}
