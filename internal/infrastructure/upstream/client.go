// Package upstream implements the HTTP client for the order backend.
// All catalog, lookup and order lifecycle calls go through here; the
// backend's wire casing (ItemId, CustName, GrpId) is mapped to the
// canonical entity shapes at this boundary and never leaks further in.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/majidkambarath/restaurant-pos/pkg/apperror"
)

// envelope is the backend's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the order backend over JSON/HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:4440/api"
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// get fetches path with optional query params and decodes the envelope's
// data field into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("upstream: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// post sends body as JSON to path and decodes the envelope's data field
// into out. A non-nil message pointer receives the backend's message.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}, message *string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("upstream: encode request %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("upstream: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.doWithMessage(req, out, message)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	return c.doWithMessage(req, out, nil)
}

func (c *Client) doWithMessage(req *http.Request, out interface{}, message *string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.ErrUpstream
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return apperror.ErrUpstream
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperror.NewUpstreamError(fmt.Sprintf("unexpected response from order backend (%d)", resp.StatusCode))
	}

	if resp.StatusCode >= 400 || (!env.Success && env.Message != "") {
		return apperror.NewUpstreamError(env.Message)
	}

	if message != nil {
		*message = env.Message
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("upstream: decode %s: %w", req.URL.Path, err)
		}
	}
	return nil
}
