package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/client/token"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

const defaultTimeout = 15 * time.Second

// Client talks to the ContactKeeper REST API. All authenticated calls go
// through the Pipeline; only the refresh call itself uses the bare transport.
type Client struct {
	baseURL string
	base    Doer
	pipe    *Pipeline
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api/v1".
	BaseURL string
	// Tokens is the credential store shared with the session manager.
	Tokens token.Store
	// HTTPClient overrides the transport. Defaults to an *http.Client with
	// a 15s timeout.
	HTTPClient Doer
}

// New builds a Client and its authenticated pipeline.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if opts.Tokens == nil {
		return nil, fmt.Errorf("api: token store is required")
	}

	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		base:    base,
	}
	c.pipe = NewPipeline(base, opts.Tokens, c.refreshCredential)
	return c, nil
}

// SetSessionExpiredHandler forwards the navigation escalation hook to the
// pipeline. The session manager registers itself here.
func (c *Client) SetSessionExpiredHandler(fn func()) {
	c.pipe.SetSessionExpiredHandler(fn)
}

// refreshCredential asks the dedicated refresh endpoint for a new token,
// presenting the current one. Runs on the bare transport.
func (c *Client) refreshCredential(ctx context.Context, current string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/refresh", nil, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+current)

	resp, err := c.base.Do(req)
	if err != nil {
		return "", err
	}
	resp, err = normalize(resp)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("refresh response carried no token")
	}
	return out.AccessToken, nil
}

// newRequest builds a JSON API request. Bodies are buffered so the pipeline
// can resend them through GetBody.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req through the pipeline and decodes the JSON success body into
// out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.pipe.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Ping probes backend liveness via the unauthenticated health endpoint.
// Returns ErrUnavailable when the server cannot be reached.
func (c *Client) Ping(ctx context.Context) error {
	health := strings.TrimSuffix(c.baseURL, "/api/v1") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, health, nil)
	if err != nil {
		return err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	discard(resp)
	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}
