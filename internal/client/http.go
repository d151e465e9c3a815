package client

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

	"github.com/fxamacker/cbor/v2"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/health"
)

// HTTPClient makes REST calls to folio-server.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a client targeting the given base URL (e.g. "http://127.0.0.1:8080").
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Get decodes the JSON reply of GET path into out. params may be nil.
func (c *HTTPClient) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// GetTest fetches the API smoke-test endpoint.
func (c *HTTPClient) GetTest(ctx context.Context) (*content.TestInfo, error) {
	var info content.TestInfo
	if err := c.Get(ctx, content.EndpointTest, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) GetBlog(ctx context.Context) ([]content.PostSummary, error) {
	var list content.BlogList
	if err := c.Get(ctx, content.EndpointBlog, nil, &list); err != nil {
		return nil, err
	}
	return list.Posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, slug string) (*content.Post, error) {
	var resp content.Response[content.Post]
	if err := c.Get(ctx, content.BlogPostEndpoint(slug), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("GET %s: empty response", content.BlogPostEndpoint(slug))
	}
	return resp.Data, nil
}

// GetContent fetches the full content, asking for CBOR.
func (c *HTTPClient) GetContent(ctx context.Context) (*content.Snapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet, content.EndpointContent, nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/cbor, application/json;q=0.5")

	var snap content.Snapshot
	err = c.send(req, func(resp *http.Response) error {
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/cbor") {
			return cbor.NewDecoder(resp.Body).Decode(&snap)
		}
		return json.NewDecoder(resp.Body).Decode(&snap)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *HTTPClient) GetHealth(ctx context.Context) (*health.Report, error) {
	var r health.Report
	if err := c.Get(ctx, content.EndpointHealth, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Reload asks the server to re-read its content file and returns the new
// version.
func (c *HTTPClient) Reload(ctx context.Context) (uint64, error) {
	var resp content.Response[content.Snapshot]
	if err := c.Post(ctx, content.EndpointReload, nil, &resp); err != nil {
		return 0, err
	}
	if resp.Data == nil {
		return 0, fmt.Errorf("POST %s: empty response", content.EndpointReload)
	}
	return resp.Data.Version, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	return c.send(req, func(resp *http.Response) error {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, params url.Values, body interface{}) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)
	return req, nil
}

func (c *HTTPClient) send(req *http.Request, decode func(*http.Response) error) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &StatusError{
			Method:  req.Method,
			Path:    req.URL.Path,
			Code:    resp.StatusCode,
			Message: errorMessage(data),
		}
	}
	if err := decode(resp); err != nil {
		return fmt.Errorf("%s %s: decode: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var env content.Response[json.RawMessage]
	if json.Unmarshal(body, &env) == nil && env.Error != "" {
		return env.Error
	}
	return strings.TrimSpace(string(body))
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
