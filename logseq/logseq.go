// Package logseq talks to a running Logseq instance over its local HTTP
// API. All API calls are POSTs of a {"method", "args"} envelope
// authorized with a bearer token.
package logseq

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/notegraph/notegraph"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is where the Logseq desktop app serves its HTTP API.
const DefaultBaseURL = "http://127.0.0.1:12315"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// Default rate limit for API calls. The desktop app serves requests
// from the UI process, so bursts of block deletions can make it
// stutter.
const (
	DefaultRateLimit = 10
	DefaultBurst     = 10
)

// Client is a low-level Logseq API client. Most callers want the
// notegraph.PageService methods layered on top of it.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit caps API calls at rps requests per second with the
// given burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a client for the Logseq API at baseURL. An empty
// baseURL means DefaultBaseURL.
func NewClient(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiRequest is the envelope the Logseq HTTP server expects.
type apiRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// call performs one API request and decodes the JSON response into out.
// A nil out discards the response. A JSON null response leaves out
// untouched, so callers can detect missing entities by their zero
// value.
func (c *Client) call(ctx context.Context, method string, args []any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if args == nil {
		args = []any{}
	}
	payload, err := json.Marshal(apiRequest{Method: method, Args: args})
	if err != nil {
		return notegraph.Errorf(notegraph.EINTERNAL, "encode %s request: %v", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api", bytes.NewReader(payload))
	if err != nil {
		return notegraph.Errorf(notegraph.EINTERNAL, "build %s request: %v", method, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return notegraph.Errorf(notegraph.EUNAVAILABLE, "logseq api unreachable: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return notegraph.Errorf(notegraph.EUNAVAILABLE, "read %s response: %v", method, err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return notegraph.Errorf(notegraph.EUNAVAILABLE, "logseq api rejected token: HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return notegraph.Errorf(notegraph.EUNAVAILABLE, "logseq api %s: HTTP %d", method, resp.StatusCode)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return notegraph.Errorf(notegraph.EINTERNAL, "decode %s response: %v", method, err)
	}
	return nil
}

// Raw editor API wrappers. Method names follow the Logseq plugin API.

func (c *Client) createPage(ctx context.Context, title string) (*notegraph.Page, error) {
	var page notegraph.Page
	err := c.call(ctx, "logseq.Editor.createPage",
		[]any{title, map[string]any{}, map[string]any{"createFirstBlock": true}}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) getAllPages(ctx context.Context) ([]*notegraph.Page, error) {
	var pages []*notegraph.Page
	if err := c.call(ctx, "logseq.Editor.getAllPages", nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) getPage(ctx context.Context, name string) (*notegraph.Page, error) {
	var page notegraph.Page
	if err := c.call(ctx, "logseq.Editor.getPage", []any{name}, &page); err != nil {
		return nil, err
	}
	if page.UUID == "" && page.Name == "" {
		return nil, nil
	}
	return &page, nil
}

func (c *Client) getPageBlocksTree(ctx context.Context, name string) ([]*notegraph.RemoteBlock, error) {
	var blocks []*notegraph.RemoteBlock
	if err := c.call(ctx, "logseq.Editor.getPageBlocksTree", []any{name}, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *Client) deletePage(ctx context.Context, name string) error {
	return c.call(ctx, "logseq.Editor.deletePage", []any{name}, nil)
}

func (c *Client) removeBlock(ctx context.Context, uuid string) error {
	return c.call(ctx, "logseq.Editor.removeBlock", []any{uuid}, nil)
}

func (c *Client) insertBatchBlock(ctx context.Context, anchor string, blocks []*notegraph.BatchBlock, sibling bool) error {
	return c.call(ctx, "logseq.Editor.insertBatchBlock",
		[]any{anchor, blocks, map[string]any{"sibling": sibling}}, nil)
}

func (c *Client) appendBlockInPage(ctx context.Context, name, content string, properties map[string]any) (*notegraph.RemoteBlock, error) {
	args := []any{name, content}
	if len(properties) > 0 {
		args = append(args, map[string]any{"properties": properties})
	}

	var block notegraph.RemoteBlock
	if err := c.call(ctx, "logseq.Editor.appendBlockInPage", args, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (c *Client) upsertBlockProperty(ctx context.Context, uuid, key string, value any) error {
	return c.call(ctx, "logseq.Editor.upsertBlockProperty", []any{uuid, key, value}, nil)
}

func (c *Client) search(ctx context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
	options := map[string]any{}
	if opts.Limit > 0 {
		options["limit"] = opts.Limit
	}

	var result notegraph.SearchResult
	if err := c.call(ctx, "logseq.search", []any{query, options}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
