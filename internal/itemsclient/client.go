// Package itemsclient is the dashboard's gateway to the item backend. Reads degrade to
// demo data and writes may be reported as demo successes when the backend is down.
package itemsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/metrics"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

const (
	itemsPath                   = "items/"
	requestIDHeader             = "X-Request-Id"
	responseBodyReadLimit int64 = 1024

	opList   = "list"
	opCreate = "create"
	opDelete = "delete"
)

var (
	errBaseURLRequired = errors.New("items api base url is required")
	errEncodeRequest   = errors.New("encode request body")
)

// Client talks to GET|POST|DELETE {base}/items/. Each call makes exactly one attempt.
type Client struct {
	httpClient        *http.Client
	timeout           time.Duration
	baseURL           string
	demoModeOnFailure bool
	logg              *logger.Logger
	metrics           *metrics.ItemsClientMetrics
}

// ListResult carries the items and whether they came from the demo dataset.
type ListResult struct {
	Items    []types.Item
	Fallback bool
	// Cause is the backend failure behind a fallback.
	Cause error
}

// WriteResult describes a create or delete outcome.
type WriteResult struct {
	// Item is the created record when the backend echoed it.
	Item *types.Item
	// Demo is set when a backend failure was masked by the demo-mode policy.
	Demo bool
	// Existed is false when a delete targeted an id the backend no longer had.
	Existed bool
	Cause   error
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds each request, whichever HTTP client is in use. Zero keeps the
// default of no client-side timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithDemoModeOnFailure toggles masking of failed writes.
func WithDemoModeOnFailure(enabled bool) Option {
	return func(c *Client) {
		c.demoModeOnFailure = enabled
	}
}

func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		if logg != nil {
			c.logg = logg
		}
	}
}

func WithMetrics(m *metrics.ItemsClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the facade for the given base URL (e.g. http://127.0.0.1:8001/api).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		httpClient:        &http.Client{},
		baseURL:           trimmed,
		demoModeOnFailure: true,
		logg:              logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.timeout > 0 {
		clone := *client.httpClient
		clone.Timeout = client.timeout
		client.httpClient = &clone
	}
	return client, nil
}

// BaseURL returns the resolved backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every item. Any failure yields the demo dataset with Fallback set; it never errors.
func (c *Client) List(ctx context.Context) ListResult {
	var items []types.Item
	if err := c.do(ctx, opList, http.MethodGet, nil, &items); err != nil {
		c.metrics.IncFallback(opList)
		c.logg.Warn(c.logg.WithFields(ctx, map[string]any{"event": "items.fallback", "error": err.Error()}),
			"item backend unavailable; serving demo data")
		return ListResult{Items: DemoItems(), Fallback: true, Cause: err}
	}
	if items == nil {
		items = []types.Item{}
	}
	return ListResult{Items: items}
}

// Create submits a new item. Failures are masked as Demo when the policy is enabled.
func (c *Client) Create(ctx context.Context, req types.CreateItemRequest) (WriteResult, error) {
	var created json.RawMessage
	if err := c.do(ctx, opCreate, http.MethodPost, req, &created); err != nil {
		return c.maskWrite(ctx, opCreate, err)
	}
	item, decodeErr := decodeCreated(created)
	if decodeErr != nil {
		// the write landed; only the echo is unreadable
		c.logg.Warn(c.logg.WithField(ctx, "error", decodeErr.Error()), "could not decode created item")
	}
	return WriteResult{Item: item, Existed: true}, nil
}

// Delete removes an item by id. A 404 is an idempotent success with Existed=false.
func (c *Client) Delete(ctx context.Context, id int64) (WriteResult, error) {
	err := c.do(ctx, opDelete, http.MethodDelete, types.DeleteItemRequest{ID: id}, nil)
	if err == nil {
		return WriteResult{Existed: true}, nil
	}
	if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		c.logg.Info(c.logg.WithItemID(ctx, id), "item already absent; delete is a no-op")
		return WriteResult{Existed: false}, nil
	}
	return c.maskWrite(c.logg.WithItemID(ctx, id), opDelete, err)
}

// maskWrite applies the demo-mode policy. Local encoding failures never reached the
// backend and are always returned.
func (c *Client) maskWrite(ctx context.Context, op string, err error) (WriteResult, error) {
	if !c.demoModeOnFailure || errors.Is(err, errEncodeRequest) {
		return WriteResult{}, err
	}
	c.metrics.IncFallback(op)
	c.logg.Warn(c.logg.WithFields(ctx, map[string]any{"event": "items.demo_write", "operation": op, "error": err.Error()}),
		"item backend write failed; reporting demo success")
	return WriteResult{Demo: true, Cause: err}, nil
}

// do performs one request. Non-2xx responses become typed errors: 404 maps to
// CodeNotFound, everything else to CodeDependency.
func (c *Client) do(ctx context.Context, op, method string, body any, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, fmt.Errorf("%w: %w", errEncodeRequest, err), "marshal "+op+" request")
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.buildURL(itemsPath), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build "+op+" request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		httpReq.Header.Set(requestIDHeader, reqID)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRequest(op, "error", time.Since(started))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute "+op+" request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		c.metrics.ObserveRequest(op, "not_found", time.Since(started))
		return unexpectedStatus(resp.StatusCode, resp.Body, op+" request failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveRequest(op, "error", time.Since(started))
		return unexpectedStatus(resp.StatusCode, resp.Body, op+" request failed")
	}
	c.metrics.ObserveRequest(op, "ok", time.Since(started))

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode "+op+" response")
	}
	return nil
}

func unexpectedStatus(status int, body io.Reader, message string) error {
	var msg []byte
	if body != nil {
		msg, _ = io.ReadAll(io.LimitReader(body, responseBodyReadLimit))
	}
	code := pkgerrors.CodeDependency
	if status == http.StatusNotFound {
		code = pkgerrors.CodeNotFound
	}
	return pkgerrors.Wrap(code, fmt.Errorf("status %d: %s", status, strings.TrimSpace(string(msg))), message)
}

// decodeCreated accepts either the created object or a one-element array of it.
func decodeCreated(raw json.RawMessage) (*types.Item, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var items []types.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, nil
		}
		return &items[0], nil
	}
	var item types.Item
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) buildURL(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
}
