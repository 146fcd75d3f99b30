package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/model"
)

const (
	referenceAction   = "getReferenceData"
	submitContentType = "text/plain;charset=utf-8"
)

var (
	// ErrEndpointRequired is returned by New for an empty endpoint.
	ErrEndpointRequired = errors.New("remote: endpoint is required")
	// ErrUnsuccessful reports a submission response without a success flag.
	ErrUnsuccessful = errors.New("remote: submission was not accepted")
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			clone := *client
			c.http = &clone
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests bounded only by
// their context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client is the endpoint client.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	logger   *zap.Logger
}

// New builds a client for endpoint.
func New(endpoint string, options ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("remote: parse endpoint: %w", err)
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string { return c.endpoint }

// FetchReferenceData loads the basin and province lists. A JSON null body
// yields empty lists, missing keys yield empty lists, and non-string entries
// are skipped. Every entry is stripped of markup.
func (c *Client) FetchReferenceData(ctx context.Context) (model.ReferenceData, error) {
	target, err := c.referenceURL()
	if err != nil {
		return model.ReferenceData{}, err
	}
	body, err := c.do(ctx, http.MethodGet, target, "", nil)
	if err != nil {
		return model.ReferenceData{}, fmt.Errorf("remote: fetch reference data: %w", err)
	}

	var raw *struct {
		Basins    []any `json:"basins"`
		Provinces []any `json:"provinces"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return model.ReferenceData{}, fmt.Errorf("remote: decode reference data: %w", err)
	}
	if raw == nil {
		c.logger.Warn("reference data response was null")
		return model.ReferenceData{}, nil
	}
	return model.ReferenceData{
		Basins:    cleanEntries(raw.Basins),
		Provinces: cleanEntries(raw.Provinces),
	}, nil
}

// Submit posts payload. It returns ErrUnsuccessful when the endpoint answers
// without a success indicator.
func (c *Client) Submit(ctx context.Context, payload model.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("remote: encode payload: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.endpoint, submitContentType, data)
	if err != nil {
		return fmt.Errorf("remote: submit: %w", err)
	}
	var resp any
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("remote: decode submit response: %w", err)
	}
	if !Succeeded(resp) {
		c.logger.Warn("submission response without success flag", zap.ByteString("body", truncate(body, 256)))
		return ErrUnsuccessful
	}
	return nil
}

// Succeeded applies the flexible success check: a truthy "success" member or
// a "result" member equal to "success".
func Succeeded(resp any) bool {
	obj, ok := resp.(map[string]any)
	if !ok {
		return false
	}
	if truthy(obj["success"]) {
		return true
	}
	result, _ := obj["result"].(string)
	return result == "success"
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func (c *Client) referenceURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("remote: parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("action", referenceAction)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, target, contentType string, payload []byte) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
