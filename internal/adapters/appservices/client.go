package appservices

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

	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

const (
	clientAPIPath    = "/api/client/v2.0"
	maxResponseBytes = 16 << 20
)

// Client talks to the App Services client API and implements
// ports.AppFactory. User tokens are kept in Tokens so a later process can
// pick the session up again.
type Client struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Tokens         ports.KeyValueStore
	Logger         *zap.Logger
}

var _ ports.AppFactory = (*Client)(nil)

func NewClient(tokens ports.KeyValueStore, httpClient *http.Client, requestTimeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		HTTPClient:     httpClient,
		RequestTimeout: requestTimeout,
		Tokens:         tokens,
		Logger:         logger,
	}
}

func (c *Client) NewApp(appID string, baseURL string) (ports.App, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil, errors.New("app id is required")
	}
	if c.Tokens == nil {
		return nil, errors.New("token store is required")
	}

	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &App{client: c, id: appID, baseURL: normalized}, nil
}

type request struct {
	method string
	url    string
	bearer string
	body   any
}

// do sends one JSON request and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, req.url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.bearer)
	}

	c.logger().Debug("app services request", zap.String("method", req.method), zap.String("url", req.url))

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeServiceError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return data, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", errors.New("base url is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("base url host is required")
	}

	return trimmed, nil
}

func endpoint(host string, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	return strings.TrimRight(host, "/") + clientAPIPath + "/" + strings.Join(escaped, "/")
}
