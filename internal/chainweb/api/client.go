// Package api is a retrying client for the chainweb node HTTP API.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const maxErrorBody = 512

// Config configures a Client.
type Config struct {
	BaseURL           string
	Retry             RetryPolicy
	RequestsPerSecond int
	RequestTimeout    time.Duration
}

// Client issues chainweb API calls with retries and a shared rate limit.
type Client struct {
	baseURL string
	http    HTTPDoer
	stream  HTTPDoer
	policy  RetryPolicy
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// Response is a successful (2xx) reply with its body read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewClient builds a Client using net/http.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("chainweb base url is required")
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return newClient(
		cfg,
		&http.Client{Transport: transport, Timeout: cfg.RequestTimeout},
		&http.Client{Transport: transport},
		metrics,
		logger,
	), nil
}

func newClient(cfg Config, doer, stream HTTPDoer, metrics Metrics, logger *zap.Logger) *Client {
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    doer,
		stream:  stream,
		policy:  cfg.Retry,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "chainweb_api")),
	}
}

func (c *Client) endpoint(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

// Call sends a request, retrying transport failures and non-2xx statuses
// according to the retry policy. The returned error of an exhausted policy is
// the last attempt's error, a *StatusError when the node answered.
func (c *Client) Call(ctx context.Context, operation, method, url string, body []byte, header http.Header) (resp Response, err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, start)
	}()

	attempt := func() (Response, error) {
		c.limiter.Take()

		var reader io.Reader = http.NoBody
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return Response{}, backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		for key, values := range header {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}

		res, err := c.http.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Response{}, backoff.Permanent(ctxErr)
			}
			return Response{}, fmt.Errorf("%s %s: %w", method, url, err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return Response{}, fmt.Errorf("%s %s: read body: %w", method, url, err)
		}
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return Response{}, &StatusError{
				Method:     method,
				URL:        url,
				StatusCode: res.StatusCode,
				Body:       truncate(data, maxErrorBody),
			}
		}
		return Response{StatusCode: res.StatusCode, Header: res.Header, Body: data}, nil
	}

	notify := func(err error, wait time.Duration) {
		c.metrics.ObserveRetry(operation)
		c.logger.Warn("chainweb request failed, retrying",
			zap.String("operation", operation),
			zap.String("url", url),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	return backoff.RetryNotifyWithData(attempt, c.policy.BackOff(ctx), notify)
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
