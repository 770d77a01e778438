// Package backend is the HTTP adapter for the external barbershop backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"

	apperrors "github.com/barberpro/dashboard/internal/errors"
	"github.com/barberpro/dashboard/internal/observability/metrics"
	"github.com/barberpro/dashboard/internal/observability/statsd"
	"github.com/barberpro/dashboard/internal/ports"
)

const maxResponseBytes = 1 << 20

var _ ports.BackendAPI = (*Client)(nil)

// Options configures a backend Client.
type Options struct {
	BaseURL string
	// Timeout bounds each call; zero leaves the caller's context in charge.
	Timeout time.Duration
	// PlanStatusExpr is a JMESPath expression locating the subscription status in user payloads.
	PlanStatusExpr string
	// HTTPClient supplies the base transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	Metrics    statsd.Sink
	Logger     *slog.Logger
}

// Client calls the backend API. Authenticated calls carry the session credential
// as a bearer token through an oauth2 static token transport.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	planExpr   string
	base       http.RoundTripper
	metrics    statsd.Sink
	logger     *slog.Logger
	anonClient *http.Client
}

// New validates opts and returns a Client.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", opts.BaseURL)
	}

	expr := strings.TrimSpace(opts.PlanStatusExpr)
	if expr != "" {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("compile plan status expression: %w", err)
		}
	}

	base := http.DefaultTransport
	if opts.HTTPClient != nil && opts.HTTPClient.Transport != nil {
		base = opts.HTTPClient.Transport
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    u,
		timeout:    opts.Timeout,
		planExpr:   expr,
		base:       base,
		metrics:    opts.Metrics,
		logger:     logger.With("component", "backend"),
		anonClient: &http.Client{Transport: base, CheckRedirect: noRedirects},
	}, nil
}

// noRedirects surfaces backend redirects as non-2xx responses instead of following them.
func noRedirects(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

// call describes one backend request.
type call struct {
	endpoint   string // metric tag
	method     string
	path       string
	query      url.Values
	credential string
	body       any
	out        any
}

func (c *Client) httpClient(credential string) *http.Client {
	if credential == "" {
		return c.anonClient
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: credential, TokenType: "Bearer"}),
			Base:   c.base,
		},
		CheckRedirect: noRedirects,
	}
}

// do performs the call, decoding a 2xx JSON body into in.out when set.
func (c *Client) do(ctx context.Context, in call) (err error) {
	start := time.Now()
	defer func() {
		metrics.EmitBackendRequest(c.metrics, metrics.BackendRequestMetric{
			Endpoint: in.endpoint,
			Duration: time.Since(start),
			Err:      err,
		})
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, in)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build backend request")
	}

	resp, err := c.httpClient(in.credential).Do(req)
	if err != nil {
		return transportError(ctx, in.endpoint, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(ctx, in.endpoint, err)
	}

	if appErr := apperrors.FromStatus(resp.StatusCode, errorMessage(body)); appErr != nil {
		return appErr
	}

	if in.out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, in.out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s response", in.endpoint)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, in call) (*http.Request, error) {
	u := c.baseURL.JoinPath(in.path)
	if len(in.query) > 0 {
		u.RawQuery = in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		buf, err := json.Marshal(in.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func transportError(ctx context.Context, endpoint string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Wrapf(err, apperrors.ErrCodeTimeout, "backend %s timed out", endpoint)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrapf(err, apperrors.ErrCodeCanceled, "backend %s canceled", endpoint)
	default:
		return apperrors.Upstream(err, "backend "+endpoint+" unreachable")
	}
}

// errorMessage extracts a human readable message from a backend error body.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
