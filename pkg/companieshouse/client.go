// Package companieshouse is a thin client for the Companies House REST API.
// Every method issues a single GET request and returns the raw response;
// callers inspect the status code and decode the body themselves.
package companieshouse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/regsense/companieshouse-go/pkg/httpclient"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Config carries everything the client needs. Host and APIKey are required;
// the rest default sensibly when zero.
type Config struct {
	// Host is the base URL of the Companies House API, without a trailing slash.
	Host string
	// APIKey is sent verbatim as the Authorization header on every request.
	APIKey string
	// Timeout applies to the default HTTP client only. Zero means 15s.
	Timeout time.Duration
	// HTTPClient overrides the default resty-backed transport when set.
	HTTPClient httpclient.Client
	// Logger, when set, logs each outgoing request at debug level.
	Logger *zap.SugaredLogger
}

// Client issues requests against the Companies House API. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	host   string
	apiKey string
	http   httpclient.Client
	log    *zap.SugaredLogger
}

// New builds a Client from cfg. It performs no network I/O and fails if the
// host or API key is missing.
func New(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, errors.New("companies house host is not set")
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("companies house api key is not set")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = httpclient.NewRestyClient(timeout)
	}

	return &Client{
		host:   host,
		apiKey: apiKey,
		http:   hc,
		log:    cfg.Logger,
	}, nil
}

// Response is the transport-agnostic result of a single API call. Non-2xx
// statuses are ordinary responses, not errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// get joins the non-empty path segments onto the host, attaches the
// Authorization header and query values, and issues one GET request.
func (c *Client) get(ctx context.Context, params url.Values, segments ...string) (*Response, error) {
	var b strings.Builder
	b.WriteString(c.host)
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(s)
	}
	reqURL := b.String()

	if c.log != nil {
		c.log.Debugw("companies house request", "url", reqURL, "params", params.Encode())
	}

	resp, err := c.http.Get(ctx, reqURL, map[string]string{"Authorization": c.apiKey}, params)
	if err != nil {
		return nil, fmt.Errorf("companies house request: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
