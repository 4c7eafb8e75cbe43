package brewfather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"brewfather-mcp/config"
)

// maxErrorBody caps how much of a failed response is kept on a TransportError.
const maxErrorBody = 512

// Client talks to the Brewfather v2 API. It keeps no per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL  string
	userID   string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
	debugDir string
	logger   logrus.FieldLogger
	metrics  *Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithDebugDir enables dumping every GET response body into dir.
func WithDebugDir(dir string) Option {
	return func(c *Client) { c.debugDir = dir }
}

// New creates a client from the API and debug sections of cfg.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg.API.UserID == "" || cfg.API.APIKey == "" {
		return nil, config.ErrMissingCredentials
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.API.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.API.HTTPProxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.API.HTTPProxy, err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		userID:  cfg.API.UserID,
		apiKey:  cfg.API.APIKey,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.API.Timeout,
		},
		logger: logrus.StandardLogger(),
	}
	if c.baseURL == "" {
		c.baseURL = config.DefaultBaseURL
	}
	if cfg.API.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.API.RequestsPerSecond), cfg.API.Burst)
	}
	if cfg.Debug.Enabled {
		c.debugDir = cfg.Debug.Dir
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get fetches endpoint with an optional encoded query string and returns the raw body.
func (c *Client) get(ctx context.Context, endpoint, query string) ([]byte, error) {
	body, err := c.do(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return nil, err
	}
	if c.debugDir != "" {
		c.dumpResponse(endpoint, body)
	}
	return body, nil
}

func (c *Client) patch(ctx context.Context, endpoint string, payload any) error {
	_, err := c.do(ctx, http.MethodPatch, endpoint, "", payload)
	return err
}

// do performs a single request. Any non-2xx status is a TransportError.
func (c *Client) do(ctx context.Context, method, endpoint, query string, payload any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
		}
	}

	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if query != "" {
		target += "?" + query
	}

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.userID, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.observeRequest(method, 0)
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	c.metrics.observeRequest(method, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &TransportError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Body: snippet}
	}

	c.logger.WithFields(logrus.Fields{"method": method, "endpoint": endpoint, "status": resp.StatusCode}).Debug("brewfather request completed")
	return body, nil
}

// dumpResponse writes body to the debug directory. Failures are logged only.
func (c *Client) dumpResponse(endpoint string, body []byte) {
	if err := os.MkdirAll(c.debugDir, 0o755); err != nil {
		c.logger.WithError(err).WithField("dir", c.debugDir).Warn("could not create debug directory")
		return
	}
	path := filepath.Join(c.debugDir, DebugFileName(endpoint))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("could not write debug response")
	}
}

// DebugFileName maps an endpoint path to the file its responses are dumped to.
func DebugFileName(endpoint string) string {
	name, _, _ := strings.Cut(strings.TrimLeft(endpoint, "/"), "?")
	name = strings.NewReplacer("/", "_", ":", "_").Replace(name)
	return name + ".json"
}
