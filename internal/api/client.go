// Package api is the client for the Taskdeck REST backend. Every call
// goes through one transport chain that owns bearer-token attachment
// and the global 401 teardown policy; services are thin wrappers that
// build requests and decode the backend's envelopes.
package api

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

	"github.com/cenkalti/backoff"
	"github.com/taskdeck/taskdeck/internal/domain/model"
	"github.com/taskdeck/taskdeck/internal/nav"
)

const (
	defaultTimeout         = 15 * time.Second
	defaultRetryMaxElapsed = 5 * time.Second
)

// Options groups dependencies for Client.
type Options struct {
	// BaseURL is the backend root, e.g. "https://taskdeck.example.com/api".
	BaseURL string

	// Sessions supplies the bearer token and absorbs 401 teardowns.
	Sessions Sessions

	// Navigator receives the forced redirect to login on 401.
	Navigator nav.Navigator

	// HTTPClient overrides the underlying client; its transport is
	// wrapped, the original client is not mutated. Optional.
	HTTPClient *http.Client

	// Timeout applies when HTTPClient is not supplied.
	Timeout time.Duration

	// RetryMaxElapsed bounds backoff retries of network-level failures
	// on GET requests. Zero means the default; negative disables.
	RetryMaxElapsed time.Duration

	Logger *slog.Logger
}

// Client issues requests against the backend.
type Client struct {
	baseURL         *url.URL
	http            *http.Client
	logger          *slog.Logger
	retryMaxElapsed time.Duration
}

// NewClient constructs a Client from options. Callers must provide a
// base URL, a session source, and a navigator.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("api base URL is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("navigator is required")
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retryMaxElapsed := opts.RetryMaxElapsed
	switch {
	case retryMaxElapsed == 0:
		retryMaxElapsed = defaultRetryMaxElapsed
	case retryMaxElapsed < 0:
		retryMaxElapsed = 0
	}

	var inner http.RoundTripper
	hc := &http.Client{Timeout: timeout}
	if opts.HTTPClient != nil {
		*hc = *opts.HTTPClient
		inner = opts.HTTPClient.Transport
	}
	hc.Transport = NewTransport(inner, opts.Sessions, opts.Navigator, logger)

	return &Client{
		baseURL:         base,
		http:            hc,
		logger:          logger,
		retryMaxElapsed: retryMaxElapsed,
	}, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService { return &AuthService{c: c} }

// Projects returns the project service.
func (c *Client) Projects() *ProjectService { return &ProjectService{c: c} }

// Tasks returns the task service.
func (c *Client) Tasks() *TaskService { return &TaskService{c: c} }

// Users returns the admin user service.
func (c *Client) Users() *UserService { return &UserService{c: c} }

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// send dispatches the request. Network-level failures on GETs are
// retried with exponential backoff; HTTP responses of any status are
// never retried, so the 401 policy fires exactly once per outcome.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || c.retryMaxElapsed <= 0 {
		return c.http.Do(req)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = time.Second
	bo.MaxElapsedTime = c.retryMaxElapsed

	var resp *http.Response
	err := backoff.RetryNotify(func() error {
		var doErr error
		resp, doErr = c.http.Do(req)
		return doErr
	}, backoff.WithContext(bo, req.Context()), func(err error, delay time.Duration) {
		c.logger.Debug("retrying request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Path),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// doJSON performs a JSON exchange. The transport-level status and the
// application-level discriminator are decoded separately: a non-2xx
// status yields a StatusError, a 2xx body carrying status_type "fail"
// yields an AppError, and only then is the payload decoded into out.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	respBody, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: failMessage(respBody)}
	}

	var probe model.StatusMessage
	if unmarshalErr := json.Unmarshal(respBody, &probe); unmarshalErr == nil && probe.Failed() {
		return &AppError{Message: probe.Message}
	}

	if out != nil {
		if unmarshalErr := json.Unmarshal(respBody, out); unmarshalErr != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, unmarshalErr)
		}
	}
	return nil
}

// doMessage performs a mutation and decodes the status envelope.
func (c *Client) doMessage(ctx context.Context, method, path string, query url.Values, body any) (model.StatusMessage, error) {
	var msg model.StatusMessage
	if err := c.doJSON(ctx, method, path, query, body, &msg); err != nil {
		return model.StatusMessage{}, err
	}
	return msg, nil
}

// download performs a GET for raw content. The caller owns the returned
// body.
func (c *Client) download(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := readAndClose(resp)
		if readErr != nil {
			return nil, fmt.Errorf("GET %s: %w", path, readErr)
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: failMessage(respBody)}
	}
	return resp.Body, nil
}

// failMessage extracts a response_message from an error body, if the
// body is the status envelope.
func failMessage(body []byte) string {
	var msg model.StatusMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	return msg.Message
}

func readAndClose(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if closeErr := resp.Body.Close(); closeErr != nil {
			return nil, errors.Join(
				fmt.Errorf("read response body: %w", err),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if err := resp.Body.Close(); err != nil {
		return nil, fmt.Errorf("close response body: %w", err)
	}
	return data, nil
}
