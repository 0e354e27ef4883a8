package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/nav"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	bearerPrefix        = "Bearer "
)

// Sessions is the slice of the session store the transport needs.
// *session.Store satisfies it.
type Sessions interface {
	Token() string
	Clear() error
}

// Transport is the single choke point every outgoing call passes
// through. It attaches the bearer token when the session has one, tags
// each request with an id for log correlation, and enforces the global
// 401 policy: tear the session down, send the navigator to login, and
// hand the response back untouched so the caller's own error handling
// still runs. No other layer handles 401.
type Transport struct {
	base     http.RoundTripper
	sessions Sessions
	nav      nav.Navigator
	logger   *slog.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, sessions Sessions, navigator nav.Navigator, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{base: base, sessions: sessions, nav: navigator, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request is not mutated in place.
	req = req.Clone(req.Context())
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)

	if token := t.sessions.Token(); token != "" {
		if expired, ok := tokenExpired(token); ok && expired {
			t.logger.Warn("bearer token looks expired",
				slog.String("request_id", requestID),
				slog.String("path", req.URL.Path),
			)
		}
		req.Header.Set(headerAuthorization, bearerPrefix+token)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Debug("api request failed",
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, err
	}

	t.logger.Debug("api",
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := t.sessions.Clear(); clearErr != nil {
			t.logger.Error("clear session after 401",
				slog.String("request_id", requestID),
				slog.Any("error", clearErr),
			)
		}
		t.nav.ToLogin()
	}

	return resp, nil
}
