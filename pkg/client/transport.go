package client

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultAuthRoute is where the user is sent when the session expires.
const DefaultAuthRoute = "/auth"

// maxErrorBody caps how much of an error response is buffered for logging.
const maxErrorBody = 1 << 20 // 1 MB

// Navigator performs client-side navigation, e.g. to the auth screen.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route string) { f(route) }

// authTransport attaches the session token to outgoing requests and expires
// the session on 401 responses. The token is only sent to apiHost, so a
// redirect to another host never carries it.
type authTransport struct {
	base      http.RoundTripper
	apiHost   string
	source    oauth2.TokenSource
	store     TokenStore
	navigator Navigator
	authRoute string
	logger    *zap.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	if req.URL.Host == t.apiHost {
		t.authorize(req)
	} else {
		req.Header.Del("Authorization")
	}

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Error("request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	payload, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close() //nolint:errcheck // replaced below
	resp.Body = io.NopCloser(bytes.NewReader(payload))
	resp.ContentLength = int64(len(payload))

	fields = append(fields, zap.Int("status", resp.StatusCode), zap.ByteString("payload", payload))
	if readErr != nil {
		fields = append(fields, zap.NamedError("read_error", readErr))
	}
	t.logger.Error("request rejected", fields...)

	if resp.StatusCode == http.StatusUnauthorized && req.URL.Host == t.apiHost {
		t.expireSession()
	}
	return resp, nil
}

// authorize sets the bearer header from the token source.
func (t *authTransport) authorize(req *http.Request) {
	tok, err := t.source.Token()
	switch {
	case err == nil:
		tok.SetAuthHeader(req)
	case !errors.Is(err, errNoToken):
		// Unreadable storage is treated like no token.
		t.logger.Warn("read session token", zap.Error(err))
	}
}

// expireSession clears the stored token and navigates to the auth route.
func (t *authTransport) expireSession() {
	if err := t.store.Clear(); err != nil {
		t.logger.Warn("clear session token", zap.Error(err))
	}
	if t.navigator != nil {
		t.navigator.Navigate(t.authRoute)
	}
}
