package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/naveenspark/athleten/pkg/domain"
)

// DefaultFormPath is the endpoint search forms are posted to.
const DefaultFormPath = "/users"

// Client is the athlete API client. Every request goes through the auth
// transport, so callers never handle the token themselves.
type Client struct {
	baseURL    string
	formPath   string
	tokens     TokenStore
	httpClient *http.Client
}

type options struct {
	navigator Navigator
	logger    *zap.Logger
	timeout   time.Duration
	authRoute string
	formPath  string
	base      http.RoundTripper
}

// Option configures a Client.
type Option func(*options)

// WithNavigator sets who is told to navigate on session expiry.
func WithNavigator(n Navigator) Option {
	return func(o *options) { o.navigator = n }
}

// WithLogger sets the logger used for failed requests.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithAuthRoute overrides DefaultAuthRoute.
func WithAuthRoute(route string) Option {
	return func(o *options) { o.authRoute = route }
}

// WithFormPath overrides DefaultFormPath.
func WithFormPath(path string) Option {
	return func(o *options) { o.formPath = path }
}

// WithBaseTransport sets the transport wrapped by the auth layer.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// New creates a new API client reading its session token from tokens.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	o := options{
		logger:    zap.NewNop(),
		timeout:   30 * time.Second,
		authRoute: DefaultAuthRoute,
		formPath:  DefaultFormPath,
		base:      http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore("")
	}
	var apiHost string
	if u, err := url.Parse(baseURL); err == nil {
		apiHost = u.Host
	}
	return &Client{
		baseURL:  baseURL,
		formPath: o.formPath,
		tokens:   tokens,
		httpClient: &http.Client{
			Timeout: o.timeout,
			Transport: &authTransport{
				base:      o.base,
				apiHost:   apiHost,
				source:    storeTokenSource{store: tokens},
				store:     tokens,
				navigator: o.navigator,
				authRoute: o.authRoute,
				logger:    o.logger,
			},
		},
	}
}

// Tokens returns the token store the client reads from.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// formEnvelope wraps form data the way the backend expects it.
type formEnvelope struct {
	FormData domain.SearchForm `json:"formData"`
}

// PostFormData sends the search form to the form endpoint. The response body
// is ignored.
func (c *Client) PostFormData(ctx context.Context, form domain.SearchForm) error {
	if err := c.post(ctx, c.formPath, formEnvelope{FormData: form}, nil); err != nil {
		return fmt.Errorf("client.PostFormData: %w", err)
	}
	return nil
}

// SearchAthletes posts the search form and returns matching previews.
func (c *Client) SearchAthletes(ctx context.Context, form domain.SearchForm) ([]domain.AthletePreview, error) {
	var previews []domain.AthletePreview
	if err := c.post(ctx, c.formPath, formEnvelope{FormData: form}, &previews); err != nil {
		return nil, fmt.Errorf("client.SearchAthletes: %w", err)
	}
	return previews, nil
}

// GetAthlete fetches a full athlete record by ID.
func (c *Client) GetAthlete(ctx context.Context, id int64) (*domain.Athlete, error) {
	var a domain.Athlete
	if err := c.get(ctx, "/athletes/"+url.PathEscape(strconv.FormatInt(id, 10)), &a); err != nil {
		return nil, fmt.Errorf("client.GetAthlete: %w", err)
	}
	return &a, nil
}

// ExchangeLoginCode trades a one-time login code for a session token.
func (c *Client) ExchangeLoginCode(ctx context.Context, code string) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/auth/cli-exchange", map[string]string{"code": code}, &result); err != nil {
		return "", fmt.Errorf("client.ExchangeLoginCode: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("client.ExchangeLoginCode: empty token in response")
	}
	return result.Token, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
