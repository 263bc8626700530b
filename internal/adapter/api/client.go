// Package api is the JSON/HTTP client of the remote banking API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// DefaultBaseURL is the API root used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Recorder observes each outbound call.
type Recorder interface {
	ObserveAPICall(endpoint, status string, elapsed time.Duration)
}

// TokenSource returns the current bearer credential, or "" when anonymous.
type TokenSource func() string

// Client implements usecase.API over HTTP.
type Client struct {
	baseURL  string
	http     *http.Client
	token    TokenSource
	logger   zerolog.Logger
	recorder Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger.With().Str("component", "api").Logger() }
}

// WithRecorder enables per-endpoint metrics.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a client for baseURL. token is read on every request.
func NewClient(baseURL string, token TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if token == nil {
		token = func() string { return "" }
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// call is one request to the API.
type call struct {
	method   string
	path     string
	endpoint string // metric label, path template
	query    url.Values
	body     any
	out      any       // decoded from a 2xx JSON body when set
	sink     io.Writer // receives the raw 2xx body when set
}

// do performs c and maps failures: no response becomes *domain.NetworkError,
// a non-2xx status becomes *domain.APIError.
func (c *Client) do(ctx context.Context, rc call) (int64, error) {
	target := c.baseURL + rc.path
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}

	var body io.Reader
	if rc.body != nil {
		payload, err := json.Marshal(rc.body)
		if err != nil {
			return 0, fmt.Errorf("encode %s: %w", rc.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, target, body)
	if err != nil {
		return 0, fmt.Errorf("build %s: %w", rc.endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(rc.endpoint, "network", start)
		c.logger.Warn().Err(err).Str("endpoint", rc.endpoint).Msg("request failed")
		return 0, &domain.NetworkError{Op: rc.endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.observe(rc.endpoint, strconv.Itoa(resp.StatusCode), start)
	c.logger.Debug().
		Str("method", rc.method).
		Str("path", rc.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeError(resp)
	}

	switch {
	case rc.sink != nil:
		n, err := io.Copy(rc.sink, resp.Body)
		if err != nil {
			return n, &domain.NetworkError{Op: rc.endpoint, Err: err}
		}
		return n, nil
	case rc.out != nil:
		if err := json.NewDecoder(resp.Body).Decode(rc.out); err != nil {
			return 0, fmt.Errorf("decode %s: %w", rc.endpoint, err)
		}
	}

	return 0, nil
}

func (c *Client) observe(endpoint, status string, start time.Time) {
	if c.recorder != nil {
		c.recorder.ObserveAPICall(endpoint, status, time.Since(start))
	}
}

// decodeError reads the server's "detail", which is either a string or a
// list of {loc, msg} validation items.
func decodeError(resp *http.Response) error {
	apiErr := &domain.APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || json.Unmarshal(raw, &payload) != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	apiErr.Detail = parseDetail(payload.Detail)
	return apiErr
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func parseDetail(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var items []validationItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Msg == "" {
			continue
		}
		if field := fieldName(item.Loc); field != "" {
			msgs = append(msgs, field+": "+item.Msg)
		} else {
			msgs = append(msgs, item.Msg)
		}
	}

	return strings.Join(msgs, "; ")
}

// fieldName drops the "body"/"query" prefix of a location.
func fieldName(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, p := range loc {
		s := fmt.Sprint(p)
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}
