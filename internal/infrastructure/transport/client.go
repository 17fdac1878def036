// Package transport is the configured HTTP client for the school service.
// Every outbound request passes through the credential stage (attach the
// persisted bearer token, if any); every inbound response passes through the
// authorization stage (a 401 evicts the session before the error propagates).
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/core/ports"
	"github.com/edusync/schoolclient/internal/metrics"
	"github.com/edusync/schoolclient/internal/wire"
)

const defaultTimeout = 10 * time.Second

// Client implements ports.Gateway over net/http. It holds no session state:
// the token is read from the key store on each call, never cached.
type Client struct {
	baseURL        string
	http           *http.Client
	keys           ports.KeyStore
	onUnauthorized func()
	log            zerolog.Logger
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the fixed request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, keys ports.KeyStore, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		keys:    keys,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnUnauthorized registers the session-eviction callback invoked whenever a
// response carries a 401, independent of which store made the call. Session
// state stays owned by the session manager; the transport only reports.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) GetList(ctx context.Context, path string) ([]wire.Record, error) {
	var out []wire.Record
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Post(ctx context.Context, path string, body wire.Record) (wire.Record, error) {
	var out wire.Record
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Patch(ctx context.Context, path string, body wire.Record) (wire.Record, error) {
	var out wire.Record
	if err := c.do(ctx, http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u := c.baseURL + path

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Outbound credential stage. A failed read is logged and the request
	// goes out unauthenticated; the service decides per endpoint.
	if token, ok, err := c.keys.Get(ports.TokenKey); err != nil {
		c.log.Warn().Err(err).Msg("reading stored token failed")
	} else if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("url", u).Msg("request failed")
		return &domain.RequestError{
			Method: method,
			URL:    u,
			Err:    fmt.Errorf("%w: %v", domain.ErrNetwork, err),
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return &domain.RequestError{
			Method: method,
			URL:    u,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%w: read response: %v", domain.ErrNetwork, err),
		}
	}
	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	// Inbound authorization stage. Eviction happens before the caller sees
	// the error, whatever entity the request was for.
	if resp.StatusCode == http.StatusUnauthorized {
		metrics.SessionEvictionsTotal.Inc()
		c.log.Warn().Str("method", method).Str("url", u).Msg("authorization failure, evicting session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &domain.RequestError{
			Method: method,
			URL:    u,
			Status: resp.StatusCode,
			Body:   string(data),
			Err:    domain.ErrUnauthorized,
		}
	}

	if resp.StatusCode >= 400 {
		c.log.Error().
			Str("method", method).
			Str("url", u).
			Int("status", resp.StatusCode).
			Str("body", string(data)).
			Msg("service error")
		return &domain.RequestError{
			Method: method,
			URL:    u,
			Status: resp.StatusCode,
			Body:   string(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &domain.RequestError{
				Method: method,
				URL:    u,
				Status: resp.StatusCode,
				Err:    fmt.Errorf("decode response: %w", err),
			}
		}
	}
	return nil
}
