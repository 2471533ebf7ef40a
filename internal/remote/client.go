// Package remote is the single configured handle to the hosted data service.
//
// The service exposes two surfaces: credential-based session operations under
// /auth/v1, and table-scoped query operations under /rest/v1 (column
// selection, equality/OR filtering, ordering, limiting, single-row fetch,
// and writes with a returning clause). Table and column names are a fixed
// external schema contract.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gigmarket/internal/monitoring"
)

const probeTimeout = 5 * time.Second

type Config struct {
	BaseURL string
	AnonKey string

	HTTPClient *http.Client
	Logger     zerolog.Logger
	Metrics    *monitoring.Metrics
}

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     zerolog.Logger
	metrics *monitoring.Metrics

	mu          sync.RWMutex
	accessToken string
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: cfg.BaseURL,
		anonKey: cfg.AnonKey,
		http:    httpClient,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// SetAccessToken switches subsequent requests to the given session token.
// Empty reverts to the anon key.
func (c *Client) SetAccessToken(tok string) {
	c.mu.Lock()
	c.accessToken = tok
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.accessToken != "" {
		return c.accessToken
	}
	return c.anonKey
}

// Probe checks connectivity to the table endpoint. A fixed 5 second timer
// races the request; when the timer wins the caller gets a synthetic
// timeout error rather than a transport error.
func (c *Client) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("connection check timed out after %s", probeTimeout)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &Error{Status: resp.StatusCode, Message: "remote service unavailable"}
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
}

// do issues one request against the table surface and hands back the raw
// body for decoding. Non-2xx responses are mapped to *Error.
func (c *Client) do(ctx context.Context, method, url string, payload any, table string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	c.decorate(req)
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRemote(table, method, "transport_error", time.Since(start))
		c.log.Debug().Str("table", table).Str("method", method).Err(err).Msg("remote request failed")
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		remoteErr := &Error{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, remoteErr); jsonErr != nil || remoteErr.Message == "" {
			remoteErr.Message = fmt.Sprintf("remote request failed with status %d", resp.StatusCode)
		}
		c.metrics.ObserveRemote(table, method, "error", time.Since(start))
		c.log.Debug().
			Str("table", table).
			Str("method", method).
			Int("status", resp.StatusCode).
			Str("error", remoteErr.Message).
			Msg("remote request rejected")
		return nil, remoteErr
	}

	c.metrics.ObserveRemote(table, method, "ok", time.Since(start))
	c.log.Debug().
		Str("table", table).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("remote request")
	return raw, nil
}
