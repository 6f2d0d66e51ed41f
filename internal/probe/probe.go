// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package probe checks connectivity to the tasklist backend.
//
// A probe is one GET to the root of the build-time API URL. The raw response
// is logged and handed back to the caller; it never touches task state.
//
// There is no retry, no timeout and no cancellation. Fire starts a probe on a
// detached goroutine and keeps no handle to it, so two probes fired back to
// back are two independent requests that may complete in either order. A
// failed request is logged and otherwise dropped.
package probe

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// RESULT
// =============================================================================

// Result is the raw outcome of one probe.
type Result struct {
	// ID distinguishes interleaved probes in logs
	ID string

	// URL is the exact URL requested
	URL string

	// StatusCode and Status are zero/empty when Err is set
	StatusCode int
	Status     string

	// ContentType is the response Content-Type header
	ContentType string

	// Body is the complete response body
	Body string

	// Err is the transport or read error, if any
	Err error

	Started  time.Time
	Finished time.Time
}

// OK reports whether the probe got any HTTP response at all.
func (r Result) OK() bool {
	return r.Err == nil
}

// Duration returns how long the probe took.
func (r Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// =============================================================================
// PROBE CONFIGURATION
// =============================================================================

// Config holds configuration options for a Probe.
type Config struct {
	// BaseURL is the backend base URL; "/" is requested below it
	BaseURL string

	// HTTPClient performs the request. A nil client means a plain
	// http.Client with no timeout.
	HTTPClient *http.Client

	// Logger receives PROBE_* lines (default: log.Default())
	Logger *log.Logger
}

// =============================================================================
// PROBE
// =============================================================================

// Probe issues connectivity checks against one backend.
// It is safe for concurrent use.
type Probe struct {
	url        string
	httpClient *http.Client
	logger     *log.Logger
}

// New creates a probe for baseURL with default settings.
func New(baseURL string) *Probe {
	return NewWithConfig(&Config{BaseURL: baseURL})
}

// NewWithConfig creates a probe with custom configuration.
func NewWithConfig(cfg *Config) *Probe {
	if cfg == nil {
		cfg = &Config{}
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Probe{
		url:        RootURL(cfg.BaseURL),
		httpClient: client,
		logger:     logger,
	}
}

// URL returns the URL every probe requests.
func (p *Probe) URL() string {
	return p.url
}

// RootURL returns the root path under baseURL.
func RootURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/"
}

// Do performs one probe and waits for it to finish.
func (p *Probe) Do(ctx context.Context) Result {
	res := Result{
		ID:      uuid.NewString(),
		URL:     p.url,
		Started: time.Now(),
	}

	p.logger.Printf("PROBE_START | id=%s url=%s", res.ID, res.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return p.fail(res, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return p.fail(res, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return p.fail(res, err)
	}

	res.StatusCode = resp.StatusCode
	res.Status = resp.Status
	res.ContentType = resp.Header.Get("Content-Type")
	res.Body = string(body)
	res.Finished = time.Now()

	p.logger.Printf("PROBE_RESPONSE | id=%s status=%d content_type=%q body=%q duration=%s",
		res.ID, res.StatusCode, res.ContentType, res.Body, res.Duration())
	return res
}

// Fire starts a probe in the background and returns immediately. onResult,
// if non-nil, is called from the probe goroutine when the request finishes.
// No handle is kept; the caller cannot wait for or cancel the probe.
func (p *Probe) Fire(onResult func(Result)) {
	go func() {
		res := p.Do(context.Background())
		if onResult != nil {
			onResult(res)
		}
	}()
}

func (p *Probe) fail(res Result, err error) Result {
	res.Err = err
	res.Finished = time.Now()
	p.logger.Printf("PROBE_FAILED | id=%s url=%s error=%v", res.ID, res.URL, err)
	return res
}
