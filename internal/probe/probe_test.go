// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package probe

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tasklist-tui/internal/server"
)

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := server.NewServer(0).WithLogger(log.New(io.Discard, "", 0))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newTestProbe(baseURL string) (*Probe, *bytes.Buffer) {
	var buf bytes.Buffer
	p := NewWithConfig(&Config{
		BaseURL: baseURL,
		Logger:  log.New(&lockedWriter{w: &buf}, "", 0),
	})
	return p, &buf
}

// lockedWriter serializes writes from concurrent probe goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func TestRootURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:3001", "http://localhost:3001/"},
		{"http://localhost:3001/", "http://localhost:3001/"},
		{"https://api.example.com//", "https://api.example.com/"},
		{"", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RootURL(tt.in), "RootURL(%q)", tt.in)
	}
}

func TestDo_AgainstBackend(t *testing.T) {
	ts := backend(t)
	p, logs := newTestProbe(ts.URL)

	res := p.Do(context.Background())

	require.True(t, res.OK(), "probe error: %v", res.Err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Express on Vercel", res.Body)
	assert.True(t, strings.HasPrefix(res.ContentType, "text/plain"))
	assert.Equal(t, ts.URL+"/", res.URL)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.Finished.Before(res.Started))

	out := logs.String()
	assert.Contains(t, out, "PROBE_START | id="+res.ID)
	assert.Contains(t, out, "PROBE_RESPONSE | id="+res.ID+" status=200")
	assert.Contains(t, out, `body="Express on Vercel"`)
}

func TestDo_RequestsRootWithGET(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short and stout")
	}))
	defer ts.Close()

	p, _ := newTestProbe(ts.URL + "/")
	res := p.Do(context.Background())

	require.True(t, res.OK())
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/", gotPath)
	// Any status is a response; the probe does not judge it.
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Equal(t, "short and stout", res.Body)
}

func TestDo_FailureIsLogged(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	p, logs := newTestProbe(url)
	res := p.Do(context.Background())

	assert.False(t, res.OK())
	assert.Error(t, res.Err)
	assert.Zero(t, res.StatusCode)
	assert.Contains(t, logs.String(), "PROBE_FAILED | id="+res.ID)
}

func TestDo_BadURL(t *testing.T) {
	p, logs := newTestProbe("://not a url")
	res := p.Do(context.Background())

	assert.Error(t, res.Err)
	assert.Contains(t, logs.String(), "PROBE_FAILED")
}

func TestFire_IndependentProbes(t *testing.T) {
	ts := backend(t)
	p, _ := newTestProbe(ts.URL)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var results []Result

	wg.Add(2)
	for i := 0; i < 2; i++ {
		p.Fire(func(r Result) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			wg.Done()
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("probes did not complete")
	}

	require.Len(t, results, 2)
	assert.NotEqual(t, results[0].ID, results[1].ID)
	for _, r := range results {
		assert.True(t, r.OK())
		assert.Equal(t, "Express on Vercel", r.Body)
	}
}

func TestFire_NilCallback(t *testing.T) {
	hit := make(chan struct{}, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit <- struct{}{}
	}))
	defer ts.Close()

	p, _ := newTestProbe(ts.URL)
	p.Fire(nil)

	select {
	case <-hit:
	case <-time.After(5 * time.Second):
		t.Fatal("probe never reached the server")
	}
}

func TestNewWithConfig_Defaults(t *testing.T) {
	p := NewWithConfig(nil)
	assert.Equal(t, "/", p.URL())
	assert.NotNil(t, p.httpClient)
	assert.Zero(t, p.httpClient.Timeout)
	assert.Equal(t, log.Default(), p.logger)
}
