// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func quietServer(port int) (*Server, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewServer(port).WithLogger(log.New(&buf, "", 0)), &buf
}

func TestNewServer_DefaultPort(t *testing.T) {
	s := NewServer(0)
	if s.Port() != DefaultPort {
		t.Errorf("Port() = %d, want %d", s.Port(), DefaultPort)
	}
	if s.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", s.Addr(), ":8080")
	}
}

func TestNewServer_CustomPort(t *testing.T) {
	s := NewServer(9999)
	if s.Port() != 9999 {
		t.Errorf("Port() = %d, want 9999", s.Port())
	}
}

func TestHandleRoot(t *testing.T) {
	s, _ := quietServer(0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if body := rec.Body.String(); body != "Express on Vercel" {
		t.Errorf("body = %q, want %q", body, "Express on Vercel")
	}
}

func TestHandleRoot_IgnoresQueryAndHeaders(t *testing.T) {
	s, _ := quietServer(0)

	req := httptest.NewRequest(http.MethodGet, "/?x=1&y=2", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != RootBody {
		t.Errorf("got %d %q, want 200 %q", rec.Code, rec.Body.String(), RootBody)
	}
}

func TestHandleRoot_Repeatable(t *testing.T) {
	s, _ := quietServer(0)
	h := s.Handler()

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != RootBody {
			t.Fatalf("request %d: got %d %q", i, rec.Code, rec.Body.String())
		}
	}
}

func TestUnknownPathsNotFound(t *testing.T) {
	s, _ := quietServer(0)

	for _, path := range []string{"/tasks", "/api", "/index.html", "/a/b"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestLoggingMiddleware(t *testing.T) {
	s, buf := quietServer(0)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	out := buf.String()
	if !strings.Contains(out, "REQUEST | GET / | 200 | 17B") {
		t.Errorf("log = %q, want request line", out)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	h := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "PANIC_RECOVERED") {
		t.Errorf("log = %q, want PANIC_RECOVERED", buf.String())
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mw("a"), mw("b"), mw("c"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := "a,b,c,handler"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s, buf := quietServer(8080)
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/"
	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get(url)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != RootBody {
		t.Errorf("body = %q, want %q", body, RootBody)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != http.ErrServerClosed {
		t.Errorf("Serve() error = %v, want %v", err, http.ErrServerClosed)
	}
	if !strings.Contains(buf.String(), "Running on port 8080.") {
		t.Errorf("log = %q, want startup line", buf.String())
	}
}

func TestShutdown_NotStarted(t *testing.T) {
	s := NewServer(0)
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on unstarted server = %v, want nil", err)
	}
}
