// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server provides the tasklist backend.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultPort is the default port for the HTTP server.
	DefaultPort = 8080

	// RootBody is the literal body served at GET /.
	RootBody = "Express on Vercel"

	// RootContentType is the Content-Type served at GET /.
	RootContentType = "text/plain; charset=utf-8"
)

// ============================================================================
// SERVER
// ============================================================================

// Server is the backend HTTP server.
type Server struct {
	port   int
	router *http.ServeMux
	logger *log.Logger

	mu     sync.Mutex
	server *http.Server
}

// NewServer creates a new Server with the specified port.
// If port is 0, the default port (8080) is used.
func NewServer(port int) *Server {
	if port == 0 {
		port = DefaultPort
	}

	s := &Server{
		port:   port,
		router: http.NewServeMux(),
		logger: log.Default(),
	}

	s.setupRoutes()
	return s
}

// WithLogger sets the logger used for request and lifecycle logging.
func (s *Server) WithLogger(logger *log.Logger) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Port returns the server port.
func (s *Server) Port() int {
	return s.port
}

// Addr returns the listen address. The backend binds every interface.
func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.port)
}

// ============================================================================
// ROUTES
// ============================================================================

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.handleRoot)
}

// handleRoot handles GET /. It has no failure path.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", RootContentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, RootBody)
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	s.mu.Lock()
	logger := s.logger
	s.mu.Unlock()

	return Chain(
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
	)(s.router)
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// Start listens on the configured port and serves until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.mu.Lock()
	s.server = srv
	logger := s.logger
	s.mu.Unlock()

	logger.Printf("Running on port %d.", s.port)
	return srv.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	logger := s.logger
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	logger.Printf("SERVER_SHUTDOWN | starting graceful shutdown")
	return srv.Shutdown(ctx)
}
