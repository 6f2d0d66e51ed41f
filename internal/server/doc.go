// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server provides the tasklist backend: a fixed HTTP endpoint that
// exists only so front-ends can prove they reach it.
//
// # Endpoints
//
//   - GET / - always 200, text/plain, body "Express on Vercel"
//
// Every other path is a 404 from the mux. The server holds no state and never
// sees task data.
//
// # Usage
//
//	srv := server.NewServer(8080)
//	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
//		log.Fatal(err)
//	}
package server
