// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// probe_cmd.go - The "probe" command: one GET against the backend.

package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jeranaias/tasklist-tui/internal/config"
	"github.com/jeranaias/tasklist-tui/internal/probe"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// ProbeData is the JSON payload of "probe --json".
type ProbeData struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type,omitempty"`
	Body        string `json:"body"`
	DurationMS  int64  `json:"duration_ms"`
	Reachable   bool   `json:"reachable"`
}

// HandleProbe handles the "probe" command against the build-time API URL.
func HandleProbe(args Args) error {
	return runProbe(args, config.APIURL(), nil)
}

// runProbe probes baseURL. A nil client means no timeout. A transport
// failure is logged (PROBE_FAILED on stderr) and is not an error.
func runProbe(args Args, baseURL string, client *http.Client) error {
	logger := log.New(stderr, "", 0)
	if args.Verbose {
		logger.SetFlags(log.LstdFlags)
	}

	p := probe.NewWithConfig(&probe.Config{
		BaseURL:    baseURL,
		HTTPClient: client,
		Logger:     logger,
	})

	return OutputJSON(args.JSON, "probe", func() (interface{}, error) {
		res := p.Do(context.Background())
		if !res.OK() {
			return ProbeData{ID: res.ID, URL: res.URL, DurationMS: res.Duration().Milliseconds()}, nil
		}

		data := ProbeData{
			ID:          res.ID,
			URL:         res.URL,
			StatusCode:  res.StatusCode,
			ContentType: res.ContentType,
			Body:        res.Body,
			DurationMS:  res.Duration().Milliseconds(),
			Reachable:   true,
		}
		if !args.JSON {
			printProbe(args, data)
		}
		return data, nil
	})
}

func printProbe(args Args, d ProbeData) {
	if args.Quiet {
		fmt.Fprintln(stdout, d.Body)
		return
	}
	fmt.Fprintf(stdout, "%s GET %s\n", styles.RenderSuccess(fmt.Sprintf("%d", d.StatusCode)), d.URL)
	if args.Verbose {
		fmt.Fprintf(stdout, "  id:           %s\n", d.ID)
		fmt.Fprintf(stdout, "  content-type: %s\n", d.ContentType)
		fmt.Fprintf(stdout, "  duration:     %dms\n", d.DurationMS)
	}
	fmt.Fprintln(stdout, WrapText(d.Body, GetTerminalWidth()))
}
