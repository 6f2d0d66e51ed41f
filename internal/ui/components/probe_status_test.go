// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/tasklist-tui/internal/probe"
)

func TestProbeStatus_InFlight(t *testing.T) {
	ps := NewProbeStatus(nil)

	if cmd := ps.Start(); cmd == nil {
		t.Error("first Start() should return a spinner tick")
	}
	if cmd := ps.Start(); cmd != nil {
		t.Error("second Start() should not start another tick")
	}
	if ps.InFlight() != 2 {
		t.Fatalf("InFlight() = %d, want 2", ps.InFlight())
	}
	if !strings.Contains(ps.View(), "probing (2)") {
		t.Errorf("View() = %q, want probing (2)", ps.View())
	}

	ps.Finish(probe.Result{StatusCode: 200, Body: "Express on Vercel"})
	ps.Finish(probe.Result{StatusCode: 200, Body: "Express on Vercel"})
	if ps.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", ps.InFlight())
	}
}

func TestProbeStatus_FailureNotShown(t *testing.T) {
	ps := NewProbeStatus(nil)
	ps.Start()
	ps.Finish(probe.Result{Err: errors.New("connection refused")})

	if _, ok := ps.Last(); ok {
		t.Error("Last() should be empty after a failed probe")
	}
	if v := ps.View(); v != "" {
		t.Errorf("View() = %q, want empty", v)
	}
}

func TestProbeStatus_KeepsLastSuccess(t *testing.T) {
	ps := NewProbeStatus(nil)
	ps.Start()
	ps.Start()
	ps.Finish(probe.Result{StatusCode: 200, Body: "Express on Vercel"})
	ps.Finish(probe.Result{Err: errors.New("timeout")})

	last, ok := ps.Last()
	if !ok || last.Body != "Express on Vercel" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	if !strings.Contains(ps.View(), "Express on Vercel") {
		t.Errorf("View() = %q, want last body", ps.View())
	}
}

func TestProbeStatus_FinishWithoutStart(t *testing.T) {
	ps := NewProbeStatus(nil)
	ps.Finish(probe.Result{StatusCode: 200})
	if ps.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", ps.InFlight())
	}
}
