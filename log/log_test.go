// log/log_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []struct {
		s   string
		lvl slog.Level
		ok  bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	} {
		lvl, ok := ParseLevel(l.s)
		if lvl != l.lvl || ok != l.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), expected (%v, %v)", l.s, lvl, ok, l.lvl, l.ok)
		}
	}
}

func TestCallstackAttached(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lg.Debug("reinit", slog.Int("width", 300))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unable to parse log record %q: %v", buf.String(), err)
	}
	if rec["msg"] != "reinit" {
		t.Errorf("got msg %v, expected reinit", rec["msg"])
	}
	if _, ok := rec["callstack"]; !ok {
		t.Errorf("no callstack in log record %q", buf.String())
	}
	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("callstack does not include the caller: %q", buf.String())
	}
}

// callstackFromHere stands in for a logging method; Callstack skips it.
func callstackFromHere(fr []StackFrame) []StackFrame {
	return Callstack(fr)
}

func TestCallstack(t *testing.T) {
	fr := callstackFromHere(nil)
	if len(fr) == 0 {
		t.Fatalf("empty callstack")
	}
	if fr[0].File != "log_test.go" || fr[0].Function != "log.TestCallstack" {
		t.Errorf("got first frame %s, expected log_test.go:...:log.TestCallstack", fr[0])
	}
	if len(fr) > maxStackFrames {
		t.Errorf("got %d frames, expected at most %d", len(fr), maxStackFrames)
	}

	// Provided storage is reused, whatever its length.
	storage := make([]StackFrame, 3, 32)
	fr = callstackFromHere(storage)
	if len(fr) == 0 || &fr[0] != &storage[0] {
		t.Errorf("callstack did not reuse the provided slice")
	}
}

func TestTrimFunction(t *testing.T) {
	for _, c := range []struct {
		fn, expected string
	}{
		{modulePrefix() + "instruments.(*PFD).Update", "instruments.(*PFD).Update"},
		{"main.(*Panel).Step", "(*Panel).Step"},
		{"runtime.goexit", "runtime.goexit"},
	} {
		if got := trimFunction(c.fn); got != c.expected {
			t.Errorf("trimFunction(%q): got %q, expected %q", c.fn, got, c.expected)
		}
	}
	if !strings.HasSuffix(modulePrefix(), "/") {
		t.Errorf("module prefix %q should end with a slash", modulePrefix())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	lg.Debugf("dropped %d", 1)
	lg.Infof("dropped %d", 2)
	if buf.Len() != 0 {
		t.Errorf("expected debug and info messages to be filtered, got %q", buf.String())
	}

	lg.Warnf("kept %d", 3)
	if !strings.Contains(buf.String(), "kept 3") {
		t.Errorf("expected warning to be logged, got %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	// None of these should crash.
	lg.Debug("x")
	lg.Debugf("x %d", 1)
	lg.Info("x")
	lg.Infof("x %d", 1)
	if lg.With("k", "v") != nil {
		t.Errorf("With on a nil Logger should return nil")
	}
}
