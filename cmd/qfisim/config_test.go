// cmd/qfisim/config_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmp/qfi/instruments"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Panels) != 1 || c.Panels[0].Kind != instruments.KindPFD || c.TickRate != 30 {
		t.Errorf("unexpected default config %+v", c)
	}

	// Only some fields given; the rest keep their defaults.
	fn := writeTemp(t, "config.json", `{"tick_rate": 60}`)
	if c, err = LoadConfig(fn, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.TickRate != 60 || len(c.Panels) != 1 || c.Panels[0].Name != "pfd" {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestLoadConfigPanels(t *testing.T) {
	fn := writeTemp(t, "config.json", `{
  "panels": [
    {"kind": "ADI", "viewport": [240, 240]},
    {"name": "copilot", "kind": "adi", "viewport": [480, 240]}
  ]
}`)
	c, err := LoadConfig(fn, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Panels) != 2 {
		t.Fatalf("got %d panels, expected 2", len(c.Panels))
	}
	if c.Panels[0].Name != "adi" || c.Panels[0].Kind != instruments.KindADI {
		t.Errorf("got %+v, expected an unnamed panel to be named after its kind", c.Panels[0])
	}
	if c.Panels[1].Name != "copilot" || c.Panels[1].Viewport != [2]float32{480, 240} {
		t.Errorf("unexpected panel %+v", c.Panels[1])
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name, contents string
		err            error
		msg            string
	}{
		{name: "unknown kind", contents: `{"panels": [{"kind": "pdf", "viewport": [1, 1]}]}`,
			err: instruments.ErrUnknownKind, msg: "did you mean"},
		{name: "no panels", contents: `{"panels": []}`, err: ErrNoPanels},
		{name: "duplicate", contents: `{"panels": [{"kind": "tc", "viewport": [1, 1]}, {"kind": "tc", "viewport": [2, 2]}]}`,
			err: ErrDuplicatePanel},
		{name: "viewport", contents: `{"panels": [{"kind": "vsi", "viewport": [0, 240]}]}`, err: ErrInvalidViewport},
		{name: "tick rate", contents: `{"tick_rate": -1}`, err: ErrInvalidTickRate},
		{name: "misspelled", contents: `{"tickrate": 10}`, msg: "misspelled"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeTemp(t, "config.json", tc.contents), nil)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("got %v, expected %v", err, tc.err)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("got %q, expected it to contain %q", err, tc.msg)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, expected a not-exist error", err)
	}
}
