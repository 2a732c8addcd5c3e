// cmd/qfisim/config.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/mmp/qfi/instruments"
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/util"
)

// Config describes the instrument panels to drive and how to drive them.
type Config struct {
	Panels   []PanelConfig `json:"panels"`
	TickRate float32       `json:"tick_rate"` // Hz
	Capture  string        `json:"capture"`
	LogLevel string        `json:"log_level"`
	LogDir   string        `json:"log_dir"`
}

type PanelConfig struct {
	Name     string           `json:"name"`
	Kind     instruments.Kind `json:"kind"`
	Viewport [2]float32       `json:"viewport"`
}

func getDefaultConfig() *Config {
	return &Config{
		Panels: []PanelConfig{
			{Name: "pfd", Kind: instruments.KindPFD, Viewport: [2]float32{300, 300}},
		},
		TickRate: 30,
		LogLevel: "info",
	}
}

// LoadConfig returns the default configuration updated with the contents
// of the given JSON file; an empty filename gives the defaults.
func LoadConfig(fn string, lg *log.Logger) (*Config, error) {
	config := getDefaultConfig()
	if fn == "" {
		return config, nil
	}

	lg.Infof("Loading config from: %s", fn)
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Panels from the file replace the default ones rather than being
	// decoded on top of them.
	config.Panels = nil
	if err := util.UnmarshalJSON(f, config); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if config.Panels == nil {
		config.Panels = getDefaultConfig().Panels
	}
	for i := range config.Panels {
		if config.Panels[i].Name == "" {
			config.Panels[i].Name = config.Panels[i].Kind.String()
		}
	}

	if err := config.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return config, nil
}

// Check reports the first problem found with the configuration.
func (c *Config) Check() error {
	if len(c.Panels) == 0 {
		return ErrNoPanels
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%.2f: %w", c.TickRate, ErrInvalidTickRate)
	}

	seen := make(map[string]bool)
	for _, p := range c.Panels {
		if seen[p.Name] {
			return fmt.Errorf("%s: %w", p.Name, ErrDuplicatePanel)
		}
		seen[p.Name] = true

		if p.Viewport[0] <= 0 || p.Viewport[1] <= 0 {
			return fmt.Errorf("%s: %v: %w", p.Name, p.Viewport, ErrInvalidViewport)
		}
	}
	return nil
}
