// cmd/qfisim/errors.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import "errors"

var (
	ErrNoPanels         = errors.New("No instrument panels configured")
	ErrDuplicatePanel   = errors.New("Panel name used more than once")
	ErrInvalidViewport  = errors.New("Viewport dimensions must be positive")
	ErrInvalidTickRate  = errors.New("Tick rate must be positive")
	ErrNoScript         = errors.New("No flight script given; use -script")
	ErrNoKeyframes      = errors.New("Flight script has no keyframes")
	ErrKeyframeOrder    = errors.New("Keyframe times must be increasing")
	ErrUnknownIndicator = errors.New("Unknown indicator")
	ErrCaptureNames     = errors.New("Capture frame has commands for a panel with no element names")
)
