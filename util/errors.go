// util/errors.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "errors"

var (
	ErrDuplicateJSONKey  = errors.New("Duplicate key in JSON object")
	ErrNotCaptureFile    = errors.New("Not a capture file")
	ErrBadCaptureVersion = errors.New("Unsupported capture file version")
)
