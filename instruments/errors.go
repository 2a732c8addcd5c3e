// instruments/errors.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import "errors"

var (
	ErrUnknownKind         = errors.New("Unknown instrument kind")
	ErrUnknownPressureUnit = errors.New("Unknown pressure unit")
)
