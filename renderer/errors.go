// renderer/errors.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "errors"

var (
	ErrCommandBufferTruncated = errors.New("Command buffer ends in the middle of a command")
	ErrUnknownCommand         = errors.New("Unknown command in command buffer")
	ErrInvalidElementIndex    = errors.New("Command refers to an element not in the command buffer")
)
