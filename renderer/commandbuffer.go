// renderer/commandbuffer.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	gomath "math"
	"sync"
)

// The command buffer stores a series of element commands, represented by
// the following values. Each one is followed in the buffer by a number of
// command arguments, after which the next command follows.  Comments
// after each command briefly describe its arguments.
//
// Elements are referred to by their index in the CommandBuffer's Names
// slice, so a CommandBuffer is self-contained and can be serialized and
// replayed onto any Surface.
const (
	ElementTranslate = iota // int32 element, 2 float32: dx, dy
	ElementRotation         // int32 element, float32: degrees
	ElementVisible          // int32 element, int32: 0 or 1
	ElementText             // int32 element, int32: size in bytes, then (3+size)/4 uint32 values
	ElementScale            // int32 element, 2 float32: sx, sy
	SurfaceClear            // no args
)

// CommandBuffer encodes a sequence of element commands in an
// renderer-agnostic manner. It implements Surface, so an instrument can
// update into a CommandBuffer that is later executed (possibly more than
// once, possibly after being saved to disk) on a Scene or another
// Surface.
type CommandBuffer struct {
	Buf   []uint32
	Names []ElementID

	index map[ElementID]int
}

// CommandBuffers are managed using a sync.Pool so that their buf slice
// allocations persist across multiple uses.
var commandBufferPool = sync.Pool{New: func() any { return &CommandBuffer{} }}

func GetCommandBuffer() *CommandBuffer {
	return commandBufferPool.Get().(*CommandBuffer)
}

func ReturnCommandBuffer(cb *CommandBuffer) {
	cb.Reset()
	commandBufferPool.Put(cb)
}

// Reset resets the command buffer's length to zero so that it can be
// reused.
func (cb *CommandBuffer) Reset() {
	cb.Buf = cb.Buf[:0]
	cb.Names = cb.Names[:0]
	clear(cb.index)
}

// Empty reports whether any commands have been added to the buffer.
func (cb *CommandBuffer) Empty() bool {
	return len(cb.Buf) == 0
}

func (cb *CommandBuffer) appendFloats(floats ...float32) {
	for _, f := range floats {
		// Convert each one to a uint32 since that's the type that is
		// actually stored...
		cb.Buf = append(cb.Buf, gomath.Float32bits(f))
	}
}

func (cb *CommandBuffer) appendInts(ints ...int) {
	for _, i := range ints {
		cb.Buf = append(cb.Buf, uint32(i))
	}
}

func (cb *CommandBuffer) appendBytes(b []byte) {
	cb.appendInts(len(b))
	for i := 0; i < len(b); i += 4 {
		var v uint32
		for j := 0; j < 4 && i+j < len(b); j++ {
			v |= uint32(b[i+j]) << (8 * j)
		}
		cb.Buf = append(cb.Buf, v)
	}
}

// elementIndex returns the index of the given element in Names, adding
// it if this is the first command that refers to it.
func (cb *CommandBuffer) elementIndex(id ElementID) int {
	if cb.index == nil || len(cb.index) != len(cb.Names) {
		// Either this is a fresh buffer or it was decoded from a capture
		// and the index needs to be rebuilt.
		cb.index = make(map[ElementID]int, len(cb.Names))
		for i, n := range cb.Names {
			cb.index[n] = i
		}
	}
	if idx, ok := cb.index[id]; ok {
		return idx
	}
	idx := len(cb.Names)
	cb.Names = append(cb.Names, id)
	cb.index[id] = idx
	return idx
}

// Clear adds a command to the command buffer that clears the target
// Surface.
func (cb *CommandBuffer) Clear() {
	cb.appendInts(SurfaceClear)
}

// Element returns an Element whose methods add the corresponding
// commands to the command buffer.
func (cb *CommandBuffer) Element(id ElementID) Element {
	return cbElement{cb: cb, idx: cb.elementIndex(id)}
}

type cbElement struct {
	cb  *CommandBuffer
	idx int
}

func (e cbElement) TranslateBy(dx, dy float32) {
	e.cb.appendInts(ElementTranslate, e.idx)
	e.cb.appendFloats(dx, dy)
}

func (e cbElement) SetRotation(degrees float32) {
	e.cb.appendInts(ElementRotation, e.idx)
	e.cb.appendFloats(degrees)
}

func (e cbElement) SetVisible(visible bool) {
	v := 0
	if visible {
		v = 1
	}
	e.cb.appendInts(ElementVisible, e.idx, v)
}

func (e cbElement) SetText(s string) {
	e.cb.appendInts(ElementText, e.idx)
	e.cb.appendBytes([]byte(s))
}

func (e cbElement) SetScale(sx, sy float32) {
	e.cb.appendInts(ElementScale, e.idx)
	e.cb.appendFloats(sx, sy)
}

// Execute applies all of the commands in the command buffer to the
// provided Surface, returning statistics about what was applied. An error
// is returned if the buffer is malformed; commands before the malformed
// one will already have been applied.
func (cb *CommandBuffer) Execute(s Surface) (Stats, error) {
	var stats Stats
	i := 0

	// Every command other than SurfaceClear starts with an element index.
	need := func(n int) error {
		if i+n > len(cb.Buf) {
			return fmt.Errorf("offset %d: %w", i, ErrCommandBufferTruncated)
		}
		return nil
	}
	element := func() (Element, error) {
		if err := need(1); err != nil {
			return nil, err
		}
		idx := int(cb.Buf[i])
		if idx < 0 || idx >= len(cb.Names) {
			return nil, fmt.Errorf("offset %d: element %d: %w", i, idx, ErrInvalidElementIndex)
		}
		i++
		return s.Element(cb.Names[idx]), nil
	}
	float := func() float32 {
		f := gomath.Float32frombits(cb.Buf[i])
		i++
		return f
	}

	for i < len(cb.Buf) {
		cmd := cb.Buf[i]
		i++

		if cmd == SurfaceClear {
			s.Clear()
			stats.nClears++
			continue
		}

		e, err := element()
		if err != nil {
			return stats, err
		}

		switch cmd {
		case ElementTranslate:
			if err := need(2); err != nil {
				return stats, err
			}
			dx := float()
			dy := float()
			e.TranslateBy(dx, dy)
			stats.nTranslates++

		case ElementRotation:
			if err := need(1); err != nil {
				return stats, err
			}
			e.SetRotation(float())
			stats.nRotations++

		case ElementVisible:
			if err := need(1); err != nil {
				return stats, err
			}
			e.SetVisible(cb.Buf[i] != 0)
			i++
			stats.nVisibility++

		case ElementText:
			if err := need(1); err != nil {
				return stats, err
			}
			n := int(cb.Buf[i])
			i++
			nwords := (n + 3) / 4
			if err := need(nwords); err != nil {
				return stats, err
			}
			b := make([]byte, n)
			for j := range b {
				b[j] = byte(cb.Buf[i+j/4] >> (8 * (j % 4)))
			}
			i += nwords
			e.SetText(string(b))
			stats.nTexts++

		case ElementScale:
			if err := need(2); err != nil {
				return stats, err
			}
			sx := float()
			sy := float()
			e.SetScale(sx, sy)
			stats.nScales++

		default:
			return stats, fmt.Errorf("offset %d: command %d: %w", i-2, cmd, ErrUnknownCommand)
		}
	}

	return stats, nil
}
