// instruments/scale.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"log/slog"

	"github.com/mmp/qfi/math"
)

// ScaleFactors take lengths in an instrument's design canvas to lengths
// in the viewport it is currently displayed in. Rotations are unaffected
// by scaling.
type ScaleFactors struct {
	X, Y float32
}

// RecomputeScale returns the scale factors for displaying a design canvas
// of the given size in the given viewport. Design dimensions are always
// non-zero; an empty (or negative) viewport dimension gives a zero
// factor.
func RecomputeScale(viewportW, viewportH, designW, designH float32) ScaleFactors {
	return ScaleFactors{
		X: math.Max(0, viewportW) / designW,
		Y: math.Max(0, viewportH) / designH,
	}
}

// Apply scales a design-canvas point or vector.
func (sf ScaleFactors) Apply(p [2]float32) [2]float32 {
	return math.Mul2f(p, [2]float32{sf.X, sf.Y})
}

func (sf ScaleFactors) LogValue() slog.Value {
	return slog.GroupValue(slog.Float64("x", float64(sf.X)), slog.Float64("y", float64(sf.Y)))
}
