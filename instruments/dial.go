// instruments/dial.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/math"
)

// DialRotation returns the element rotation for a dial driven by the
// given angle; elements rotate clockwise for positive input (e.g., right
// roll, increasing heading).
func DialRotation(angle float32) float32 {
	return -angle
}

// DialOffset returns the screen-space translation of an element that is
// displaced by d design units along the axis of a dial that has been
// rotated by angle degrees. (This is how the pitch ladder stays aligned
// with the horizon as the aircraft rolls.)
func DialOffset(sf ScaleFactors, d, angle float32) Target {
	sc := math.SinCos(math.Radians(angle))
	return At(sf.X*d*sc[0], sf.Y*d*sc[1])
}

// ClampedDialOffset is DialOffset with d limited to [-limit,limit] before
// it is projected.
func ClampedDialOffset(sf ScaleFactors, d, limit, angle float32) Target {
	return DialOffset(sf, math.Clamp(d, -limit, limit), angle)
}

// AlongAxisOffset returns the screen-space translation of an element
// displaced by d design units along an axis that is at angle degrees from
// the horizontal (+y down). ccw selects which way positive angles turn
// the axis.
func AlongAxisOffset(sf ScaleFactors, d, angle float32, ccw bool) Target {
	v := math.Rotator2f(angle)([2]float32{d, 0})
	if ccw {
		v[1] = -v[1]
	}
	v = sf.Apply(v)
	return At(v[0], v[1])
}
