// math/heading.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and directions

// NormalizeHeading reduces h to [0,360).
func NormalizeHeading(h float32) float32 {
	if IsNaN(h) {
		return 0
	}
	if h < 0 {
		h = 360 - Mod(-h, 360)
	} else {
		h = Mod(h, 360)
	}
	if h >= 360 {
		// 360 - Mod(360, 360) and float32 rounding of tiny negative values.
		return 0
	}
	return h
}

// RelativeHeading returns the angle of h as seen from a display that is
// rotated to the reference heading ref, normalized to [0,360). Dial
// pointers (course, bearing, heading bug) are drawn at this angle.
func RelativeHeading(h, ref float32) float32 {
	return NormalizeHeading(h - ref)
}
