// math/vecmat.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// point 2f

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] - b[0], a[1] - b[1]}
}

// Mul2f returns the component-wise product of a and b; it's handy for
// taking design-canvas coordinates to viewport coordinates.
func Mul2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] * b[0], a[1] * b[1]}
}

// Rotator2f returns a function that rotates points clockwise by the
// specified angle (given in degrees) in a y-down screen space.
func Rotator2f(angle float32) func([2]float32) [2]float32 {
	sc := SinCos(Radians(angle))
	s, c := sc[0], sc[1]
	return func(p [2]float32) [2]float32 {
		return [2]float32{c*p[0] - s*p[1], s*p[0] + c*p[1]}
	}
}
