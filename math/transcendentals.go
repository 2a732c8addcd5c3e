// math/transcendentals.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// https://github.com/golang/go/issues/45915: "For graphics it was common a
// while ago to use tables instead of invoking a function every time you
// needed a Sin/Cos anyway, so having 32-bit versions would still not be the
// optimal answer"
// 🤯🤯🤯 for 1990s-era graphics expertise causing golang to have a fp64-only math library.
//
// So here we are, taking some advantage of the fact that we don't need to
// support the full domain with high accuracy if we have to go there
// ourselves.

package math

import (
	gomath "math"
)

// SinCos computes sin(x) and cos(x) simultaneously for a single float32 value
// Ported from syrah/FixedVectorMath.h:152, which is via Abramowitz and Stegun.
func SinCos(xFull float32) [2]float32 {
	const piOverTwo = float32(1.57079637050628662109375)
	const twoOverPi = float32(0.636619746685028076171875)

	scaled := xFull * twoOverPi
	kReal := float32(gomath.Floor(float64(scaled)))
	k := int(kReal)

	// Reduced range version of x
	x := xFull - kReal*piOverTwo
	kMod4 := k & 3
	cosUsecos := kMod4 == 0 || kMod4 == 2
	sinUsecos := kMod4 == 1 || kMod4 == 3
	sinFlipsign := kMod4 > 1
	cosFlipsign := kMod4 == 1 || kMod4 == 2

	const sinC2 = -0.16666667163372039794921875
	const sinC4 = 8.333347737789154052734375e-3
	const sinC6 = -1.9842604524455964565277099609375e-4
	const sinC8 = 2.760012648650445044040679931640625e-6
	const sinC10 = -2.50293279435709337121807038784027099609375e-8

	const cosC2 = -0.5
	const cosC4 = 4.166664183139801025390625e-2
	const cosC6 = -1.388833043165504932403564453125e-3
	const cosC8 = 2.47562347794882953166961669921875e-5
	const cosC10 = -2.59630184018533327616751194000244140625e-7

	x2 := x * x

	// Compute sin formula using Horner's method
	sinFormula := x2*sinC10 + sinC8
	sinFormula = x2*sinFormula + sinC6
	sinFormula = x2*sinFormula + sinC4
	sinFormula = x2*sinFormula + sinC2
	sinFormula = x2*sinFormula + 1
	sinFormula *= x

	// Compute cos formula using Horner's method
	cosFormula := x2*cosC10 + cosC8
	cosFormula = x2*cosFormula + cosC6
	cosFormula = x2*cosFormula + cosC4
	cosFormula = x2*cosFormula + cosC2
	cosFormula = x2*cosFormula + 1

	// Select appropriate formula for sin and cos
	var sin, cos float32
	if sinUsecos {
		sin = cosFormula
	} else {
		sin = sinFormula
	}

	if cosUsecos {
		cos = cosFormula
	} else {
		cos = sinFormula
	}

	// Apply sign flips
	if sinFlipsign {
		sin = -sin
	}

	if cosFlipsign {
		cos = -cos
	}

	return [2]float32{sin, cos}
}
