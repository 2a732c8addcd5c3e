// instruments/text.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"fmt"

	"github.com/mmp/qfi/math"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Tape labels and readouts are re-set every update but only take on a
// small number of distinct values, so the formatted strings are cached.
// The cache is safe for concurrent use and only memoizes formatting; what
// an instrument shows depends on nothing but its state.
type textKey struct {
	format string
	v      float32
}

var textCache = expirable.NewLRU[textKey, string](1024, nil, 0)

func formatText(format string, v float32) string {
	k := textKey{format: format, v: v}
	if s, ok := textCache.Get(k); ok {
		return s
	}
	s := fmt.Sprintf(format, v)
	textCache.Add(k, s)
	return s
}

func altitudeLabelText(v float32) string { return formatText("%5.0f", v) }
func airspeedLabelText(v float32) string { return formatText("%3.0f", v) }

func altitudeText(alt float32) string { return formatText("%5.0f", alt) }
func airspeedText(ias float32) string { return formatText("%03.0f", ias) }

func headingText(hdg float32) string {
	return formatText("%03.0f", math.Floor(hdg+0.5))
}

func machText(mach float32) string {
	switch {
	case mach < 1:
		return formatText(".%03.0f", 1000*mach)
	case mach < 10:
		return formatText("%.2f", mach)
	default:
		return formatText("%.1f", mach)
	}
}

func pressureText(p float32, unit PressureUnit) string {
	switch unit {
	case PressureMB:
		return formatText("%.0f MB", p)
	case PressureIN:
		return formatText("%.2f IN", p)
	default:
		return "  STD  "
	}
}

// Rounding can take a heading just under 360 up to 360, shown as 000.
func wholeDegrees(h float32) float32 { return float32(int(math.Round(h)) % 360) }

func courseText(crs float32) string     { return formatText("CRS %03.0f", wholeDegrees(crs)) }
func navHeadingText(hdg float32) string { return formatText("HDG %03.0f", wholeDegrees(hdg)) }

func distanceText(nm float32, visible bool) string {
	if !visible {
		return "- - - NM"
	}
	return formatText("%.1f NM", nm)
}
