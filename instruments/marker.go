// instruments/marker.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/math"
)

// Deflection is a normalized [-1,1] value driving a bar, dot, or needle's
// linear displacement from center, along with whether it's drawn at all.
type Deflection struct {
	Value   float32
	Visible bool
}

// HorizontalOffset returns the target for an element that the deflection
// moves horizontally, up to max design units either way. Hidden elements
// hold their position.
func (d Deflection) HorizontalOffset(sf ScaleFactors, max float32) Target {
	if !d.Visible {
		return Held
	}
	return At(sf.X*max*d.Value, 0)
}

// VerticalOffset is the vertical counterpart of HorizontalOffset; positive
// deflections move the element up the screen.
func (d Deflection) VerticalOffset(sf ScaleFactors, max float32) Target {
	if !d.Visible {
		return Held
	}
	return At(0, -sf.Y*max*d.Value)
}

// FlightPath is the state of the flight path marker. The marker is
// invalid if either angle had to be clamped, in which case it's drawn
// with an additional "invalid" glyph in the clamped position.
type FlightPath struct {
	AngleOfAttack float32
	Sideslip      float32
	Valid         bool
	Visible       bool
}

const (
	maxAngleOfAttack = 15
	maxSideslip      = 10
)

// SetFlightPath returns the FlightPath for the given angles, in degrees.
func SetFlightPath(aoa, sideslip float32, visible bool) FlightPath {
	var fp FlightPath
	var c0, c1 bool
	fp.AngleOfAttack, c0 = math.Saturate(aoa, -maxAngleOfAttack, maxAngleOfAttack)
	fp.Sideslip, c1 = math.Saturate(sideslip, -maxSideslip, maxSideslip)
	fp.Valid = !c0 && !c1
	fp.Visible = visible
	return fp
}

// Offset returns the marker's target given design units per degree of
// deflection; angle of attack moves it up the screen and sideslip to the
// right.
func (fp FlightPath) Offset(sf ScaleFactors, pixPerDeg float32) Target {
	if !fp.Visible {
		return Held
	}
	return At(sf.X*pixPerDeg*fp.Sideslip, -sf.Y*pixPerDeg*fp.AngleOfAttack)
}

// InvalidOffset returns the target of the invalid glyph, which tracks
// the marker only while it's shown.
func (fp FlightPath) InvalidOffset(sf ScaleFactors, pixPerDeg float32) Target {
	if !fp.InvalidVisible() {
		return Held
	}
	return fp.Offset(sf, pixPerDeg)
}

// InvalidVisible reports whether the invalid glyph should be drawn.
func (fp FlightPath) InvalidVisible() bool {
	return fp.Visible && !fp.Valid
}
