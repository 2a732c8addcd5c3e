// instruments/tape.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/math"
)

// TapeConfig describes a scrolling tape: a strip texture tile of
// TileHeight design units that is drawn twice, one tile above the other,
// and scrolled vertically as the value it displays changes. A fixed
// number of labels are overlaid on the tape and are relabeled as it
// scrolls.
type TapeConfig struct {
	PixPerUnit float32 // design units of scroll per unit of the value
	TileHeight float32
	TileMargin float32 // how far a tile may scroll past its home before wrapping

	LabelStep float32 // value difference between adjacent labels
	NumLabels int     // always odd
	MaxLabel  float32 // labels with values outside [0,MaxLabel] are hidden

	GroundLimit float32 // if non-zero, the tape has a ground marker that stops scrolling here
}

var (
	AltitudeTape = TapeConfig{
		PixPerUnit:  0.15,
		TileHeight:  300,
		TileMargin:  74.5,
		LabelStep:   500,
		NumLabels:   3,
		MaxLabel:    100000,
		GroundLimit: 100,
	}
	AirspeedTape = TapeConfig{
		PixPerUnit: 1.5,
		TileHeight: 300,
		TileMargin: 74.5,
		LabelStep:  20,
		NumLabels:  7,
		MaxLabel:   10000,
	}
)

func (tc TapeConfig) rawOffset(sf ScaleFactors, v float32) float32 {
	return sf.Y * tc.PixPerUnit * v
}

// wrapDown repeatedly subtracts period from v until it no longer exceeds
// limit.
func wrapDown(v, limit, period float32) float32 {
	if period <= 0 {
		return math.Min(v, limit)
	}
	for v > limit {
		v -= period
	}
	return v
}

// Tiles returns the vertical offsets of the two tape tiles for value v.
// Each tile is wrapped independently by two tile heights so that between
// them the visible window is always covered.
func (tc TapeConfig) Tiles(sf ScaleFactors, v float32) (tile1, tile2 float32) {
	raw := tc.rawOffset(sf, v)
	period := 2 * sf.Y * tc.TileHeight
	tile1 = wrapDown(raw, sf.Y*tc.TileHeight+sf.Y*tc.TileMargin, period)
	tile2 = wrapDown(raw, 2*sf.Y*tc.TileHeight+sf.Y*tc.TileMargin, period)
	return
}

// Ground returns the vertical offset of the ground marker, which scrolls
// with the tape until it reaches its limit.
func (tc TapeConfig) Ground(sf ScaleFactors, v float32) float32 {
	return math.Min(tc.rawOffset(sf, v), sf.Y*tc.GroundLimit)
}

// TapeLabel is a single label slot on a tape.
type TapeLabel struct {
	Value   float32
	Visible bool
}

// Labels returns the label values for v, from the top of the tape to the
// bottom, along with the vertical offset shared by all of them.
func (tc TapeConfig) Labels(sf ScaleFactors, v float32) (float32, []TapeLabel) {
	labels := make([]TapeLabel, tc.NumLabels)
	return tc.LabelsInto(sf, v, labels), labels
}

// LabelsInto is Labels for callers that provide the label slice; its
// length must be NumLabels.
func (tc TapeConfig) LabelsInto(sf ScaleFactors, v float32, labels []TapeLabel) float32 {
	step := int(tc.LabelStep)
	rounded := int(math.Round(v))
	base := rounded - rounded%step

	halfStep := tc.LabelStep / 2
	offset := wrapDown(tc.rawOffset(sf, v), sf.Y*tc.PixPerUnit*halfStep, sf.Y*tc.PixPerUnit*tc.LabelStep)
	// Note that this is a strict comparison: exactly at a multiple of the
	// step the labels are not bumped.
	if offset < 0 && v > float32(base) {
		base += step
	}

	half := tc.NumLabels / 2
	for i := range labels {
		value := float32(base + (half-i)*step)
		labels[i] = TapeLabel{
			Value:   value,
			Visible: value >= 0 && value <= tc.MaxLabel,
		}
	}
	return offset
}
