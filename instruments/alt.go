// instruments/alt.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

// ALTState is the state of the standalone altimeter.
type ALTState struct {
	Altitude float32 // feet, [0,99999]
	Pressure float32 // inHg, [28,31.5]
}

const (
	altMinPressure = 28
	altMaxPressure = 31.5
)

var altLayout = []layoutElement{
	{name: "face1"}, {name: "face2"}, {name: "face3"}, {name: "hand1"}, {name: "hand2"}, {name: "case"},
}

// ALT is the standalone three-pointer altimeter. The Kollsman window
// (face1) rotates with the pressure setting, the short hand (hand1) shows
// thousands of feet, the long hand (hand2) hundreds, and face3 shows
// tens of thousands.
type ALT struct {
	panel
	state ALTState
}

func NewALT(lg *log.Logger) *ALT {
	return &ALT{
		panel: makePanel(KindALT, KindALT.String(), lg),
		state: ALTState{Pressure: altMinPressure},
	}
}

func (a *ALT) State() ALTState { return a.state }

func (a *ALT) SetAltitude(alt float32) {
	a.state.Altitude = a.saturate("altitude", alt, 0, maxAltitude)
}

func (a *ALT) SetPressure(p float32) {
	a.state.Pressure = a.saturate("pressure", p, altMinPressure, altMaxPressure)
}

func (a *ALT) Reinit(s renderer.Surface, viewport [2]float32) {
	a.resize(viewport)
	s.Clear()
	a.place(s, altLayout)
	a.Update(s)
}

func (a *ALT) Update(s renderer.Surface) {
	alt := a.state.Altitude
	a.element(s, "hand1").SetRotation(0.036 * alt)
	a.element(s, "hand2").SetRotation(0.36 * float32(int(math.Ceil(alt+0.5))%1000))
	a.element(s, "face1").SetRotation(-100 * (a.state.Pressure - altMinPressure))
	a.element(s, "face3").SetRotation(0.0036 * alt)
}
