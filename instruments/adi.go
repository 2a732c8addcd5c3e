// instruments/adi.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
)

// ADIState is the state of the standalone attitude director, in degrees.
type ADIState struct {
	Roll  float32 // [-180,180]
	Pitch float32 // [-25,25]
}

const (
	adiPixPerDeg = 1.7
	adiMaxPitch  = 25
)

var adiLayout = []layoutElement{{name: "back"}, {name: "face"}, {name: "ring"}, {name: "case"}}

// ADI is the standalone attitude director indicator: the face (the pitch
// ladder) translates with pitch and everything but the case rotates with
// roll.
type ADI struct {
	panel
	state ADIState
	face  tracked
}

func NewADI(lg *log.Logger) *ADI {
	return &ADI{panel: makePanel(KindADI, KindADI.String(), lg)}
}

func (a *ADI) State() ADIState { return a.state }

func (a *ADI) SetRoll(roll float32) {
	a.state.Roll = a.saturate("roll", roll, -180, 180)
}

func (a *ADI) SetPitch(pitch float32) {
	a.state.Pitch = a.saturate("pitch", pitch, -adiMaxPitch, adiMaxPitch)
}

func (a *ADI) Reinit(s renderer.Surface, viewport [2]float32) {
	a.resize(viewport)
	a.face = a.track("face")

	s.Clear()
	a.place(s, adiLayout)
	a.Update(s)
}

func (a *ADI) Update(s renderer.Surface) {
	rot := DialRotation(a.state.Roll)
	for _, name := range []string{"back", "face", "ring"} {
		a.element(s, name).SetRotation(rot)
	}

	a.face.Retarget(DialOffset(a.scale, adiPixPerDeg*a.state.Pitch, a.state.Roll))
	a.face.commit(s)
}
