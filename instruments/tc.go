// instruments/tc.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
)

// TCState is the state of the turn coordinator.
type TCState struct {
	TurnRate float32 // degrees per second, [-6,6]
	SlipSkid float32 // degrees, [-15,15]
}

const (
	tcMaxTurnRate = 6
	tcMaxSlipSkid = 15
	// A standard rate turn (3 degrees/second) puts the mark on the 20
	// degree index.
	tcMarkPerTurnRate = 20.0 / 3.0
)

var (
	// The ball swings about a point well above the instrument.
	tcBallPivot = [2]float32{120, -36}

	tcLayout = []layoutElement{
		{name: "back"}, {name: "ball"}, {name: "face1"}, {name: "face2"}, {name: "mark"}, {name: "case"},
	}
)

// TC is the turn coordinator: the mark banks with turn rate and the ball
// shows slip or skid.
type TC struct {
	panel
	state TCState
}

func NewTC(lg *log.Logger) *TC {
	return &TC{panel: makePanel(KindTC, KindTC.String(), lg)}
}

func (t *TC) State() TCState { return t.state }

func (t *TC) SetTurnRate(rate float32) {
	t.state.TurnRate = t.saturate("turn_rate", rate, -tcMaxTurnRate, tcMaxTurnRate)
}

func (t *TC) SetSlipSkid(slip float32) {
	t.state.SlipSkid = t.saturate("slip_skid", slip, -tcMaxSlipSkid, tcMaxSlipSkid)
}

// BallPivot returns the point, in viewport units, that the ball rotates
// about.
func (t *TC) BallPivot() [2]float32 {
	return t.scale.Apply(tcBallPivot)
}

func (t *TC) Reinit(s renderer.Surface, viewport [2]float32) {
	t.resize(viewport)
	s.Clear()
	t.place(s, tcLayout)
	t.Update(s)
}

func (t *TC) Update(s renderer.Surface) {
	t.element(s, "mark").SetRotation(tcMarkPerTurnRate * t.state.TurnRate)
	t.element(s, "ball").SetRotation(DialRotation(t.state.SlipSkid))
}
