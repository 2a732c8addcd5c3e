// instruments/vsi.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
)

const vsiMaxClimbRate = 2000

var vsiLayout = []layoutElement{{name: "face"}, {name: "hand"}, {name: "case"}}

// VSI is the standalone vertical speed indicator; its hand rotates with
// climb rate in feet per minute, [-2000,2000].
type VSI struct {
	panel
	climbRate float32
}

func NewVSI(lg *log.Logger) *VSI {
	return &VSI{panel: makePanel(KindVSI, KindVSI.String(), lg)}
}

func (v *VSI) ClimbRate() float32 { return v.climbRate }

func (v *VSI) SetClimbRate(cr float32) {
	v.climbRate = v.saturate("climb_rate", cr, -vsiMaxClimbRate, vsiMaxClimbRate)
}

func (v *VSI) Reinit(s renderer.Surface, viewport [2]float32) {
	v.resize(viewport)
	s.Clear()
	v.place(s, vsiLayout)
	v.Update(s)
}

func (v *VSI) Update(s renderer.Surface) {
	v.element(s, "hand").SetRotation(0.086 * v.climbRate)
}
