// instruments/pfd_hsi.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

var pfdHSILayout = []layoutElement{
	{name: "hsi.back", pos: [2]float32{60, 240}},
	{name: "hsi.face", pos: [2]float32{45, 240}},
	{name: "hsi.marks", pos: [2]float32{134, 219}},
	{name: "hsi.text", pos: [2]float32{149.5, 227.5}},
}

// pfdHSI is the heading arc at the bottom of the PFD. Nothing in it
// translates.
type pfdHSI struct{}

func (pfdHSI) init(p *panel, s renderer.Surface) {
	p.place(s, pfdHSILayout)
}

func (pfdHSI) update(p *panel, st *PFDState, s renderer.Surface) {
	p.element(s, "hsi.face").SetRotation(DialRotation(st.Heading))
	p.element(s, "hsi.text").SetText(headingText(st.Heading))
}

///////////////////////////////////////////////////////////////////////////
// VSI

const (
	pfdMaxClimbRate = 6.3

	// Design units of arrow travel per thousand feet per minute; the
	// scale is compressed beyond 1000 and again beyond 2000 fpm.
	vsiPixPerRate1 = 30
	vsiPixPerRate2 = 20
	vsiPixPerRate4 = 5
)

var pfdVSILayout = []layoutElement{
	{name: "vsi.scale", pos: [2]float32{275, 50}},
	{name: "vsi.arrow", pos: [2]float32{284, 124}},
}

type pfdVSI struct {
	arrow tracked
}

func (v *pfdVSI) init(p *panel, s renderer.Surface) {
	v.arrow = p.track("vsi.arrow")
	p.place(s, pfdVSILayout)
}

// VSIArrowDeflection returns how far the PFD's vertical speed arrow is
// displaced (upward positive) for the given climb rate, in design units.
func VSIArrowDeflection(climbRate float32) float32 {
	cr := math.Abs(climbRate)
	var d float32
	switch {
	case cr <= 1:
		d = vsiPixPerRate1 * cr
	case cr <= 2:
		d = vsiPixPerRate1 + vsiPixPerRate2*(cr-1)
	default:
		d = vsiPixPerRate1 + vsiPixPerRate2 + vsiPixPerRate4*(cr-2)
	}
	if climbRate < 0 {
		d = -d
	}
	return d
}

func (v *pfdVSI) update(p *panel, st *PFDState, s renderer.Surface) {
	v.arrow.Retarget(At(0, -p.scale.Y*VSIArrowDeflection(st.ClimbRate)))
}

func (v *pfdVSI) commit(s renderer.Surface) {
	v.arrow.commit(s)
}
