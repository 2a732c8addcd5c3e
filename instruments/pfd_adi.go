// instruments/pfd_adi.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/renderer"
)

const (
	pfdPixPerDeg       = 3.0
	pfdLadderBackLimit = 52.5
	pfdMaxSlip         = 20.0
	pfdMaxTurn         = 55.0
	pfdMaxBars         = 40.0
	pfdMaxDots         = 50.0
)

var pfdADILayout = []layoutElement{
	{name: "adi.back", pos: [2]float32{45, -85}},
	{name: "adi.ladd", pos: [2]float32{110, -175}},
	{name: "adi.roll", pos: [2]float32{45, 20}},
	{name: "adi.slip", pos: [2]float32{145.5, 68.5}},
	{name: "adi.turn", pos: [2]float32{142.5, 206}},
	{name: "adi.path", pos: [2]float32{135, 113}},
	{name: "adi.mark", pos: [2]float32{135, 113}},
	{name: "adi.barh", pos: [2]float32{149, 85}},
	{name: "adi.barv", pos: [2]float32{110, 124}},
	{name: "adi.doth", pos: [2]float32{145, 188}},
	{name: "adi.dotv", pos: [2]float32{213, 120}},
	{name: "adi.scaleh"},
	{name: "adi.scalev"},
	{name: "adi.mask"},
}

// pfdADI is the attitude part of the PFD.
type pfdADI struct {
	ladd, back, slip, turn, path, mark tracked
	barH, barV, dotH, dotV             tracked
}

func (a *pfdADI) init(p *panel, s renderer.Surface) {
	*a = pfdADI{
		ladd: p.track("adi.ladd"),
		back: p.track("adi.back"),
		slip: p.track("adi.slip"),
		turn: p.track("adi.turn"),
		path: p.track("adi.path"),
		mark: p.track("adi.mark"),
		barH: p.track("adi.barh"),
		barV: p.track("adi.barv"),
		dotH: p.track("adi.doth"),
		dotV: p.track("adi.dotv"),
	}
	p.place(s, pfdADILayout)
}

func (a *pfdADI) update(p *panel, st *PFDState, s renderer.Surface) {
	sf := p.scale
	rot := DialRotation(st.Roll)
	d := pfdPixPerDeg * st.Pitch

	// Ladder and background
	p.element(s, "adi.ladd").SetRotation(rot)
	a.ladd.Retarget(DialOffset(sf, d, st.Roll))
	p.element(s, "adi.back").SetRotation(rot)
	a.back.Retarget(ClampedDialOffset(sf, d, pfdLadderBackLimit, st.Roll))

	p.element(s, "adi.roll").SetRotation(rot)

	// The slip indicator sits under the roll pointer, so it moves along
	// the rolled horizontal.
	p.element(s, "adi.slip").SetRotation(rot)
	a.slip.Retarget(AlongAxisOffset(sf, pfdMaxSlip*st.SlipSkid, st.Roll, true))

	a.turn.Retarget(At(sf.X*pfdMaxTurn*st.TurnRate, 0))

	// Flight director bars and deviation dots; the scales behind the
	// dots come and go with them.
	p.element(s, "adi.barh").SetVisible(st.BarH.Visible)
	a.barH.Retarget(st.BarH.HorizontalOffset(sf, pfdMaxBars))
	p.element(s, "adi.barv").SetVisible(st.BarV.Visible)
	a.barV.Retarget(st.BarV.VerticalOffset(sf, pfdMaxBars))

	p.element(s, "adi.doth").SetVisible(st.DotH.Visible)
	p.element(s, "adi.scaleh").SetVisible(st.DotH.Visible)
	a.dotH.Retarget(st.DotH.HorizontalOffset(sf, pfdMaxDots))
	p.element(s, "adi.dotv").SetVisible(st.DotV.Visible)
	p.element(s, "adi.scalev").SetVisible(st.DotV.Visible)
	a.dotV.Retarget(st.DotV.VerticalOffset(sf, pfdMaxDots))

	fp := st.FlightPath
	p.element(s, "adi.path").SetVisible(fp.Visible)
	a.path.Retarget(fp.Offset(sf, pfdPixPerDeg))
	p.element(s, "adi.mark").SetVisible(fp.InvalidVisible())
	a.mark.Retarget(fp.InvalidOffset(sf, pfdPixPerDeg))
}

func (a *pfdADI) commit(s renderer.Surface) {
	commitAll(s, &a.ladd, &a.back, &a.slip, &a.turn, &a.path, &a.mark, &a.barH, &a.barV, &a.dotH, &a.dotV)
}
