// instruments/pfd_tapes.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"strconv"

	"github.com/mmp/qfi/renderer"
)

const (
	maxAltitude = 99999
	maxPressure = 2000
	maxAirspeed = 9999
	maxMach     = 99.9
)

// tape is one of the PFD's scrolling tapes: two tiles and a set of
// labels that all scroll together.
type tape struct {
	cfg            TapeConfig
	prefix         string
	labelText      func(float32) string
	scale1, scale2 tracked
	labels         []tracked
	values         []TapeLabel
}

func makeTape(p *panel, cfg TapeConfig, prefix string, labelText func(float32) string) tape {
	t := tape{
		cfg:       cfg,
		prefix:    prefix,
		labelText: labelText,
		scale1:    p.track(prefix + ".scale1"),
		scale2:    p.track(prefix + ".scale2"),
		labels:    make([]tracked, cfg.NumLabels),
		values:    make([]TapeLabel, cfg.NumLabels),
	}
	for i := range t.labels {
		t.labels[i] = p.track(t.labelName(i))
	}
	return t
}

func (t *tape) labelName(i int) string {
	return t.prefix + ".label" + strconv.Itoa(i+1)
}

func (t *tape) update(p *panel, v float32, s renderer.Surface) {
	tile1, tile2 := t.cfg.Tiles(p.scale, v)
	t.scale1.Retarget(At(0, tile1))
	t.scale2.Retarget(At(0, tile2))

	offset := t.cfg.LabelsInto(p.scale, v, t.values)
	for i, l := range t.values {
		t.labels[i].Retarget(At(0, offset))

		e := p.element(s, t.labelName(i))
		e.SetVisible(l.Visible)
		if l.Visible {
			e.SetText(t.labelText(l.Value))
		}
	}
}

func (t *tape) commit(s renderer.Surface) {
	commitAll(s, &t.scale1, &t.scale2)
	for i := range t.labels {
		t.labels[i].commit(s)
	}
}

///////////////////////////////////////////////////////////////////////////
// ALT

var pfdALTLayout = []layoutElement{
	{name: "alt.back", pos: [2]float32{231, 37.5}},
	{name: "alt.scale1", pos: [2]float32{231, -174.5}},
	{name: "alt.scale2", pos: [2]float32{231, -474.5}},
	{name: "alt.label1", pos: [2]float32{250, 50}},
	{name: "alt.label2", pos: [2]float32{250, 125}},
	{name: "alt.label3", pos: [2]float32{250, 200}},
	{name: "alt.ground", pos: [2]float32{231.5, 124.5}},
	{name: "alt.frame", pos: [2]float32{225, 110}},
	{name: "alt.altitude", pos: [2]float32{254, 126}},
	{name: "alt.pressure", pos: [2]float32{254, 225}},
}

// pfdALT is the altitude tape along with the altitude and altimeter
// setting readouts.
type pfdALT struct {
	tape   tape
	ground tracked
}

func (a *pfdALT) init(p *panel, s renderer.Surface) {
	*a = pfdALT{
		tape:   makeTape(p, AltitudeTape, "alt", altitudeLabelText),
		ground: p.track("alt.ground"),
	}
	p.place(s, pfdALTLayout)
}

func (a *pfdALT) update(p *panel, st *PFDState, s renderer.Surface) {
	p.element(s, "alt.altitude").SetText(altitudeText(st.Altitude))
	a.tape.update(p, st.Altitude, s)
	a.ground.Retarget(At(0, a.tape.cfg.Ground(p.scale, st.Altitude)))
	p.element(s, "alt.pressure").SetText(pressureText(st.Pressure, st.PressureUnit))
}

func (a *pfdALT) commit(s renderer.Surface) {
	a.tape.commit(s)
	a.ground.commit(s)
}

///////////////////////////////////////////////////////////////////////////
// ASI

var pfdASILayout = []layoutElement{
	{name: "asi.back", pos: [2]float32{25, 37.5}},
	{name: "asi.scale1", pos: [2]float32{56, -174.5}},
	{name: "asi.scale2", pos: [2]float32{56, -474.5}},
	{name: "asi.label1", pos: [2]float32{43, 35}},
	{name: "asi.label2", pos: [2]float32{43, 65}},
	{name: "asi.label3", pos: [2]float32{43, 95}},
	{name: "asi.label4", pos: [2]float32{43, 125}},
	{name: "asi.label5", pos: [2]float32{43, 155}},
	{name: "asi.label6", pos: [2]float32{43, 185}},
	{name: "asi.label7", pos: [2]float32{43, 215}},
	{name: "asi.frame", pos: [2]float32{0, 110}},
	{name: "asi.airspeed", pos: [2]float32{40, 126}},
	{name: "asi.machno", pos: [2]float32{43, 225}},
}

// pfdASI is the airspeed tape along with the airspeed and Mach number
// readouts.
type pfdASI struct {
	tape tape
}

func (a *pfdASI) init(p *panel, s renderer.Surface) {
	a.tape = makeTape(p, AirspeedTape, "asi", airspeedLabelText)
	p.place(s, pfdASILayout)
}

func (a *pfdASI) update(p *panel, st *PFDState, s renderer.Surface) {
	p.element(s, "asi.airspeed").SetText(airspeedText(st.Airspeed))
	p.element(s, "asi.machno").SetText(machText(st.Mach))
	a.tape.update(p, st.Airspeed, s)
}

func (a *pfdASI) commit(s renderer.Surface) {
	a.tape.commit(s)
}
