// cmd/qfisim/panels.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/mmp/qfi/instruments"
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
)

// Panel is a single instrument along with the scene that it is drawn
// into. Each tick the instrument updates into the panel's command
// buffer, which is then executed on the scene (and possibly captured).
// The command buffer comes from the renderer's pool; Close returns it.
type Panel struct {
	Name       string
	Instrument instruments.Instrument
	Viewport   [2]float32
	Scene      *renderer.Scene
	Stats      renderer.Stats

	cb     *renderer.CommandBuffer
	reinit bool
	lg     *log.Logger
}

func NewPanel(pc PanelConfig, lg *log.Logger) (*Panel, error) {
	lg = lg.With("panel", pc.Name)
	inst, err := instruments.New(pc.Kind, lg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pc.Name, err)
	}
	return &Panel{
		Name:       pc.Name,
		Instrument: inst,
		Viewport:   pc.Viewport,
		Scene:      renderer.NewScene(),
		cb:         renderer.GetCommandBuffer(),
		reinit:     true,
		lg:         lg,
	}, nil
}

// Resize sets the panel's viewport; the instrument is reinitialized at
// the next Step.
func (p *Panel) Resize(viewport [2]float32) {
	if viewport != p.Viewport {
		p.lg.Debugf("resize from %v to %v", p.Viewport, viewport)
		p.Viewport = viewport
		p.reinit = true
	}
}

// Apply sets the instrument's state from the flight state.
func (p *Panel) Apply(st FlightState) {
	v, vis := st.Values, st.Visible
	switch inst := p.Instrument.(type) {
	case *instruments.ADI:
		inst.SetRoll(v[chRoll])
		inst.SetPitch(v[chPitch])

	case *instruments.ALT:
		inst.SetAltitude(v[chAltitude])
		inst.SetPressure(st.PressureInHg())

	case *instruments.VSI:
		inst.SetClimbRate(v[chClimbRate])

	case *instruments.TC:
		inst.SetTurnRate(v[chTurnRate])
		inst.SetSlipSkid(v[chSlipSkid])

	case *instruments.NAV:
		inst.SetHeading(v[chHeading])
		inst.SetHeadingBug(v[chHeadingBug])
		inst.SetCourse(v[chCourse])
		inst.SetBearing(v[chBearing], vis[indBearing])
		inst.SetDeviation(v[chDeviation], vis[indDeviation])
		inst.SetDistance(v[chDistance], vis[indDistance])

	case *instruments.PFD:
		inst.SetRoll(v[chRoll])
		inst.SetPitch(v[chPitch])
		inst.SetFlightPathMarker(v[chAOA], v[chSideslip], vis[indFlightPath])
		// The PFD's slip and turn indications are fractions of full
		// scale; full scale matches the turn coordinator's.
		inst.SetSlipSkid(v[chSlipSkid] / 15)
		inst.SetTurnRate(v[chTurnRate] / 6)
		inst.SetBarH(v[chBarH], vis[indBarH])
		inst.SetBarV(v[chBarV], vis[indBarV])
		inst.SetDotH(v[chDotH], vis[indDotH])
		inst.SetDotV(v[chDotV], vis[indDotV])
		inst.SetAltitude(v[chAltitude])
		inst.SetPressure(v[chPressure], st.PressureUnit)
		inst.SetAirspeed(v[chAirspeed])
		inst.SetMachNo(v[chMach])
		inst.SetHeading(v[chHeading])
		inst.SetClimbRate(v[chClimbRate] / 1000)
	}
}

// Step updates the instrument (reinitializing it first if needed) and
// executes the resulting commands on the panel's scene.
func (p *Panel) Step() error {
	p.cb.Reset()
	if p.reinit {
		p.Instrument.Reinit(p.cb, p.Viewport)
		p.reinit = false
	} else {
		p.Instrument.Update(p.cb)
	}

	stats, err := p.cb.Execute(p.Scene)
	p.Stats.Merge(stats)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// Close returns the panel's command buffer to the pool; the panel can't
// be stepped afterward.
func (p *Panel) Close() {
	if p.cb != nil {
		renderer.ReturnCommandBuffer(p.cb)
		p.cb = nil
	}
}
