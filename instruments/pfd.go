// instruments/pfd.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"fmt"
	"strings"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

// PressureUnit is the unit the PFD altimeter setting is shown in.
type PressureUnit int

const (
	PressureSTD PressureUnit = iota // standard pressure; the setting isn't shown
	PressureMB
	PressureIN
)

func (u PressureUnit) String() string {
	switch u {
	case PressureMB:
		return "MB"
	case PressureIN:
		return "IN"
	default:
		return "STD"
	}
}

// ParsePressureUnit returns the PressureUnit with the given name ("std",
// "mb", or "in"); case is ignored.
func ParsePressureUnit(s string) (PressureUnit, error) {
	for _, u := range []PressureUnit{PressureSTD, PressureMB, PressureIN} {
		if strings.EqualFold(s, u.String()) {
			return u, nil
		}
	}
	return PressureSTD, fmt.Errorf("%s: %w", s, ErrUnknownPressureUnit)
}

func (u PressureUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *PressureUnit) UnmarshalText(b []byte) error {
	var err error
	*u, err = ParsePressureUnit(string(b))
	return err
}

// PFDState is all of the state shown by the primary flight display.
type PFDState struct {
	// Attitude
	Roll       float32 // degrees, [-180,180]
	Pitch      float32 // degrees, [-90,90]
	FlightPath FlightPath
	SlipSkid   float32 // [-1,1]
	TurnRate   float32 // [-1,1]
	BarH, BarV Deflection
	DotH, DotV Deflection

	Altitude     float32 // feet, [0,99999]
	Pressure     float32 // [0,2000]
	PressureUnit PressureUnit

	Airspeed float32 // knots, [0,9999]
	Mach     float32 // [0,99.9]

	Heading   float32 // degrees, [0,360)
	ClimbRate float32 // thousands of feet per minute, [-6.3,6.3]
}

func defaultPFDState() PFDState {
	return PFDState{
		FlightPath: FlightPath{Valid: true, Visible: true},
		BarH:       Deflection{Visible: true},
		BarV:       Deflection{Visible: true},
		DotH:       Deflection{Visible: true},
		DotV:       Deflection{Visible: true},
	}
}

// PFD is a primary flight display: an attitude director with flight
// director bars, flight path marker, and deviation dots in the center,
// airspeed and altitude tapes on the sides, a heading arc below and a
// vertical speed scale on the right. All of the parts share a single
// surface.
type PFD struct {
	panel
	state PFDState

	adi pfdADI
	alt pfdALT
	asi pfdASI
	hsi pfdHSI
	vsi pfdVSI
}

func NewPFD(lg *log.Logger) *PFD {
	return &PFD{
		panel: makePanel(KindPFD, KindPFD.String(), lg),
		state: defaultPFDState(),
	}
}

func (p *PFD) State() PFDState { return p.state }

func (p *PFD) SetRoll(roll float32) {
	p.state.Roll = p.saturate("roll", roll, -180, 180)
}

func (p *PFD) SetPitch(pitch float32) {
	p.state.Pitch = p.saturate("pitch", pitch, -90, 90)
}

// SetFlightPathMarker sets the flight path marker's angle of attack and
// sideslip angle, in degrees. If either is out of range, the marker is
// drawn as invalid.
func (p *PFD) SetFlightPathMarker(aoa, sideslip float32, visible bool) {
	p.state.FlightPath = SetFlightPath(aoa, sideslip, visible)
	if !p.state.FlightPath.Valid {
		p.lg.Debugf("flight path marker invalid: aoa %f sideslip %f", aoa, sideslip)
	}
}

func (p *PFD) SetSlipSkid(slip float32) {
	p.state.SlipSkid = p.saturate("slip_skid", slip, -1, 1)
}

func (p *PFD) SetTurnRate(rate float32) {
	p.state.TurnRate = p.saturate("turn_rate", rate, -1, 1)
}

func (p *PFD) SetBarH(v float32, visible bool) {
	p.state.BarH = Deflection{Value: p.saturate("bar_h", v, -1, 1), Visible: visible}
}

func (p *PFD) SetBarV(v float32, visible bool) {
	p.state.BarV = Deflection{Value: p.saturate("bar_v", v, -1, 1), Visible: visible}
}

func (p *PFD) SetDotH(v float32, visible bool) {
	p.state.DotH = Deflection{Value: p.saturate("dot_h", v, -1, 1), Visible: visible}
}

func (p *PFD) SetDotV(v float32, visible bool) {
	p.state.DotV = Deflection{Value: p.saturate("dot_v", v, -1, 1), Visible: visible}
}

func (p *PFD) SetAltitude(alt float32) {
	p.state.Altitude = p.saturate("altitude", alt, 0, maxAltitude)
}

// SetPressure sets the altimeter setting; units other than MB and IN
// are taken to be STD.
func (p *PFD) SetPressure(pressure float32, unit PressureUnit) {
	p.state.Pressure = p.saturate("pressure", pressure, 0, maxPressure)
	if unit != PressureMB && unit != PressureIN {
		unit = PressureSTD
	}
	p.state.PressureUnit = unit
}

func (p *PFD) SetAirspeed(ias float32) {
	p.state.Airspeed = p.saturate("airspeed", ias, 0, maxAirspeed)
}

func (p *PFD) SetMachNo(mach float32) {
	p.state.Mach = p.saturate("mach", mach, 0, maxMach)
}

func (p *PFD) SetHeading(hdg float32) {
	p.state.Heading = math.NormalizeHeading(hdg)
}

func (p *PFD) SetClimbRate(cr float32) {
	p.state.ClimbRate = p.saturate("climb_rate", cr, -pfdMaxClimbRate, pfdMaxClimbRate)
}

var (
	pfdBackLayout = []layoutElement{{name: "back"}}
	pfdMaskLayout = []layoutElement{{name: "mask"}}
)

// Reinit rebuilds all of the PFD's elements for the given viewport and
// draws the current state. Offsets start from zero; the state is
// unchanged.
func (p *PFD) Reinit(s renderer.Surface, viewport [2]float32) {
	p.resize(viewport)

	s.Clear()
	p.place(s, pfdBackLayout)
	p.adi.init(&p.panel, s)
	p.alt.init(&p.panel, s)
	p.asi.init(&p.panel, s)
	p.hsi.init(&p.panel, s)
	p.vsi.init(&p.panel, s)
	p.place(s, pfdMaskLayout)

	p.Update(s)
}

// Update repositions the PFD's elements for the current state.
func (p *PFD) Update(s renderer.Surface) {
	p.adi.update(&p.panel, &p.state, s)
	p.alt.update(&p.panel, &p.state, s)
	p.asi.update(&p.panel, &p.state, s)
	p.hsi.update(&p.panel, &p.state, s)
	p.vsi.update(&p.panel, &p.state, s)

	p.adi.commit(s)
	p.alt.commit(s)
	p.asi.commit(s)
	p.vsi.commit(s)
}
