// cmd/qfisim/script.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"sort"

	"github.com/mmp/qfi/instruments"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/util"
)

// channel identifies one of the continuously-varying values of the
// flight state; the values of channels are interpolated between
// keyframes.
type channel int

const (
	chRoll       channel = iota // degrees
	chPitch                     // degrees
	chAOA                       // degrees
	chSideslip                  // degrees
	chSlipSkid                  // degrees of ball deflection, [-15,15]
	chTurnRate                  // degrees per second, [-6,6]
	chBarH                      // flight director bars, [-1,1]
	chBarV                      // [-1,1]
	chDotH                      // deviation dots, [-1,1]
	chDotV                      // [-1,1]
	chAltitude                  // feet
	chPressure                  // in the state's PressureUnit
	chAirspeed                  // knots
	chMach                      // Mach number
	chHeading                   // degrees
	chHeadingBug                // degrees
	chCourse                    // degrees
	chBearing                   // degrees
	chDeviation                 // course deviation, [-1,1]
	chDistance                  // nm
	chClimbRate                 // feet per minute
	numChannels
)

var headingChannels = []channel{chHeading, chHeadingBug, chCourse, chBearing}

// indicator identifies an element of the flight state that can be
// switched on and off.
type indicator int

const (
	indFlightPath indicator = iota
	indBarH
	indBarV
	indDotH
	indDotV
	indBearing
	indDeviation
	indDistance
	numIndicators
)

var indicatorNames = [numIndicators]string{
	"flight_path", "bar_h", "bar_v", "dot_h", "dot_v", "bearing", "deviation", "distance",
}

func parseIndicator(s string) (indicator, error) {
	for i, n := range indicatorNames {
		if n == s {
			return indicator(i), nil
		}
	}
	return 0, fmt.Errorf("%s: %w%s", s, ErrUnknownIndicator, util.DidYouMean(s, slices.Values(indicatorNames[:])))
}

// Keyframe is a single entry of a flight script. Fields that are not
// given keep the value they had at the previous keyframe.
type Keyframe struct {
	T float32 `json:"t"` // seconds

	Roll       *float32 `json:"roll"`
	Pitch      *float32 `json:"pitch"`
	AOA        *float32 `json:"aoa"`
	Sideslip   *float32 `json:"sideslip"`
	SlipSkid   *float32 `json:"slip_skid"`
	TurnRate   *float32 `json:"turn_rate"`
	BarH       *float32 `json:"bar_h"`
	BarV       *float32 `json:"bar_v"`
	DotH       *float32 `json:"dot_h"`
	DotV       *float32 `json:"dot_v"`
	Altitude   *float32 `json:"altitude"`
	Pressure   *float32 `json:"pressure"`
	Airspeed   *float32 `json:"airspeed"`
	Mach       *float32 `json:"mach"`
	Heading    *float32 `json:"heading"`
	HeadingBug *float32 `json:"heading_bug"`
	Course     *float32 `json:"course"`
	Bearing    *float32 `json:"bearing"`
	Deviation  *float32 `json:"deviation"`
	Distance   *float32 `json:"distance"`
	ClimbRate  *float32 `json:"climb_rate"`

	PressureUnit *instruments.PressureUnit `json:"pressure_unit"`
	Visible      map[string]bool           `json:"visible"`
	Viewport     *[2]float32               `json:"viewport"`
}

func (k *Keyframe) channels() [numChannels]*float32 {
	return [numChannels]*float32{
		chRoll:       k.Roll,
		chPitch:      k.Pitch,
		chAOA:        k.AOA,
		chSideslip:   k.Sideslip,
		chSlipSkid:   k.SlipSkid,
		chTurnRate:   k.TurnRate,
		chBarH:       k.BarH,
		chBarV:       k.BarV,
		chDotH:       k.DotH,
		chDotV:       k.DotV,
		chAltitude:   k.Altitude,
		chPressure:   k.Pressure,
		chAirspeed:   k.Airspeed,
		chMach:       k.Mach,
		chHeading:    k.Heading,
		chHeadingBug: k.HeadingBug,
		chCourse:     k.Course,
		chBearing:    k.Bearing,
		chDeviation:  k.Deviation,
		chDistance:   k.Distance,
		chClimbRate:  k.ClimbRate,
	}
}

// FlightState is the complete state that is applied to the instruments
// at a single instant.
type FlightState struct {
	Values       [numChannels]float32
	PressureUnit instruments.PressureUnit
	Visible      [numIndicators]bool
}

func defaultFlightState() FlightState {
	s := FlightState{PressureUnit: instruments.PressureIN}
	s.Values[chPressure] = 29.92
	for i := range s.Visible {
		s.Visible[i] = true
	}
	return s
}

// PressureInHg returns the altimeter setting in inches of mercury.
func (s FlightState) PressureInHg() float32 {
	switch s.PressureUnit {
	case instruments.PressureMB:
		return s.Values[chPressure] / 33.8639
	case instruments.PressureIN:
		return s.Values[chPressure]
	default:
		return 29.92
	}
}

type scriptFrame struct {
	T        float32
	State    FlightState
	Viewport [2]float32 // zero if the keyframe doesn't resize the panels
}

// Script is a parsed flight script: keyframes with every value resolved.
type Script struct {
	frames []scriptFrame
}

func LoadScript(fn string) (*Script, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	s, err := ParseScript(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return s, nil
}

// ParseScript parses a JSON flight script of the form
// {"keyframes": [{"t": 0, "roll": 10, ...}, ...]}.
func ParseScript(b []byte) (*Script, error) {
	var file struct {
		Keyframes []Keyframe `json:"keyframes"`
	}
	if err := util.UnmarshalJSONBytes(b, &file); err != nil {
		return nil, err
	}
	if len(file.Keyframes) == 0 {
		return nil, ErrNoKeyframes
	}

	sc := &Script{}
	state := defaultFlightState()
	for i, kf := range file.Keyframes {
		if i > 0 && kf.T <= file.Keyframes[i-1].T {
			return nil, fmt.Errorf("keyframe %d: t=%.3f: %w", i, kf.T, ErrKeyframeOrder)
		}

		for ch, v := range kf.channels() {
			if v != nil {
				state.Values[ch] = *v
			}
		}
		if kf.PressureUnit != nil {
			state.PressureUnit = *kf.PressureUnit
		}
		// Sort so that the reported error is deterministic.
		for _, name := range slices.Sorted(maps.Keys(kf.Visible)) {
			ind, err := parseIndicator(name)
			if err != nil {
				return nil, fmt.Errorf("keyframe %d: %w", i, err)
			}
			state.Visible[ind] = kf.Visible[name]
		}

		f := scriptFrame{T: kf.T, State: state}
		if kf.Viewport != nil {
			if kf.Viewport[0] <= 0 || kf.Viewport[1] <= 0 {
				return nil, fmt.Errorf("keyframe %d: %v: %w", i, *kf.Viewport, ErrInvalidViewport)
			}
			f.Viewport = *kf.Viewport
		}
		sc.frames = append(sc.frames, f)
	}
	return sc, nil
}

func (sc *Script) Duration() float32 {
	return sc.frames[len(sc.frames)-1].T
}

// At returns the flight state at time t along with the index of the last
// keyframe at or before t. Continuous values are linearly interpolated,
// headings the short way around; everything else steps at keyframes.
func (sc *Script) At(t float32) (FlightState, int) {
	// Index of the first frame after t.
	n := sort.Search(len(sc.frames), func(i int) bool { return sc.frames[i].T > t })
	if n == 0 {
		return sc.frames[0].State, 0
	}
	if n == len(sc.frames) {
		return sc.frames[n-1].State, n - 1
	}

	f0, f1 := sc.frames[n-1], sc.frames[n]
	x := (t - f0.T) / (f1.T - f0.T)

	s := f0.State
	for ch := range s.Values {
		s.Values[ch] = math.Lerp(x, f0.State.Values[ch], f1.State.Values[ch])
	}
	for _, ch := range headingChannels {
		h0, h1 := f0.State.Values[ch], f1.State.Values[ch]
		d := math.NormalizeHeading(h1 - h0)
		if d > 180 {
			d -= 360
		}
		s.Values[ch] = math.NormalizeHeading(h0 + x*d)
	}
	return s, n - 1
}

// Resize returns the viewport size given at the i'th keyframe and whether
// there was one.
func (sc *Script) Resize(i int) ([2]float32, bool) {
	vp := sc.frames[i].Viewport
	return vp, vp != [2]float32{}
}
