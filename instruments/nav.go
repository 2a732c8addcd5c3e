// instruments/nav.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

// NAVState is the state of the navigation display. All angles are
// magnetic headings in degrees, [0,360).
type NAVState struct {
	Heading       float32
	HeadingBug    float32
	Course        float32
	Bearing       float32
	Deviation     Deflection // course deviation, full scale either way
	Distance      float32    // nm, [0,9999]
	BearingValid  bool
	DistanceValid bool
}

const (
	navPixPerDev   = 52.5
	navMaxDistance = 9999
)

var (
	// The text elements are positioned by their centers.
	navCourseTextCenter   = [2]float32{50, 25}
	navHeadingTextCenter  = [2]float32{250, 25}
	navDistanceTextCenter = [2]float32{250, 275}

	navLayout = []layoutElement{
		{name: "back"},
		{name: "dev_scale"},
		{name: "dev_bar"},
		{name: "brg_arrow"},
		{name: "crs_arrow"},
		{name: "mask"},
		{name: "hdg_scale"},
		{name: "hdg_bug"},
		{name: "crs_text", pos: navCourseTextCenter},
		{name: "hdg_text", pos: navHeadingTextCenter},
		{name: "dme_text", pos: navDistanceTextCenter},
		{name: "mark"},
	}
)

// NAV is the standalone navigation display: a heading-up compass card
// with a heading bug, a course arrow and deviation bar, and a bearing
// pointer, along with course, heading, and DME readouts.
type NAV struct {
	panel
	state  NAVState
	devBar tracked
}

func NewNAV(lg *log.Logger) *NAV {
	return &NAV{
		panel: makePanel(KindNAV, KindNAV.String(), lg),
		state: NAVState{
			Deviation:     Deflection{Visible: true},
			BearingValid:  true,
			DistanceValid: true,
		},
	}
}

func (n *NAV) State() NAVState { return n.state }

func (n *NAV) SetHeading(hdg float32)    { n.state.Heading = math.NormalizeHeading(hdg) }
func (n *NAV) SetHeadingBug(hdg float32) { n.state.HeadingBug = math.NormalizeHeading(hdg) }
func (n *NAV) SetCourse(crs float32)     { n.state.Course = math.NormalizeHeading(crs) }

func (n *NAV) SetBearing(brg float32, visible bool) {
	n.state.Bearing = math.NormalizeHeading(brg)
	n.state.BearingValid = visible
}

func (n *NAV) SetDeviation(dev float32, visible bool) {
	n.state.Deviation = Deflection{Value: n.saturate("deviation", dev, -1, 1), Visible: visible}
}

func (n *NAV) SetDistance(nm float32, visible bool) {
	n.state.Distance = n.saturate("distance", nm, 0, navMaxDistance)
	n.state.DistanceValid = visible
}

func (n *NAV) Reinit(s renderer.Surface, viewport [2]float32) {
	n.resize(viewport)
	n.devBar = n.track("dev_bar")

	s.Clear()
	n.place(s, navLayout)
	n.Update(s)
}

func (n *NAV) Update(s renderer.Surface) {
	st := &n.state
	crs := math.RelativeHeading(st.Course, st.Heading)

	n.element(s, "hdg_scale").SetRotation(DialRotation(st.Heading))
	n.element(s, "hdg_bug").SetRotation(math.RelativeHeading(st.HeadingBug, st.Heading))
	n.element(s, "crs_arrow").SetRotation(crs)
	n.element(s, "dev_scale").SetRotation(crs)

	brg := n.element(s, "brg_arrow")
	brg.SetRotation(math.RelativeHeading(st.Bearing, st.Heading))
	brg.SetVisible(st.BearingValid)

	bar := n.element(s, "dev_bar")
	bar.SetRotation(crs)
	bar.SetVisible(st.Deviation.Visible)
	if st.Deviation.Visible {
		n.devBar.Retarget(AlongAxisOffset(n.scale, navPixPerDev*st.Deviation.Value, crs, false))
	} else {
		n.devBar.Retarget(Held)
	}

	n.element(s, "crs_text").SetText(courseText(st.Course))
	n.element(s, "hdg_text").SetText(navHeadingText(st.Heading))
	n.element(s, "dme_text").SetText(distanceText(st.Distance, st.DistanceValid))

	n.devBar.commit(s)
}
