// cmd/qfisim/sim_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mmp/qfi/instruments"
	"github.com/mmp/qfi/renderer"
	"github.com/mmp/qfi/util"
)

const testScript = `{"keyframes": [
  {"t": 0, "roll": 0, "pitch": 0, "climb_rate": 0, "altitude": 500, "airspeed": 100},
  {"t": 0.5, "viewport": [480, 480]},
  {"t": 1, "roll": 30, "pitch": 5, "climb_rate": 1000, "altitude": 1500, "airspeed": 140,
   "visible": {"bar_h": false}}
]}`

func testConfig() *Config {
	return &Config{
		Panels: []PanelConfig{
			{Name: "vsi", Kind: instruments.KindVSI, Viewport: [2]float32{240, 240}},
			{Name: "adi", Kind: instruments.KindADI, Viewport: [2]float32{240, 240}},
			{Name: "pfd", Kind: instruments.KindPFD, Viewport: [2]float32{300, 300}},
		},
		TickRate: 10,
	}
}

func runTestSim(t *testing.T, cw *util.CaptureWriter[Frame]) *Simulator {
	t.Helper()
	sim, err := NewSimulator(testConfig(), mustParseScript(t, testScript), nil)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if cw != nil {
		sim.Record(cw)
	}
	if err := sim.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return sim
}

func node(t *testing.T, s *renderer.Scene, id renderer.ElementID) renderer.Node {
	t.Helper()
	n, ok := s.Node(id)
	if !ok {
		t.Fatalf("%s: missing from scene", id)
	}
	return n
}

func TestSimulatorRun(t *testing.T) {
	sim := runTestSim(t, nil)
	vsi, adi, pfd := sim.Panels[0], sim.Panels[1], sim.Panels[2]

	if r := node(t, vsi.Scene, "vsi.hand").Rotation; !approx(r, 86) {
		t.Errorf("got VSI hand rotation %f, expected 86", r)
	}
	if r := node(t, adi.Scene, "adi.face").Rotation; !approx(r, -30) {
		t.Errorf("got ADI face rotation %f, expected -30", r)
	}

	// The resize keyframe doubles the scale of the standalone instruments.
	for _, p := range []*Panel{vsi, adi} {
		if p.Viewport != [2]float32{480, 480} {
			t.Errorf("%s: got viewport %v, expected [480 480]", p.Name, p.Viewport)
		}
	}
	if s := node(t, adi.Scene, "adi.back").Scale; s != [2]float32{2, 2} {
		t.Errorf("got ADI scale %v, expected [2 2]", s)
	}

	st := pfd.Instrument.(*instruments.PFD).State()
	if !approx(st.Altitude, 1500) || !approx(st.Airspeed, 140) || st.BarH.Visible || !st.BarV.Visible {
		t.Errorf("unexpected final PFD state %+v", st)
	}
	if !approx(st.ClimbRate, 1) {
		t.Errorf("got PFD climb rate %f, expected 1 (thousand fpm)", st.ClimbRate)
	}

	// One Clear for the initial reinit and one for the resize.
	for _, p := range sim.Panels {
		ps := p.Scene.Stats()
		if !strings.HasPrefix(ps.String(), "2 clears") {
			t.Errorf("%s: got stats %s, expected 2 clears", p.Name, ps.String())
		}
	}
}

func TestSimulatorCaptureReplay(t *testing.T) {
	var buf bytes.Buffer
	cw, err := util.NewCaptureWriter[Frame](&buf)
	if err != nil {
		t.Fatal(err)
	}
	sim := runTestSim(t, cw)
	if cw.Count() != 11 {
		t.Errorf("got %d captured frames, expected 11", cw.Count())
	}
	if err := cw.Close(); err != nil {
		t.Fatal(err)
	}

	cr, err := util.NewCaptureReader[Frame](&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Close()
	scenes, err := Replay(context.Background(), cr, nil)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	live := sim.Scenes()
	if len(scenes) != len(live) {
		t.Fatalf("got %d replayed panels, expected %d", len(scenes), len(live))
	}
	for i := range live {
		if scenes[i].Name != live[i].Name {
			t.Errorf("got panel %q, expected %q", scenes[i].Name, live[i].Name)
		}
		if !reflect.DeepEqual(scenes[i].Scene.Nodes(), live[i].Scene.Nodes()) {
			t.Errorf("%s: replayed scene differs from the live one", live[i].Name)
		}
	}
}

func TestRecorderDeltas(t *testing.T) {
	p := &Panel{Name: "x", cb: renderer.GetCommandBuffer()}
	defer p.Close()
	p.cb.Element("a").TranslateBy(1, 2)

	var r recorder
	f0 := r.frame(0, []*Panel{p})
	if len(f0.Panels) != 1 || len(f0.Panels[0].Names) != 1 {
		t.Fatalf("first frame should carry element names: %+v", f0)
	}

	f1 := r.frame(0.1, []*Panel{p})
	if f1.Panels[0].Names != nil {
		t.Errorf("unchanged names stored again: %v", f1.Panels[0].Names)
	}
	for i, v := range f1.Panels[0].Buf {
		if v != 0 {
			t.Errorf("delta %d: got %d, expected 0 for an identical buffer", i, v)
		}
	}
}

func TestSimulatorScenesAreSnapshots(t *testing.T) {
	sim := runTestSim(t, nil)
	defer sim.Close()
	scenes := sim.Scenes()

	before := node(t, scenes[0].Scene, "vsi.hand").Rotation
	vsi := sim.Panels[0]
	vsi.Instrument.(*instruments.VSI).SetClimbRate(-2000)
	if err := vsi.Step(); err != nil {
		t.Fatal(err)
	}

	if r := node(t, vsi.Scene, "vsi.hand").Rotation; !approx(r, -172) {
		t.Errorf("got live VSI hand rotation %f, expected -172", r)
	}
	if r := node(t, scenes[0].Scene, "vsi.hand").Rotation; r != before {
		t.Errorf("snapshot changed with the live scene: got %f, expected %f", r, before)
	}
}

func TestSimulatorClose(t *testing.T) {
	sim := runTestSim(t, nil)
	sim.Close()
	for _, p := range sim.Panels {
		if p.cb != nil {
			t.Errorf("%s: command buffer not released", p.Name)
		}
	}
	// A second Close is harmless.
	sim.Close()
}

func TestReplayMissingNames(t *testing.T) {
	var buf bytes.Buffer
	cw, err := util.NewCaptureWriter[Frame](&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := cw.Write(&Frame{Panels: []PanelFrame{{Name: "x", Buf: []uint32{renderer.ElementRotation, 0, 0}}}}); err != nil {
		t.Fatal(err)
	}
	cw.Close()

	cr, err := util.NewCaptureReader[Frame](&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Close()
	if _, err := Replay(context.Background(), cr, nil); !errors.Is(err, ErrCaptureNames) {
		t.Errorf("got %v, expected ErrCaptureNames", err)
	}
}

func TestSimulatorCanceled(t *testing.T) {
	sim, err := NewSimulator(testConfig(), mustParseScript(t, testScript), nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sim.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, expected context.Canceled", err)
	}
}

func TestSummary(t *testing.T) {
	sim := runTestSim(t, nil)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, sim.Scenes()); err != nil {
		t.Fatal(err)
	}

	var summary map[string]map[string]struct {
		Pos      [2]float32 `json:"pos"`
		Rotation float32    `json:"rotation"`
		Scale    [2]float32 `json:"scale"`
		Visible  bool       `json:"visible"`
		Text     string     `json:"text"`
	}
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if n, ok := summary["vsi"]["vsi.hand"]; !ok || !approx(n.Rotation, 86) {
		t.Errorf("got %+v, expected vsi.hand rotated 86", n)
	}

	// Panels come out in configuration order.
	out := buf.String()
	if strings.Index(out, `"vsi"`) > strings.Index(out, `"adi"`) || strings.Index(out, `"adi"`) > strings.Index(out, `"pfd"`) {
		t.Errorf("panels out of order in summary")
	}

	buf.Reset()
	DumpScenes(&buf, sim.Scenes())
	if !strings.Contains(buf.String(), "vsi.hand") {
		t.Errorf("dump is missing vsi.hand")
	}
}
