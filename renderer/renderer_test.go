// renderer/renderer_test.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"errors"
	"testing"
)

func TestCommandBufferExecute(t *testing.T) {
	cb := GetCommandBuffer()
	defer ReturnCommandBuffer(cb)

	cb.Clear()
	needle := cb.Element("vsi.hand")
	needle.SetScale(2, 0.5)
	needle.SetRotation(-42.5)
	needle.TranslateBy(3, 4)
	needle.TranslateBy(-1, 0.25)

	label := cb.Element("alt.label1")
	label.SetText(" 1500")
	label.SetVisible(false)
	// Refer to an element already seen; it should reuse the index.
	cb.Element("vsi.hand").SetVisible(true)

	if len(cb.Names) != 2 {
		t.Errorf("got %d element names, expected 2: %v", len(cb.Names), cb.Names)
	}

	s := NewScene()
	s.Element("stale").TranslateBy(1, 1)

	stats, err := cb.Execute(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.nClears != 1 || stats.nTranslates != 2 || stats.nRotations != 1 ||
		stats.nVisibility != 2 || stats.nTexts != 1 || stats.nScales != 1 {
		t.Errorf("unexpected stats: %s", stats.String())
	}
	if stats.Primitives() != 7 {
		t.Errorf("got %d primitives, expected 7", stats.Primitives())
	}

	if _, ok := s.Node("stale"); ok {
		t.Errorf("Clear did not remove existing nodes")
	}

	n, ok := s.Node("vsi.hand")
	if !ok {
		t.Fatalf("vsi.hand missing from scene")
	}
	if n.Pos != [2]float32{2, 4.25} {
		t.Errorf("got pos %v, expected [2 4.25]", n.Pos)
	}
	if n.Rotation != -42.5 || n.Scale != [2]float32{2, 0.5} || !n.Visible {
		t.Errorf("unexpected node state %+v", n)
	}

	l, _ := s.Node("alt.label1")
	if l.Text != " 1500" || l.Visible {
		t.Errorf("unexpected label state %+v", l)
	}

	if nodes := s.Nodes(); len(nodes) != 2 || nodes[0].ID != "vsi.hand" || nodes[1].ID != "alt.label1" {
		t.Errorf("unexpected node order %+v", nodes)
	}
}

func TestCommandBufferTextLengths(t *testing.T) {
	for _, str := range []string{"", "C", "CR", "CRS", "CRS ", "CRS 045", "- - - NM", "ünïcødé"} {
		var cb CommandBuffer
		cb.Element("txt").SetText(str)

		s := NewScene()
		if _, err := cb.Execute(s); err != nil {
			t.Errorf("%q: unexpected error %v", str, err)
			continue
		}
		if n, _ := s.Node("txt"); n.Text != str {
			t.Errorf("got text %q, expected %q", n.Text, str)
		}
	}
}

func TestCommandBufferReset(t *testing.T) {
	var cb CommandBuffer
	cb.Element("a").TranslateBy(1, 2)
	cb.Reset()
	if !cb.Empty() || len(cb.Names) != 0 {
		t.Errorf("Reset did not empty the buffer")
	}

	cb.Element("b").TranslateBy(5, 6)
	if len(cb.Names) != 1 || cb.Names[0] != "b" {
		t.Errorf("got names %v after reset, expected [b]", cb.Names)
	}
	s := NewScene()
	if _, err := cb.Execute(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Node("a"); ok {
		t.Errorf("element from before Reset was replayed")
	}
}

func TestCommandBufferDecodedIndex(t *testing.T) {
	// A buffer whose Names came from elsewhere (e.g., a capture file)
	// should still reuse existing indices.
	cb := CommandBuffer{Names: []ElementID{"x", "y"}}
	cb.Element("y").TranslateBy(1, 0)
	if len(cb.Names) != 2 {
		t.Errorf("got names %v, expected [x y]", cb.Names)
	}
}

func TestCommandBufferMalformed(t *testing.T) {
	for _, c := range []struct {
		name string
		cb   CommandBuffer
		err  error
	}{
		{"truncated translate", CommandBuffer{Buf: []uint32{ElementTranslate, 0, 0}, Names: []ElementID{"a"}}, ErrCommandBufferTruncated},
		{"missing element", CommandBuffer{Buf: []uint32{ElementRotation}}, ErrCommandBufferTruncated},
		{"bad element", CommandBuffer{Buf: []uint32{ElementRotation, 3, 0}, Names: []ElementID{"a"}}, ErrInvalidElementIndex},
		{"truncated text", CommandBuffer{Buf: []uint32{ElementText, 0, 9, 0}, Names: []ElementID{"a"}}, ErrCommandBufferTruncated},
		{"unknown command", CommandBuffer{Buf: []uint32{99, 0}, Names: []ElementID{"a"}}, ErrUnknownCommand},
	} {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.cb.Execute(NewScene()); !errors.Is(err, c.err) {
				t.Errorf("got error %v, expected %v", err, c.err)
			}
		})
	}
}

func TestSceneSnapshot(t *testing.T) {
	s := NewScene()
	s.Element("adi.ladd").TranslateBy(10, 20)
	s.Element("adi.ladd").SetRotation(15)

	snap := s.Snapshot()
	s.Element("adi.ladd").TranslateBy(1, 1)
	s.Element("adi.roll").SetVisible(false)

	n, _ := snap.Node("adi.ladd")
	if n.Pos != [2]float32{10, 20} || n.Rotation != 15 {
		t.Errorf("snapshot changed along with the scene: %+v", n)
	}
	if _, ok := snap.Node("adi.roll"); ok {
		t.Errorf("node added after the snapshot appeared in it")
	}
	if len(snap.Nodes()) != 1 {
		t.Errorf("got %d nodes in snapshot, expected 1", len(snap.Nodes()))
	}
}

func TestSceneNodeDefaults(t *testing.T) {
	s := NewScene()
	s.Element("x")
	n, ok := s.Node("x")
	if !ok {
		t.Fatalf("Element did not create a node")
	}
	if n.Pos != [2]float32{} || n.Rotation != 0 || n.Scale != [2]float32{1, 1} || !n.Visible || n.Text != "" {
		t.Errorf("unexpected defaults %+v", n)
	}

	var zero Scene
	zero.Element("y").TranslateBy(1, 2)
	if n, _ := zero.Node("y"); n.Pos != [2]float32{1, 2} {
		t.Errorf("zero Scene not usable: %+v", n)
	}
}

func TestStatsMerge(t *testing.T) {
	a := Stats{nTranslates: 2, nTexts: 1}
	a.Merge(Stats{nTranslates: 3, nClears: 1, nScales: 4})
	if a.nTranslates != 5 || a.nClears != 1 || a.nScales != 4 || a.nTexts != 1 {
		t.Errorf("unexpected merged stats %s", a.String())
	}
}
