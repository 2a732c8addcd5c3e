// renderer/scene.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/mmp/qfi/math"

	"github.com/brunoga/deep"
)

// Node is the retained state of a single element in a Scene. Pos is the
// accumulated translation in viewport units.
type Node struct {
	ID       ElementID
	Pos      [2]float32
	Rotation float32
	Scale    [2]float32
	Visible  bool
	Text     string
}

// Scene is a retained-mode Surface: it keeps the current transform,
// visibility, and text of every element that has been referred to since
// the last Clear. It's what the command buffers of an instrument are
// ultimately executed on; a windowed or terminal front end can then draw
// the nodes however it likes.
type Scene struct {
	nodes map[ElementID]*Node
	order []ElementID
	stats Stats
}

func NewScene() *Scene {
	return &Scene{nodes: make(map[ElementID]*Node)}
}

func (s *Scene) Clear() {
	clear(s.nodes)
	s.order = s.order[:0]
	s.stats.nClears++
}

func (s *Scene) Element(id ElementID) Element {
	return sceneElement{s: s, n: s.node(id)}
}

func (s *Scene) node(id ElementID) *Node {
	if s.nodes == nil {
		s.nodes = make(map[ElementID]*Node)
	}
	if n, ok := s.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Scale: [2]float32{1, 1}, Visible: true}
	s.nodes[id] = n
	s.order = append(s.order, id)
	return n
}

// Node returns a copy of the node with the given ID and whether it
// exists.
func (s *Scene) Node(id ElementID) (Node, bool) {
	if n, ok := s.nodes[id]; ok {
		return *n, true
	}
	return Node{}, false
}

// Nodes returns copies of all of the nodes in the scene in the order in
// which they were first referred to.
func (s *Scene) Nodes() []Node {
	n := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		n = append(n, *s.nodes[id])
	}
	return n
}

// Snapshot returns an independent copy of the scene.
func (s *Scene) Snapshot() *Scene {
	c, err := deep.Copy(s.nodes)
	if err != nil {
		// deep.Copy only fails for types it can't handle (channels,
		// functions, ...), none of which are in a Node.
		panic(err)
	}
	return &Scene{nodes: c, order: append([]ElementID(nil), s.order...), stats: s.stats}
}

func (s *Scene) Stats() Stats {
	return s.stats
}

type sceneElement struct {
	s *Scene
	n *Node
}

func (e sceneElement) TranslateBy(dx, dy float32) {
	e.n.Pos = math.Add2f(e.n.Pos, [2]float32{dx, dy})
	e.s.stats.nTranslates++
}

func (e sceneElement) SetRotation(degrees float32) {
	e.n.Rotation = degrees
	e.s.stats.nRotations++
}

func (e sceneElement) SetVisible(visible bool) {
	e.n.Visible = visible
	e.s.stats.nVisibility++
}

func (e sceneElement) SetText(s string) {
	e.n.Text = s
	e.s.stats.nTexts++
}

func (e sceneElement) SetScale(sx, sy float32) {
	e.n.Scale = [2]float32{sx, sy}
	e.s.stats.nScales++
}
