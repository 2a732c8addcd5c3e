// instruments/panel.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"log/slog"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/math"
	"github.com/mmp/qfi/renderer"
)

// layoutElement is a visual element of an instrument along with its
// position in the design canvas.
type layoutElement struct {
	name string
	pos  [2]float32
}

// panel holds what's common to all of the instruments: where their
// elements live and the current scale.
type panel struct {
	kind     Kind
	prefix   string
	viewport [2]float32
	scale    ScaleFactors
	lg       *log.Logger
}

func makePanel(k Kind, prefix string, lg *log.Logger) panel {
	return panel{
		kind:   k,
		prefix: prefix,
		scale:  ScaleFactors{X: 1, Y: 1},
		lg:     lg.With(slog.String("instrument", prefix)),
	}
}

func (p *panel) Kind() Kind { return p.kind }

// Scale returns the scale factors for the current viewport.
func (p *panel) Scale() ScaleFactors { return p.scale }

// ElementID returns the ID used on the surface for the named element.
func (p *panel) ElementID(name string) renderer.ElementID {
	return renderer.ElementID(p.prefix + "." + name)
}

func (p *panel) track(name string) tracked {
	return tracked{id: p.ElementID(name)}
}

func (p *panel) element(s renderer.Surface, name string) renderer.Element {
	return s.Element(p.ElementID(name))
}

func (p *panel) resize(viewport [2]float32) {
	p.viewport = viewport
	ds := p.kind.DesignSize()
	p.scale = RecomputeScale(viewport[0], viewport[1], ds[0], ds[1])
	p.lg.Debug("reinit", slog.Any("viewport", viewport), slog.Any("scale", p.scale))
}

// place creates the given elements on the surface, scaled for the
// current viewport and moved to their positions.
func (p *panel) place(s renderer.Surface, layout []layoutElement) {
	for _, le := range layout {
		e := p.element(s, le.name)
		e.SetScale(p.scale.X, p.scale.Y)
		if le.pos != [2]float32{} {
			pos := p.scale.Apply(le.pos)
			e.TranslateBy(pos[0], pos[1])
		}
	}
}

// saturate clamps an input value to its range, noting it in the log if
// it was out of range.
func (p *panel) saturate(field string, v, low, high float32) float32 {
	c, clamped := math.Saturate(v, low, high)
	if clamped {
		p.lg.Debug("input clamped", slog.String("field", field), slog.Float64("value", float64(v)),
			slog.Float64("clamped", float64(c)))
	}
	return c
}
