// instruments/kind.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instruments

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/renderer"
	"github.com/mmp/qfi/util"
)

// Kind identifies one of the instruments; each has its own design canvas
// and element layout.
type Kind int

const (
	KindADI Kind = iota // attitude director
	KindALT             // altimeter
	KindVSI             // vertical speed indicator
	KindTC              // turn coordinator
	KindNAV             // navigation display / HSI
	KindPFD             // primary flight display
	NumKinds
)

var kindNames = [NumKinds]string{"adi", "alt", "vsi", "tc", "nav", "pfd"}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given name; case is ignored.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%s: %w%s", s, ErrUnknownKind, util.DidYouMean(s, slices.Values(kindNames[:])))
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= NumKinds {
		return nil, fmt.Errorf("%d: %w", int(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	var err error
	*k, err = ParseKind(string(b))
	return err
}

// DesignSize returns the width and height of the kind's design canvas.
func (k Kind) DesignSize() [2]float32 {
	switch k {
	case KindNAV, KindPFD:
		return [2]float32{300, 300}
	default:
		return [2]float32{240, 240}
	}
}

// Instrument is implemented by all of the instruments. Reinit must be
// called before the first Update and whenever the viewport changes size;
// it rebuilds the instrument's elements on the surface and draws the
// current state. Update repositions the elements for the current state.
type Instrument interface {
	Kind() Kind
	Reinit(s renderer.Surface, viewport [2]float32)
	Update(s renderer.Surface)
}

// New returns a new instrument of the given kind with its default state.
func New(k Kind, lg *log.Logger) (Instrument, error) {
	switch k {
	case KindADI:
		return NewADI(lg), nil
	case KindALT:
		return NewALT(lg), nil
	case KindVSI:
		return NewVSI(lg), nil
	case KindTC:
		return NewTC(lg), nil
	case KindNAV:
		return NewNAV(lg), nil
	case KindPFD:
		return NewPFD(lg), nil
	default:
		return nil, fmt.Errorf("%d: %w", int(k), ErrUnknownKind)
	}
}
