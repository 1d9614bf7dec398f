package panel

import (
	"fmt"
	"math"

	"github.com/roach88/jointpanel/internal/ir"
)

// Drag sensitivity in screen pixels per internal unit.
const (
	RotationPixelsPerRadian      = 60.0
	TranslationPixelsPerInternal = 20.0

	equivalenceTolerance = 1e-10
)

// DragStrategy turns horizontal mouse motion into changes of one channel
// axis.
//
// Begin snapshots the channel at the press position. Apply writes the
// offset value live, without undo. Commit restores the snapshot and, if the
// axis moved, commits the final value once through the scene's undoable
// path. Apply and Commit without a preceding Begin do nothing.
type DragStrategy interface {
	Begin(x int) error
	Apply(x int) error
	Commit() error
}

// NewDrag returns the strategy for style.
func NewDrag(scene Scene, joint string, style ir.Style, axis ir.Axis) (DragStrategy, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("drag %s: invalid axis %d", joint, int(axis))
	}
	switch style {
	case ir.StyleRotate:
		return NewRotationDrag(scene, joint, axis), nil
	case ir.StyleTranslate:
		return NewTranslationDrag(scene, joint, axis), nil
	}
	return nil, fmt.Errorf("drag %s: %w", joint, ErrNoPresentation)
}

// NewRotationDrag rotates one axis by a radian per 60 pixels.
func NewRotationDrag(scene Scene, joint string, axis ir.Axis) DragStrategy {
	return &axisDrag{
		scene:         scene,
		joint:         joint,
		style:         ir.StyleRotate,
		axis:          axis,
		pixelsPerUnit: RotationPixelsPerRadian,
	}
}

// NewTranslationDrag moves one axis by an internal unit per 20 pixels.
func NewTranslationDrag(scene Scene, joint string, axis ir.Axis) DragStrategy {
	return &axisDrag{
		scene:         scene,
		joint:         joint,
		style:         ir.StyleTranslate,
		axis:          axis,
		pixelsPerUnit: TranslationPixelsPerInternal,
	}
}

type axisDrag struct {
	scene         Scene
	joint         string
	style         ir.Style
	axis          ir.Axis
	pixelsPerUnit float64

	active   bool
	startX   int
	original ir.Vec3
	current  ir.Vec3
}

func (d *axisDrag) Begin(x int) error {
	v, err := d.scene.Read(d.joint, d.style)
	if err != nil {
		return fmt.Errorf("begin drag %s.%s: %w", d.joint, d.style.Attribute(d.axis), err)
	}
	d.active = true
	d.startX = x
	d.original = v
	d.current = v
	return nil
}

func (d *axisDrag) Apply(x int) error {
	if !d.active {
		return nil
	}
	delta := float64(x-d.startX) / d.pixelsPerUnit
	d.current = d.original.With(d.axis, d.original[d.axis]+delta)
	if err := d.scene.SetLive(d.joint, d.style, d.current); err != nil {
		return fmt.Errorf("drag %s.%s: %w", d.joint, d.style.Attribute(d.axis), err)
	}
	return nil
}

func (d *axisDrag) Commit() error {
	if !d.active {
		return nil
	}
	original, final := d.original, d.current[d.axis]
	d.active = false

	attr := d.style.Attribute(d.axis)
	if err := d.scene.SetLive(d.joint, d.style, original); err != nil {
		return fmt.Errorf("restore %s.%s: %w", d.joint, attr, err)
	}
	if math.Abs(final-original[d.axis]) <= equivalenceTolerance {
		return nil
	}
	if err := d.scene.Commit(d.joint, d.style, d.axis, d.scene.ToUI(d.style, final)); err != nil {
		return fmt.Errorf("commit %s.%s: %w", d.joint, attr, err)
	}
	return nil
}
