package testutil

import (
	"fmt"
	"math"
	"sync"

	"github.com/roach88/jointpanel/internal/ir"
)

// Commit records one undoable write made through FakeScene.Commit.
type Commit struct {
	Joint string
	Attr  string
	Value float64
}

type channels struct {
	rotate    ir.Vec3
	translate ir.Vec3
}

// FakeScene is an in-memory host scene.
//
// Rotations are stored in radians and shown in degrees; translations are
// stored and shown in centimeters. Every write fires the dirty listener
// with plug names such as "joint.rotateX", after the scene's lock is
// released.
//
// Thread-safety: all methods are safe for concurrent use.
type FakeScene struct {
	mu      sync.Mutex
	joints  map[string]*channels
	commits []Commit
	live    int
	failOn  map[string]error
	onDirty func(plug string)
}

// NewFakeScene creates a scene holding the named joints at rest.
func NewFakeScene(joints ...string) *FakeScene {
	s := &FakeScene{
		joints: make(map[string]*channels),
		failOn: make(map[string]error),
	}
	for _, j := range joints {
		s.joints[j] = &channels{}
	}
	return s
}

// OnDirty installs the dirty-plug listener.
func (s *FakeScene) OnDirty(fn func(plug string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDirty = fn
}

// Set stores v for a joint's channel, in internal units, and fires the
// dirty listener for all three axes.
func (s *FakeScene) Set(joint string, style ir.Style, v ir.Vec3) {
	s.mu.Lock()
	ch := s.channel(joint)
	*s.slot(ch, style) = v
	s.mu.Unlock()
	s.fire(joint, style, ir.AxisX, ir.AxisY, ir.AxisZ)
}

// FailReads makes Read of joint return err. A nil err clears the failure.
func (s *FakeScene) FailReads(joint string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, joint)
		return
	}
	s.failOn[joint] = err
}

// Read implements panel.Scene.
func (s *FakeScene) Read(joint string, style ir.Style) (ir.Vec3, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn[joint]; err != nil {
		return ir.Vec3{}, err
	}
	ch, ok := s.joints[joint]
	if !ok {
		return ir.Vec3{}, fmt.Errorf("no joint %q in scene", joint)
	}
	return *s.slot(ch, style), nil
}

// SetLive implements panel.Scene.
func (s *FakeScene) SetLive(joint string, style ir.Style, v ir.Vec3) error {
	s.mu.Lock()
	ch, ok := s.joints[joint]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("no joint %q in scene", joint)
	}
	*s.slot(ch, style) = v
	s.live++
	s.mu.Unlock()

	s.fire(joint, style, ir.AxisX, ir.AxisY, ir.AxisZ)
	return nil
}

// Commit implements panel.Scene.
func (s *FakeScene) Commit(joint string, style ir.Style, axis ir.Axis, value float64) error {
	s.mu.Lock()
	ch, ok := s.joints[joint]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("no joint %q in scene", joint)
	}
	slot := s.slot(ch, style)
	*slot = slot.With(axis, fromUI(style, value))
	s.commits = append(s.commits, Commit{Joint: joint, Attr: style.Attribute(axis), Value: value})
	s.mu.Unlock()

	s.fire(joint, style, axis)
	return nil
}

// ToUI implements panel.Scene.
func (s *FakeScene) ToUI(style ir.Style, internal float64) float64 {
	if style == ir.StyleRotate {
		return internal * 180 / math.Pi
	}
	return internal
}

func fromUI(style ir.Style, ui float64) float64 {
	if style == ir.StyleRotate {
		return ui * math.Pi / 180
	}
	return ui
}

// Commits returns the undoable writes made so far.
func (s *FakeScene) Commits() []Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Commit(nil), s.commits...)
}

// LiveWrites returns the number of SetLive calls made so far.
func (s *FakeScene) LiveWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

func (s *FakeScene) channel(joint string) *channels {
	ch, ok := s.joints[joint]
	if !ok {
		ch = &channels{}
		s.joints[joint] = ch
	}
	return ch
}

func (s *FakeScene) slot(ch *channels, style ir.Style) *ir.Vec3 {
	if style == ir.StyleTranslate {
		return &ch.translate
	}
	return &ch.rotate
}

func (s *FakeScene) fire(joint string, style ir.Style, axes ...ir.Axis) {
	s.mu.Lock()
	fn := s.onDirty
	s.mu.Unlock()
	if fn == nil {
		return
	}
	for _, a := range axes {
		fn(joint + "." + style.Attribute(a))
	}
}
