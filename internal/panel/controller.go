package panel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/ir"
	"github.com/roach88/jointpanel/internal/organize"
)

var (
	// ErrUnknownJoint is returned for operations on a joint with no panel.
	ErrUnknownJoint = errors.New("no panel for joint")
	// ErrNoPresentation is returned when a panel's joint has no style to edit.
	ErrNoPresentation = errors.New("panel has no presentation style")
)

// Color is the stylesheet color of a row.
type Color string

const (
	ColorNone  Color = ""
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// rowColor picks a row color from its category, falling back to the
// presentation style for uncategorized rows.
func rowColor(c ir.Category, style ir.Style) Color {
	switch c {
	case ir.CategoryArm:
		return ColorRed
	case ir.CategoryLeg:
		return ColorGreen
	}
	switch style {
	case ir.StyleRotate:
		return ColorBlue
	case ir.StyleTranslate:
		return ColorGreen
	}
	return ColorNone
}

// Panel is the display state of one joint. A panel presents a single
// style, the first style of its row's first joint; changes to the joint's
// other channel are not displayed.
type Panel struct {
	Joint    string
	Title    string
	Style    ir.Style
	Values   [3]string
	Visible  bool
	Selected bool
}

// Row is one organizer group: a single panel or a left/right pair.
type Row struct {
	Category ir.Category
	Color    Color
	Panels   []Panel
}

type rowState struct {
	category ir.Category
	color    Color
	joints   []string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the panel registry for one scene.
//
// Thread-safety: all methods are safe for concurrent use. Scene calls are
// made without holding the controller's lock, so a Scene may call Notify
// synchronously from Commit or SetLive.
type Controller struct {
	scene Scene
	log   *zap.Logger
	queue *updateQueue

	mu         sync.RWMutex
	rows       []rowState
	panels     map[string]*Panel
	prefixTrim int
	selected   string
}

// New creates a controller with an empty layout.
func New(scene Scene, opts ...Option) *Controller {
	c := &Controller{
		scene:  scene,
		log:    zap.NewNop(),
		queue:  newUpdateQueue(),
		panels: make(map[string]*Panel),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset clears the layout, pending updates and selection.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.rows = nil
	c.panels = make(map[string]*Panel)
	c.prefixTrim = 0
	c.selected = ""
	c.mu.Unlock()

	if dropped := c.queue.Drain(); len(dropped) > 0 {
		c.log.Debug("dropped pending updates on reset", zap.Int("count", len(dropped)))
	}
}

// Build organizes joints with policy and lays out the result.
func (c *Controller) Build(joints []ir.JointRecord, policy ir.NormalizePolicy) (ir.Layout, error) {
	layout := organize.BuildLayout(ir.Rig{Joints: joints}, organize.WithPolicy(policy))
	return layout, c.Load(layout)
}

// Load replaces the current layout with layout and reads initial values
// from the scene. Read failures leave the affected panels blank and are
// returned joined; the layout is installed regardless.
func (c *Controller) Load(layout ir.Layout) error {
	c.Reset()

	c.mu.Lock()
	c.prefixTrim = layout.PrefixTrim
	for _, g := range layout.Groups {
		style := presentation(g)
		row := rowState{category: g.Category, color: rowColor(g.Category, style)}
		for _, j := range g.Joints {
			if _, dup := c.panels[j.Name]; dup {
				c.log.Warn("duplicate joint in layout", zap.String("joint", j.Name))
				continue
			}
			c.panels[j.Name] = &Panel{
				Joint:   j.Name,
				Title:   organize.TrimPrefix(j.Name, layout.PrefixTrim),
				Style:   style,
				Visible: true,
			}
			row.joints = append(row.joints, j.Name)
		}
		if len(row.joints) > 0 {
			c.rows = append(c.rows, row)
		}
	}
	names := c.orderedLocked()
	rows := len(c.rows)
	c.mu.Unlock()

	c.log.Debug("layout loaded",
		zap.String("rig", layout.Rig),
		zap.Int("rows", rows),
		zap.Int("panels", len(names)))

	var errs []error
	for _, name := range names {
		if err := c.refresh(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// presentation is the first style of the group's first joint.
func presentation(g ir.Group) ir.Style {
	if len(g.Joints) == 0 || len(g.Joints[0].Styles) == 0 {
		return ""
	}
	return g.Joints[0].Styles[0]
}

// Rows returns a snapshot of the layout in display order.
func (c *Controller) Rows() []Row {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return lo.Map(c.rows, func(r rowState, _ int) Row {
		return Row{
			Category: r.category,
			Color:    r.color,
			Panels: lo.Map(r.joints, func(name string, _ int) Panel {
				return *c.panels[name]
			}),
		}
	})
}

// Panel returns a snapshot of the named joint's panel.
func (c *Controller) Panel(name string) (Panel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.panels[name]
	if !ok {
		return Panel{}, false
	}
	return *p, true
}

// Notify queues a refresh for ev. Events for joints without a panel are
// ignored. Returns true if the event was newly queued.
func (c *Controller) Notify(ev DirtyEvent) bool {
	c.mu.RLock()
	_, known := c.panels[ev.Entity]
	c.mu.RUnlock()

	if !known {
		return false
	}
	return c.queue.Enqueue(ev)
}

// Pending returns the number of queued updates.
func (c *Controller) Pending() int {
	return c.queue.Len()
}

// Flush refreshes every queued joint once. Events whose kind does not match
// the panel's presentation, or whose joint has since been removed, are
// skipped. Returns the number of panels refreshed.
func (c *Controller) Flush() int {
	events := c.queue.Drain()
	refreshed := 0
	for _, ev := range events {
		c.mu.RLock()
		p, ok := c.panels[ev.Entity]
		match := ok && p.Style == ev.Kind
		c.mu.RUnlock()
		if !match {
			continue
		}

		if err := c.refresh(ev.Entity); err != nil {
			c.log.Warn("refresh failed", zap.String("joint", ev.Entity), zap.Error(err))
			continue
		}
		refreshed++
	}
	if len(events) > 0 {
		c.log.Debug("flushed updates",
			zap.Int("queued", len(events)),
			zap.Int("refreshed", refreshed))
	}
	return refreshed
}

// Run flushes queued updates as they arrive. It returns ctx.Err() when the
// context is cancelled, or nil once Close has been called and the final
// batch is flushed.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-c.queue.Wait():
			c.Flush()
			if !ok {
				return nil
			}
		}
	}
}

// Close stops accepting updates and ends Run.
func (c *Controller) Close() {
	c.queue.Close()
}

// Search shows the panels whose joint name contains text, ignoring case,
// and hides the rest. Returns the visible joint names in display order.
func (c *Controller) Search(text string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	needle := strings.ToLower(text)
	for _, p := range c.panels {
		p.Visible = strings.Contains(strings.ToLower(p.Joint), needle)
	}
	return lo.Filter(c.orderedLocked(), func(name string, _ int) bool {
		return c.panels[name].Visible
	})
}

// Select marks the named panel selected and every other panel unselected.
// An empty or unknown name clears the selection. Returns whether a panel
// was selected.
func (c *Controller) Select(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.panels[name]
	if !ok {
		name = ""
	}
	c.selected = name
	for _, p := range c.panels {
		p.Selected = p.Joint == name
	}
	return ok
}

// Selected returns the selected joint, or "" if none.
func (c *Controller) Selected() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

func (c *Controller) orderedLocked() []string {
	return lo.FlatMap(c.rows, func(r rowState, _ int) []string { return r.joints })
}

// Edit commits text, a number in UI units, to one axis of the named panel
// and refreshes it from the scene. Text equal to the displayed value is
// not committed.
func (c *Controller) Edit(name string, axis ir.Axis, text string) error {
	if !axis.Valid() {
		return fmt.Errorf("edit %s: invalid axis %d", name, int(axis))
	}

	p, err := c.presented(name)
	if err != nil {
		return fmt.Errorf("edit %s: %w", name, err)
	}

	text = strings.TrimSpace(text)
	if text == p.Values[axis] {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("edit %s.%s: %w", name, p.Style.Attribute(axis), err)
	}

	if err := c.scene.Commit(name, p.Style, axis, value); err != nil {
		return fmt.Errorf("commit %s.%s: %w", name, p.Style.Attribute(axis), err)
	}
	c.log.Debug("committed edit",
		zap.String("joint", name),
		zap.String("attr", p.Style.Attribute(axis)),
		zap.Float64("value", value))
	return c.refresh(name)
}

// Drag returns a drag strategy for one axis of the named panel.
func (c *Controller) Drag(name string, axis ir.Axis) (DragStrategy, error) {
	p, err := c.presented(name)
	if err != nil {
		return nil, fmt.Errorf("drag %s: %w", name, err)
	}
	return NewDrag(c.scene, name, p.Style, axis)
}

func (c *Controller) presented(name string) (Panel, error) {
	p, ok := c.Panel(name)
	if !ok {
		return Panel{}, ErrUnknownJoint
	}
	if p.Style == "" {
		return Panel{}, ErrNoPresentation
	}
	return p, nil
}

// refresh re-reads a panel's values from the scene.
func (c *Controller) refresh(name string) error {
	c.mu.RLock()
	p, ok := c.panels[name]
	var style ir.Style
	if ok {
		style = p.Style
	}
	c.mu.RUnlock()
	if !ok || style == "" {
		return nil
	}

	v, err := c.scene.Read(name, style)
	if err != nil {
		return fmt.Errorf("read %s.%s: %w", name, style, err)
	}
	var values [3]string
	for i := range v {
		values[i] = formatValue(c.scene.ToUI(style, v[i]))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The layout may have been replaced while the scene was read.
	if cur, ok := c.panels[name]; ok && cur == p {
		cur.Values = values
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
