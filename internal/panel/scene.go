package panel

import (
	"strings"

	"github.com/roach88/jointpanel/internal/ir"
)

// Scene is the host the controller reads and writes.
type Scene interface {
	// Read returns the current channel value in internal units.
	Read(joint string, style ir.Style) (ir.Vec3, error)
	// SetLive writes a value in internal units without recording undo.
	SetLive(joint string, style ir.Style, v ir.Vec3) error
	// Commit sets one axis, in UI units, through the host's undoable path.
	Commit(joint string, style ir.Style, axis ir.Axis, value float64) error
	// ToUI converts an internal value of style to UI units.
	ToUI(style ir.Style, internal float64) float64
}

// DirtyEvent reports that a channel of a joint changed in the scene.
type DirtyEvent struct {
	Entity string
	Kind   ir.Style
}

// ParsePlug converts a host plug name such as "Char_Arm_L.rotateX" into a
// DirtyEvent. The entity is the plug's node string as given, DAG path
// included, so it matches the joint name the panel was built from.
// Plugs of attributes other than rotate and translate are reported as not ok.
func ParsePlug(plug string) (DirtyEvent, bool) {
	node, attr, found := strings.Cut(plug, ".")
	if !found || node == "" {
		return DirtyEvent{}, false
	}

	switch {
	case strings.HasPrefix(attr, string(ir.StyleRotate)):
		return DirtyEvent{Entity: node, Kind: ir.StyleRotate}, true
	case strings.HasPrefix(attr, string(ir.StyleTranslate)):
		return DirtyEvent{Entity: node, Kind: ir.StyleTranslate}, true
	}
	return DirtyEvent{}, false
}
