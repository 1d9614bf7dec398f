package ir

import (
	"fmt"
	"strings"
)

// Axis indexes one component of a transform channel.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"X", "Y", "Z"}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Valid reports whether a names one of the three axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis parses "x", "y" or "z" case-insensitively.
func ParseAxis(name string) (Axis, error) {
	for i, n := range axisNames {
		if strings.EqualFold(n, name) {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q: must be x, y or z", name)
}

// Vec3 is a rotation or translation value. Rotations are Euler angles in
// radians and translations are in centimeters unless stated otherwise.
type Vec3 [3]float64

// With returns a copy of v with component a replaced.
func (v Vec3) With(a Axis, value float64) Vec3 {
	v[a] = value
	return v
}

// Attribute returns the host attribute name for one axis of a style,
// such as "rotateX" or "translateZ".
func (s Style) Attribute(a Axis) string {
	return string(s) + a.String()
}
