package ir

import (
	"fmt"
	"strings"
)

// Side is the host's left/right classification for a joint.
// The zero value means the host supplied no label.
type Side int

const (
	SideUnset Side = iota
	SideCenter
	SideLeft
	SideRight
	SideNone
)

var sideNames = [...]string{"unset", "center", "left", "right", "none"}

// SideFromCode converts a host side code (0=center, 1=left, 2=right, 3=none).
// Codes outside that range carry no information and map to SideUnset.
func SideFromCode(code int) Side {
	if code < 0 || code > 3 {
		return SideUnset
	}
	return Side(code + 1)
}

// Code returns the host code for s, or -1 when s is unset.
func (s Side) Code() int {
	if s <= SideUnset || s > SideNone {
		return -1
	}
	return int(s) - 1
}

func (s Side) String() string {
	if s < SideUnset || s > SideNone {
		return sideNames[SideUnset]
	}
	return sideNames[s]
}

// ParseSide parses a side name case-insensitively.
// The empty string and "unset" parse as SideUnset.
func ParseSide(name string) (Side, error) {
	if name == "" {
		return SideUnset, nil
	}
	for i, n := range sideNames {
		if strings.EqualFold(n, name) {
			return Side(i), nil
		}
	}
	return SideUnset, fmt.Errorf("unknown side %q", name)
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// JointType is the host's body-part classification for a joint.
// The zero value means the host supplied no label; every other value is the
// host code plus one.
type JointType int

const TypeUnset JointType = 0

const (
	TypeNone JointType = iota + 1
	TypeRoot
	TypeHip
	TypeKnee
	TypeFoot
	TypeToe
	TypeSpine
	TypeNeck
	TypeHead
	TypeCollar
	TypeShoulder
	TypeElbow
	TypeHand
	TypeFinger
	TypeThumb
	TypePropA
	TypePropB
	TypePropC
	TypeOther
	TypeIndexFinger
	TypeMiddleFinger
	TypeRingFinger
	TypePinkyFinger
	TypeExtraFinger
	TypeBigToe
	TypeIndexToe
	TypeMiddleToe
	TypeRingToe
	TypePinkyToe
	TypeFootThumb
)

// jointTypeNames is indexed by host code.
var jointTypeNames = [...]string{
	"none", "root", "hip", "knee", "foot", "toe", "spine", "neck", "head", "collar",
	"shoulder", "elbow", "hand", "finger", "thumb", "prop_a", "prop_b", "prop_c", "other",
	"index_finger", "middle_finger", "ring_finger", "pinky_finger", "extra_finger",
	"big_toe", "index_toe", "middle_toe", "ring_toe", "pinky_toe", "foot_thumb",
}

// TypeFromCode converts a host joint-type code. Out-of-range codes map to TypeUnset.
func TypeFromCode(code int) JointType {
	if code < 0 || code >= len(jointTypeNames) {
		return TypeUnset
	}
	return JointType(code + 1)
}

// Valid reports whether t is a known, set label.
func (t JointType) Valid() bool {
	return t > TypeUnset && int(t) <= len(jointTypeNames)
}

// Code returns the host code for t, or -1 when t is unset or out of range.
func (t JointType) Code() int {
	if !t.Valid() {
		return -1
	}
	return int(t) - 1
}

func (t JointType) String() string {
	if !t.Valid() {
		return "unset"
	}
	return jointTypeNames[t-1]
}

// ParseJointType parses a joint-type name case-insensitively.
// The empty string and "unset" parse as TypeUnset.
func ParseJointType(name string) (JointType, error) {
	if name == "" || strings.EqualFold(name, "unset") {
		return TypeUnset, nil
	}
	for code, n := range jointTypeNames {
		if strings.EqualFold(n, name) {
			return JointType(code + 1), nil
		}
	}
	return TypeUnset, fmt.Errorf("unknown joint type %q", name)
}

func (t JointType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *JointType) UnmarshalText(text []byte) error {
	v, err := ParseJointType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Style is a presentation row a joint supports.
type Style string

const (
	StyleRotate    Style = "rotate"
	StyleTranslate Style = "translate"
)

// ParseStyle parses a style name or the host's one-letter presentation tag.
func ParseStyle(tag string) (Style, error) {
	switch strings.ToLower(tag) {
	case "r", "rotate":
		return StyleRotate, nil
	case "t", "translate":
		return StyleTranslate, nil
	default:
		return "", fmt.Errorf("unknown style %q", tag)
	}
}

// JointRecord is one joint as supplied by the scene adapter.
// Records are read-only once built.
type JointRecord struct {
	Name   string    `json:"name"`
	Side   Side      `json:"side,omitempty"`
	Type   JointType `json:"type,omitempty"`
	Styles []Style   `json:"styles,omitempty"`

	// Ref is an opaque handle the caller uses to re-fetch live transform data.
	Ref any `json:"-"`
}
