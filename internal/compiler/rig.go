package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/jointpanel/internal/ir"
)

// DefaultStyles is applied to joints that do not list styles.
var DefaultStyles = []ir.Style{ir.StyleRotate}

// CompileRig parses a CUE rig description into an ir.Rig.
// Uses the CUE Go API directly (not a CLI subprocess).
//
// The value should be the rig struct itself, e.g.:
//
//	rig: biped: {
//		joints: [
//			{name: "Char_Arm_L", side: "left", type: "shoulder"},
//			{name: "Char_Arm_R", side: 2, type: 10, styles: ["r"]},
//		]
//	}
//
// The rig name comes from the struct label unless a name field overrides it.
// Joint order is list order.
func CompileRig(v cue.Value) (*ir.Rig, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	rig := &ir.Rig{Name: labelOf(v)}

	if nameVal := v.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rig.Name = name
	}

	jointsVal := v.LookupPath(cue.ParsePath("joints"))
	if !jointsVal.Exists() {
		return nil, &CompileError{
			Field:   "joints",
			Message: "joints list is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := jointsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		joint, err := compileJoint(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("joints[%d]: %w", i, err)
		}
		rig.Joints = append(rig.Joints, joint)
	}

	return rig, nil
}

func compileJoint(v cue.Value) (ir.JointRecord, error) {
	var joint ir.JointRecord

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return joint, &CompileError{Field: "name", Message: "joint name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return joint, formatCUEError(err)
	}
	joint.Name = name
	joint.Ref = name

	if sideVal := v.LookupPath(cue.ParsePath("side")); sideVal.Exists() {
		joint.Side, err = compileSide(sideVal)
		if err != nil {
			return joint, err
		}
	}

	if typeVal := v.LookupPath(cue.ParsePath("type")); typeVal.Exists() {
		joint.Type, err = compileJointType(typeVal)
		if err != nil {
			return joint, err
		}
	}

	stylesVal := v.LookupPath(cue.ParsePath("styles"))
	if !stylesVal.Exists() {
		joint.Styles = append([]ir.Style(nil), DefaultStyles...)
		return joint, nil
	}
	joint.Styles, err = compileStyles(stylesVal)
	return joint, err
}

// compileSide accepts a side name or a host side code.
// Unknown codes carry no information; unknown names are errors.
func compileSide(v cue.Value) (ir.Side, error) {
	if s, err := v.String(); err == nil {
		side, perr := ir.ParseSide(s)
		if perr != nil {
			return ir.SideUnset, &CompileError{Field: "side", Message: perr.Error(), Pos: v.Pos()}
		}
		return side, nil
	}
	if n, err := v.Int64(); err == nil {
		return ir.SideFromCode(int(n)), nil
	}
	return ir.SideUnset, &CompileError{Field: "side", Message: "side must be a name or an integer code", Pos: v.Pos()}
}

// compileJointType accepts a type name or a host joint-type code.
func compileJointType(v cue.Value) (ir.JointType, error) {
	if s, err := v.String(); err == nil {
		t, perr := ir.ParseJointType(s)
		if perr != nil {
			return ir.TypeUnset, &CompileError{Field: "type", Message: perr.Error(), Pos: v.Pos()}
		}
		return t, nil
	}
	if n, err := v.Int64(); err == nil {
		return ir.TypeFromCode(int(n)), nil
	}
	return ir.TypeUnset, &CompileError{Field: "type", Message: "type must be a name or an integer code", Pos: v.Pos()}
}

func compileStyles(v cue.Value) ([]ir.Style, error) {
	iter, err := v.List()
	if err != nil {
		return nil, &CompileError{Field: "styles", Message: "styles must be a list of strings", Pos: v.Pos()}
	}

	styles := []ir.Style{}
	for iter.Next() {
		tag, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		style, err := ir.ParseStyle(tag)
		if err != nil {
			return nil, &CompileError{Field: "styles", Message: err.Error(), Pos: iter.Value().Pos()}
		}
		styles = append(styles, style)
	}
	return styles, nil
}
