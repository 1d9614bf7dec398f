package compiler

import (
	"fmt"

	"github.com/roach88/jointpanel/internal/ir"
)

// Rig error codes (E201-E207)
const (
	ErrRigNoJoints    = "E201" // rig has no joints
	ErrJointNameEmpty = "E202" // joint name is empty
	ErrDuplicateJoint = "E203" // two joints share a full name
	ErrJointNoStyles  = "E204" // joint supports no presentation style
	ErrInvalidSide    = "E205" // side is neither a known name nor an integer
	ErrInvalidType    = "E206" // joint type is neither a known name nor an integer
	ErrInvalidStyle   = "E207" // style tag is not rotate or translate
)

// CodeForField maps a CompileError field to its error code.
// Fields with no dedicated code map to "E001".
func CodeForField(field string) string {
	switch field {
	case "joints":
		return ErrRigNoJoints
	case "name":
		return ErrJointNameEmpty
	case "side":
		return ErrInvalidSide
	case "type":
		return ErrInvalidType
	case "styles":
		return ErrInvalidStyle
	default:
		return "E001"
	}
}

// ValidationError represents a rig validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidateRig checks a compiled rig. Returns all errors found (does not fail-fast).
//
// Duplicate full names are errors here even though the organizer tolerates
// them: the panel registry keys live entities by name.
func ValidateRig(rig *ir.Rig) []ValidationError {
	var errs []ValidationError

	if len(rig.Joints) == 0 {
		errs = append(errs, ValidationError{
			Field:   "rig." + rig.Name,
			Message: "rig has no joints",
			Code:    ErrRigNoJoints,
		})
		return errs
	}

	seen := make(map[string]int, len(rig.Joints))
	for i, j := range rig.Joints {
		field := fmt.Sprintf("rig.%s.joints[%d]", rig.Name, i)

		if j.Name == "" {
			errs = append(errs, ValidationError{Field: field, Message: "joint name is empty", Code: ErrJointNameEmpty})
		} else if first, dup := seen[j.Name]; dup {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("joint %q duplicates joints[%d]", j.Name, first),
				Code:    ErrDuplicateJoint,
			})
		} else {
			seen[j.Name] = i
		}

		if len(j.Styles) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "joint has no styles", Code: ErrJointNoStyles})
		}
	}

	return errs
}
