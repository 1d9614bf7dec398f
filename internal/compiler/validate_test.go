package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/jointpanel/internal/ir"
)

func TestValidateRigValid(t *testing.T) {
	rig := &ir.Rig{Name: "biped", Joints: []ir.JointRecord{
		{Name: "L_arm", Styles: DefaultStyles},
		{Name: "R_arm", Styles: DefaultStyles},
	}}
	assert.Empty(t, ValidateRig(rig))
}

func TestValidateRigNoJoints(t *testing.T) {
	errs := ValidateRig(&ir.Rig{Name: "empty"})
	assert.Len(t, errs, 1)
	assert.Equal(t, ErrRigNoJoints, errs[0].Code)
	assert.Equal(t, "rig.empty", errs[0].Field)
}

func TestValidateRigCollectsAll(t *testing.T) {
	rig := &ir.Rig{Name: "bad", Joints: []ir.JointRecord{
		{Name: "hip", Styles: DefaultStyles},
		{Name: "", Styles: DefaultStyles},
		{Name: "hip", Styles: DefaultStyles},
		{Name: "knee"},
	}}

	errs := ValidateRig(rig)

	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	assert.Equal(t, []string{ErrJointNameEmpty, ErrDuplicateJoint, ErrJointNoStyles}, codes)
	assert.Equal(t, "rig.bad.joints[2]", errs[1].Field)
	assert.Contains(t, errs[1].Message, "joints[0]")
}

func TestValidationErrorString(t *testing.T) {
	err := ValidationError{Field: "rig.x", Message: "rig has no joints", Code: ErrRigNoJoints}
	assert.Equal(t, "[E201] rig.x: rig has no joints", err.Error())

	err.Line = 4
	assert.Equal(t, "[E201] line 4: rig.x: rig has no joints", err.Error())
}

func TestCodeForField(t *testing.T) {
	assert.Equal(t, ErrInvalidSide, CodeForField("side"))
	assert.Equal(t, ErrInvalidType, CodeForField("type"))
	assert.Equal(t, ErrInvalidStyle, CodeForField("styles"))
	assert.Equal(t, ErrRigNoJoints, CodeForField("joints"))
	assert.Equal(t, "E001", CodeForField("cue"))
}
