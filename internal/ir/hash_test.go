package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() Layout {
	return Layout{
		Rig:        "biped",
		Policy:     PolicyPlaceholder,
		PrefixTrim: 5,
		Groups: []Group{
			{
				Joints: []JointRecord{
					{Name: "Char_Arm_L", Side: SideLeft, Type: TypeShoulder, Styles: []Style{StyleRotate}},
					{Name: "Char_Arm_R", Side: SideRight, Type: TypeShoulder, Styles: []Style{StyleRotate}},
				},
				Category: CategoryArm,
			},
			{
				Joints:   []JointRecord{{Name: "Char_Root"}},
				Category: CategoryDefault,
			},
		},
	}
}

func TestMarshalLayoutCanonical(t *testing.T) {
	data, err := MarshalLayout(Layout{
		Rig:    "r",
		Policy: PolicyDelete,
		Groups: []Group{{Joints: []JointRecord{{Name: "hip", Type: TypeHip}}, Category: CategoryLeg}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"groups":[{"category":"leg","joints":[{"name":"hip","type":"hip"}]}],"policy":"delete","prefix_trim":0,"rig":"r"}`,
		string(data))
}

func TestMarshalLayoutDecodesWithEncodingJSON(t *testing.T) {
	layout := sampleLayout()
	data, err := MarshalLayout(layout)
	require.NoError(t, err)

	var back Layout
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, layout, back)
}

func TestLayoutHashDeterministic(t *testing.T) {
	h1 := MustLayoutHash(sampleLayout())
	h2 := MustLayoutHash(sampleLayout())
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestLayoutHashSensitiveToOrder(t *testing.T) {
	a := sampleLayout()
	b := sampleLayout()
	b.Groups[0], b.Groups[1] = b.Groups[1], b.Groups[0]
	assert.NotEqual(t, MustLayoutHash(a), MustLayoutHash(b))
}

func TestLayoutHashIgnoresRef(t *testing.T) {
	a := sampleLayout()
	b := sampleLayout()
	b.Groups[1].Joints[0].Ref = "live-handle"
	assert.Equal(t, MustLayoutHash(a), MustLayoutHash(b))
}

func TestHashWithDomainSeparation(t *testing.T) {
	assert.NotEqual(t,
		hashWithDomain("a", []byte("bc")),
		hashWithDomain("ab", []byte("c")))
}
