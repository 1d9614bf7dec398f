package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/jointpanel/internal/ir"
)

// createTestStore creates a new store in a temporary directory for testing.
// The store is automatically closed when the test completes.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(dbPath, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testLayout(rig string) ir.Layout {
	return ir.Layout{
		Rig:        rig,
		Policy:     ir.PolicyPlaceholder,
		PrefixTrim: 5,
		Groups: []ir.Group{
			{
				Joints: []ir.JointRecord{
					{Name: "Char_Arm_L", Side: ir.SideLeft, Type: ir.TypeShoulder, Styles: []ir.Style{ir.StyleRotate}},
					{Name: "Char_Arm_R", Side: ir.SideRight, Type: ir.TypeShoulder, Styles: []ir.Style{ir.StyleRotate}},
				},
				Category: ir.CategoryArm,
			},
			{
				Joints:   []ir.JointRecord{{Name: "Char_Root", Styles: []ir.Style{ir.StyleTranslate}}},
				Category: ir.CategoryDefault,
			},
		},
	}
}
