package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/jointpanel/internal/ir"
)

func TestParsePlug(t *testing.T) {
	tests := []struct {
		plug string
		want DirtyEvent
		ok   bool
	}{
		{"Char_Arm_L.rotateX", DirtyEvent{"Char_Arm_L", ir.StyleRotate}, true},
		{"Char_Root.translateZ", DirtyEvent{"Char_Root", ir.StyleTranslate}, true},
		{"|grp|Char_Hip_L.rotate", DirtyEvent{"|grp|Char_Hip_L", ir.StyleRotate}, true},
		{"grp|Char_Hip_L.translateY", DirtyEvent{"grp|Char_Hip_L", ir.StyleTranslate}, true},
		{"Char_Root.scaleX", DirtyEvent{}, false},
		{"Char_Root", DirtyEvent{}, false},
		{".rotateX", DirtyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.plug, func(t *testing.T) {
			got, ok := ParsePlug(tt.plug)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
