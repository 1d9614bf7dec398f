// Package harness runs organizer scenarios for jointpanel.
//
// A scenario names a rig's joints, the normalization policy, and a list of
// assertions about the resulting layout. Run organizes the joints, records
// the layout in a fresh in-memory store, reads it back, and evaluates the
// assertions against what was stored.
//
// # Scenario Format
//
//	name: biped
//	description: "Mirrored biped pairs by suffix"
//	policy: placeholder
//	joints:
//	  - name: Char_Arm_L
//	    side: left
//	    type: shoulder
//	    styles: [rotate]
//	assertions:
//	  - type: group_count
//	    count: 1
//	  - type: paired
//	    joints: [Char_Arm_L, Char_Arm_R]
//	  - type: category
//	    joint: Char_Arm_L
//	    category: arm
//
// # Assertion Types
//
//   - group_count: the layout has exactly count groups
//   - paired: joints[0] and joints[1] form one group in that order
//   - singleton: joint is alone in its group
//   - category: the group holding joint has the given category
//   - prefix_trim: the display prefix trim equals count
//
// # Deterministic Testing
//
// Build IDs come from testutil.CountingIDGenerator, so the same scenario
// always produces the same build. RunWithGolden snapshots the canonical
// layout JSON under testdata/golden.
package harness
