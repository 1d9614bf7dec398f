// Package organize groups joints into display units for a rig control panel.
//
// Joints whose names differ only by side markers ("left", "right", "l", "r")
// are collected under a shared normalized key. Keys holding exactly two joints
// are resolved into a left/right pair, first by authoritative side labels and
// then by a name-scoring heuristic; everything else is emitted as singletons.
// Each resulting group is assigned a display category from type labels or a
// body-part vocabulary.
//
// Everything here is a pure function of its input: no I/O, no shared state,
// safe to call concurrently. Organize never fails; ambiguous input degrades to
// singleton groups.
package organize
