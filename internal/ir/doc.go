// Package ir provides canonical data types shared by every jointpanel package.
//
// This package contains type definitions and canonical serialization only.
// All other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Zero values of Side and JointType mean "no authoritative label"
//   - Layout data carries no floats; live transform values belong to the panel package
//   - All JSON tags use snake_case
//   - Labels serialize by name, never by host code
package ir
