// Package panel drives a joint control panel over a host scene.
//
// A Controller lays out the organizer's groups as rows of panels, keeps
// the displayed values current from dirty notifications, and turns text
// edits and horizontal drags into scene writes. The controller never talks
// to a widget toolkit; front ends read Rows and render them.
//
// # Update flow
//
// Host callbacks call Notify with a DirtyEvent. Events for unknown joints
// are dropped and repeated (joint, kind) pairs coalesce until the next
// Flush, which re-reads each queued joint once. Run flushes whenever events
// arrive until its context is cancelled or the controller is closed.
//
// # Units
//
// Scene values are in internal units (radians, centimeters). Displayed
// text and committed edits are in UI units, converted through Scene.ToUI.
package panel
